package asm

import (
	"errors"

	"github.com/ezrec/mc8/translate"
)

var f = translate.From

var (
	ErrOperandRange = errors.New(f("operand does not fit in a byte"))
)

// ErrImageOverflow reports a program larger than the instruction memory.
type ErrImageOverflow struct {
	Size int // Bytes the program needs.
}

func (err *ErrImageOverflow) Error() string {
	return f("assembled machine code is %v bytes, exceeds %v bytes", err.Size, IMAGE_SIZE)
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
