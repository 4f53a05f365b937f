package isa

import (
	"errors"
	"strings"

	"github.com/ezrec/mc8/translate"
)

var f = translate.From

var (
	ErrOperandCount   = errors.New(f("operand count"))
	ErrOperandMissing = errors.New(f("operand byte missing"))
	ErrValueRange     = errors.New(f("value wider than 64 bits"))
)

// ErrRegisterInvalid reports a register combination a rule does not accept.
type ErrRegisterInvalid struct {
	Mnemonic  Mnemonic
	Registers []string // Registers as written.
	Legal     []string // The only accepted combination.
}

func (err *ErrRegisterInvalid) Error() string {
	regs := strings.Join(err.Registers, ",")
	legal := err.Mnemonic.String() + " " + strings.Join(err.Legal, ",")
	if len(err.Registers) == 1 {
		return f("register %v unsupported for %v (%v only)", regs, err.Mnemonic, legal)
	}
	return f("registers %v unsupported for %v (%v only)", regs, err.Mnemonic, legal)
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrOpcodeUnknown uint8

func (err ErrOpcodeUnknown) Error() string {
	return f("unknown opcode 0x%02X", uint8(err))
}
