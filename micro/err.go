package micro

import (
	"errors"

	"github.com/ezrec/mc8/translate"
)

var f = translate.From

var (
	ErrSequentialLast = errors.New(f("+1 next address on the last row"))
	ErrUnresolved     = errors.New(f("+1 next address not resolved"))
)

// ErrRowShape reports a row that does not split into the six fields.
type ErrRowShape int

func (err ErrRowShape) Error() string {
	return f("expected %v '|' separated fields, found %v", FIELD_COUNT, int(err))
}

// ErrFieldWidth reports a field that is not a binary string of its width.
type ErrFieldWidth struct {
	Name  string
	Text  string
	Width int
}

func (err *ErrFieldWidth) Error() string {
	return f("%v '%v' is not %v binary digits", err.Name, err.Text, err.Width)
}

// ErrAddressInvalid reports an address field that a "+1" refers to, but is
// not usable as a next address.
type ErrAddressInvalid struct {
	LineNo  int // Line of the referenced row.
	Address string
	Err     error
}

func (err *ErrAddressInvalid) Error() string {
	return f("address '%v' of line %d %v", err.Address, err.LineNo, err.Err)
}

func (err *ErrAddressInvalid) Unwrap() error {
	return err.Err
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
