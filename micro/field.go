package micro

import (
	"fmt"
	"strconv"
)

// Field widths, in bits.
const (
	ADDRESS_WIDTH = 5
	NEXT_WIDTH    = 5
	JUMP_WIDTH    = 1
	ALU_WIDTH     = 3
	WRITE_WIDTH   = 5
	BUS_WIDTH     = 2

	WORD_WIDTH  = NEXT_WIDTH + JUMP_WIDTH + ALU_WIDTH + WRITE_WIDTH + BUS_WIDTH
	FIELD_COUNT = 6 // Fields of a source row, address included.
)

// SEQUENTIAL is the next address meaning "the row that follows".
const SEQUENTIAL = "+1"

// Field is a fixed-width bit field of a control word.
type Field struct {
	Value uint16
	Width int
}

// ParseField parses a binary string of exactly width digits. Blank text is
// the all-zero field.
func ParseField(name string, text string, width int) (field Field, err error) {
	field.Width = width
	if len(text) == 0 {
		return
	}

	if len(text) != width {
		err = &ErrFieldWidth{Name: name, Text: text, Width: width}
		return
	}

	value, err := strconv.ParseUint(text, 2, width)
	if err != nil {
		err = &ErrFieldWidth{Name: name, Text: text, Width: width}
		return
	}

	field.Value = uint16(value)
	return
}

// String renders the field as binary digits, zero-padded to its width.
func (field Field) String() string {
	return fmt.Sprintf("%0*b", field.Width, field.Value)
}

// NextAddress is either an absolute address or the SEQUENTIAL sentinel.
type NextAddress struct {
	Sequential bool // Set until resolved to the following row's address.
	Field
}

// String renders the address bits, or the sentinel.
func (next NextAddress) String() string {
	if next.Sequential {
		return SEQUENTIAL
	}
	return next.Field.String()
}
