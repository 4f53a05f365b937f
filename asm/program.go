package asm

import (
	"iter"
	"slices"

	"github.com/ezrec/mc8/internal"
	"github.com/ezrec/mc8/isa"
)

// IMAGE_SIZE is the size of a program image in bytes.
const IMAGE_SIZE = isa.MEMORY_SIZE

// Statement is one assembled source line.
type Statement struct {
	LineNo int       // Source line number.
	Addr   int       // Address of the first emitted byte.
	Line   string    // Source line without its comment.
	Rule   *isa.Rule // Catalog rule that matched the line.
	Code   []byte    // Emitted bytes.
}

// Program is the ordered list of assembled statements.
type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
	Index int
}

// Debug finds the statement that emitted the byte at addr.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, st := range prog.Statements {
		if addr >= st.Addr && addr < st.Addr+len(st.Code) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     addr - st.Addr,
			}
			break
		}
	}

	return
}

// Bytes iterates over the emitted bytes in address order.
func (prog *Program) Bytes() iter.Seq[byte] {
	return internal.SeqFlatten(slices.Values(prog.Statements), func(st Statement) iter.Seq[byte] {
		return slices.Values(st.Code)
	})
}

// Size is the number of emitted bytes.
func (prog *Program) Size() (size int) {
	for _, st := range prog.Statements {
		size += len(st.Code)
	}
	return
}

// Image is the content of instruction memory, address 0 first.
type Image [IMAGE_SIZE]byte

// Image zero-pads the program into an Image. A program larger than the
// instruction memory is an error, and no image is built.
func (prog *Program) Image() (img *Image, err error) {
	size := prog.Size()
	if size > IMAGE_SIZE {
		err = &ErrImageOverflow{Size: size}
		return
	}

	img = &Image{}
	for addr, b := range internal.SeqIndex(prog.Bytes()) {
		img[addr] = b
	}

	return
}
