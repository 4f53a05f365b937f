package asm

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Addr: 0, Line: "NOP", Code: []byte{0x04}},
			{LineNo: 3, Addr: 1, Line: "LDA 0x10", Code: []byte{0x0E, 0x10}},
			{LineNo: 4, Addr: 3, Line: "HLT", Code: []byte{0x1F}},
		},
	}

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Statement)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(2)
	assert.NotNil(dbg.Statement)
	assert.Equal(3, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(3)
	assert.Equal(4, dbg.LineNo)

	dbg = prog.Debug(4)
	assert.Nil(dbg.Statement)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Bytes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{Code: []byte{0x04}},
			{Code: []byte{0x0B, 0x07}},
			{Code: []byte{0x1F}},
		},
	}

	assert.Equal([]byte{0x04, 0x0B, 0x07, 0x1F}, slices.Collect(prog.Bytes()))
	assert.Equal(4, prog.Size())
}

func TestProgram_ImageFull(t *testing.T) {
	assert := assert.New(t)

	// 128 two-byte instructions exactly fill the image.
	source := strings.Repeat("LDA 0xAA\n", IMAGE_SIZE/2)
	img, err := assembleSource(source)
	assert.NoError(err)
	if err != nil {
		return
	}

	for addr, b := range img {
		if addr%2 == 0 {
			assert.Equal(byte(0x0E), b)
		} else {
			assert.Equal(byte(0xAA), b)
		}
	}
}

func TestProgram_ImageOverflow(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Repeat("NOP\n", IMAGE_SIZE) + "LDA 1\n"))
	assert.NoError(err)
	assert.Equal(IMAGE_SIZE+2, prog.Size())

	img, err := prog.Image()
	assert.Nil(img)

	var overflow *ErrImageOverflow
	if assert.True(errors.As(err, &overflow)) {
		assert.Equal(IMAGE_SIZE+2, overflow.Size)
	}
	assert.Equal("assembled machine code is 258 bytes, exceeds 256 bytes", err.Error())

	// Deterministic: the same failure every time.
	_, again := assembleSource(strings.Repeat("NOP\n", IMAGE_SIZE) + "LDA 1\n")
	assert.Equal(err, again)
}
