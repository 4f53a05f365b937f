package isa

import (
	"fmt"
	"iter"
	"strings"
)

// Instruction is a decoded instruction. A nil Rule marks a byte that is not
// a known opcode.
type Instruction struct {
	*Rule
	Code    uint8 // First byte: the opcode, or the unknown byte.
	Operand uint8 // Operand byte of value rules.
}

// Size is the number of bytes the instruction occupies.
func (ins Instruction) Size() int {
	if ins.Rule == nil {
		return 1
	}
	return ins.Rule.Size()
}

// String renders the canonical source form of the instruction.
func (ins Instruction) String() string {
	if ins.Rule == nil {
		return fmt.Sprintf(".byte 0x%02X", ins.Code)
	}

	switch ins.Rule.Operand {
	case OPERAND_VALUE:
		return fmt.Sprintf("%v 0x%02X", ins.Mnemonic, ins.Operand)
	case OPERAND_REGISTER:
		return ins.Mnemonic.String() + " " + strings.Join(ins.Registers, ",")
	default:
		return ins.Mnemonic.String()
	}
}

// Decode decodes the instruction at the start of code.
func Decode(code []byte) (ins Instruction, err error) {
	if len(code) == 0 {
		err = ErrOperandMissing
		return
	}

	ins.Code = code[0]
	for rule := range Catalog() {
		if rule.Opcode != code[0] {
			continue
		}
		ins.Rule = rule
		if rule.Operand == OPERAND_VALUE {
			if len(code) < 2 {
				err = ErrOperandMissing
				return
			}
			ins.Operand = code[1]
		}
		return
	}

	err = ErrOpcodeUnknown(code[0])
	return
}

// Disassemble walks machine code, yielding each instruction with its
// address. Unknown bytes and truncated instructions are yielded as single
// data bytes.
func Disassemble(code []byte) iter.Seq2[int, Instruction] {
	return func(yield func(addr int, ins Instruction) bool) {
		for addr := 0; addr < len(code); {
			ins, err := Decode(code[addr:])
			if err != nil {
				ins = Instruction{Code: code[addr]}
			}
			if !yield(addr, ins) {
				return
			}
			addr += ins.Size()
		}
	}
}
