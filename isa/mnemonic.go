package isa

// Mnemonic identifies an instruction of the catalog.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	MN_NOP    = Mnemonic(0) // NOP
	MN_INPUT  = Mnemonic(1) // INPUT
	MN_OUTPUT = Mnemonic(2) // OUTPUT
	MN_LDA    = Mnemonic(3) // LDA
	MN_JMP    = Mnemonic(4) // JMP
	MN_INC    = Mnemonic(5) // INC
	MN_MOV    = Mnemonic(6) // MOV
	MN_ADD    = Mnemonic(7) // ADD
	MN_HLT    = Mnemonic(8) // HLT
)

// Opcodes. Only the low 5 bits are decoded by the machine.
const (
	OPCODE_NOP    = uint8(0b00100)
	OPCODE_INPUT  = uint8(0b00101)
	OPCODE_OUTPUT = uint8(0b01000)
	OPCODE_JMP    = uint8(0b01011)
	OPCODE_LDA    = uint8(0b01110)
	OPCODE_INC    = uint8(0b10011)
	OPCODE_MOV    = uint8(0b10110)
	OPCODE_ADD    = uint8(0b11001)
	OPCODE_HLT    = uint8(0b11111)
)

const (
	OPCODE_BITS = 5   // Width of the opcode space.
	MEMORY_SIZE = 256 // Bytes of instruction memory.
)
