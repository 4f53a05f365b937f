// Package isa describes the instruction set of the mc8 processor.
//
// The mc8 is an 8-bit machine with a 5-bit opcode space and a 256-byte
// address space. Its instruction set is fixed: nine mnemonics, each
// described by a Rule in an ordered catalog. A source line is matched
// against the catalog in order, and the first Rule whose pattern matches
// encodes the line into one or two bytes.
//
// Decode performs the reverse lookup, from machine code back to a Rule and
// its operand.
package isa
