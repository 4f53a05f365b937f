package isa

import (
	"iter"
	"regexp"
	"slices"
	"strings"
)

// OperandKind is the encoding class of a rule's operands.
type OperandKind int

const (
	OPERAND_NONE     = OperandKind(0) // No operands, opcode only.
	OPERAND_VALUE    = OperandKind(1) // One value, encoded as a trailing byte.
	OPERAND_REGISTER = OperandKind(2) // Fixed registers, validated and not encoded.
)

// Rule describes how one mnemonic is recognized and encoded.
type Rule struct {
	Mnemonic  Mnemonic
	Opcode    uint8
	Operand   OperandKind
	Arity     int      // Number of operands captured by the pattern.
	Registers []string // The single legal register combination, in source order.

	pattern *regexp.Regexp
}

// ValueFunc converts a value operand into the byte to emit.
type ValueFunc func(word string) (value uint8, err error)

// Patterns are anchored at the start of the line only.
var catalog = []Rule{
	{Mnemonic: MN_NOP, Opcode: OPCODE_NOP,
		pattern: regexp.MustCompile(`^NOP`)},
	{Mnemonic: MN_INPUT, Opcode: OPCODE_INPUT,
		pattern: regexp.MustCompile(`^INPUT`)},
	{Mnemonic: MN_OUTPUT, Opcode: OPCODE_OUTPUT,
		pattern: regexp.MustCompile(`^OUTPUT`)},
	{Mnemonic: MN_LDA, Opcode: OPCODE_LDA, Operand: OPERAND_VALUE, Arity: 1,
		pattern: regexp.MustCompile(`^LDA (.+)`)},
	{Mnemonic: MN_JMP, Opcode: OPCODE_JMP, Operand: OPERAND_VALUE, Arity: 1,
		pattern: regexp.MustCompile(`^JMP (.+)`)},
	{Mnemonic: MN_INC, Opcode: OPCODE_INC, Operand: OPERAND_REGISTER, Arity: 1,
		Registers: []string{"A"},
		pattern:   regexp.MustCompile(`^INC (.+)`)},
	{Mnemonic: MN_MOV, Opcode: OPCODE_MOV, Operand: OPERAND_REGISTER, Arity: 2,
		Registers: []string{"B", "A"},
		pattern:   regexp.MustCompile(`^MOV (.+),(.+)`)},
	{Mnemonic: MN_ADD, Opcode: OPCODE_ADD, Operand: OPERAND_REGISTER, Arity: 2,
		Registers: []string{"A", "B"},
		pattern:   regexp.MustCompile(`^ADD (.+),(.+)`)},
	{Mnemonic: MN_HLT, Opcode: OPCODE_HLT,
		pattern: regexp.MustCompile(`^HLT`)},
}

// Catalog returns the rules in match order.
func Catalog() iter.Seq[*Rule] {
	return func(yield func(*Rule) bool) {
		for n := range catalog {
			if !yield(&catalog[n]) {
				return
			}
		}
	}
}

// Match returns the first rule whose pattern matches the line, with its
// trimmed operands.
func Match(line string) (rule *Rule, operands []string, ok bool) {
	for rule = range Catalog() {
		groups := rule.pattern.FindStringSubmatch(line)
		if groups == nil {
			continue
		}
		operands = make([]string, 0, len(groups)-1)
		for _, group := range groups[1:] {
			operands = append(operands, strings.TrimSpace(group))
		}
		return rule, operands, true
	}

	return nil, nil, false
}

// Size is the number of bytes the rule emits.
func (rule *Rule) Size() int {
	if rule.Operand == OPERAND_VALUE {
		return 2
	}
	return 1
}

// Encode emits the opcode, followed by the operand byte for value rules.
// A nil value function parses literals with ParseByte.
func (rule *Rule) Encode(operands []string, value ValueFunc) (code []byte, err error) {
	if len(operands) != rule.Arity {
		err = ErrOperandCount
		return
	}

	switch rule.Operand {
	case OPERAND_VALUE:
		if value == nil {
			value = ParseByte
		}
		var v uint8
		v, err = value(operands[0])
		if err != nil {
			return
		}
		code = []byte{rule.Opcode, v}
	case OPERAND_REGISTER:
		if !slices.Equal(operands, rule.Registers) {
			err = &ErrRegisterInvalid{
				Mnemonic:  rule.Mnemonic,
				Registers: slices.Clone(operands),
				Legal:     rule.Registers,
			}
			return
		}
		code = []byte{rule.Opcode}
	default:
		code = []byte{rule.Opcode}
	}

	return
}
