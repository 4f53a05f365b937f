package isa

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ParseValue parses an integer literal. The radix comes from the prefix:
// 0x is hexadecimal, 0b binary, 0d decimal, and no prefix is decimal.
//
// A literal wider than 64 bits returns its low 64 bits with ErrValueRange.
func ParseValue(word string) (value uint64, err error) {
	base := 10
	digits := word
	switch {
	case strings.HasPrefix(word, "0x"):
		base, digits = 16, word[2:]
	case strings.HasPrefix(word, "0b"):
		base, digits = 2, word[2:]
	case strings.HasPrefix(word, "0d"):
		base, digits = 10, word[2:]
	}

	value, err = strconv.ParseUint(digits, base, 64)
	if errors.Is(err, strconv.ErrRange) {
		wide, _ := new(big.Int).SetString(digits, base)
		value = wide.And(wide, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
		err = ErrValueRange
	} else if err != nil {
		err = ErrParseNumber(word)
	}

	return
}

// ParseByte parses an integer literal and keeps its low 8 bits.
func ParseByte(word string) (value uint8, err error) {
	v64, err := ParseValue(word)
	if errors.Is(err, ErrValueRange) {
		err = nil
	}
	value = uint8(v64)
	return
}
