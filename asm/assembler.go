// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mc8/isa"
)

// Predefined system equates, visible inside $(...) expressions.
var sysEquate = map[string]string{
	"LINENO":     "0",
	"ADDR":       "0",
	"IMAGE_SIZE": fmt.Sprintf("%v", IMAGE_SIZE),
}

// Assembler is a single pass assembler for the mc8 instruction set.
type Assembler struct {
	Verbose    bool        // If set, verbosely logs the assembler actions.
	Strict     bool        // If set, operands wider than a byte are errors instead of being truncated.
	Statements []Statement // List of assembled statements.

	predefine map[string]string // Predefines
	Equate    map[string]string // Names visible to $(...) expressions.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// stripComment cuts the line at the first '#' after its first character.
// A '#' in the first column alone does not start a comment.
func stripComment(text string) string {
	if len(text) < 2 {
		return text
	}
	n := strings.IndexByte(text[1:], '#')
	if n < 0 {
		return text
	}
	return text[:n+1]
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, _err := isa.ParseValue(str)
		if _err != nil {
			// Not a number, not visible to expressions.
			continue
		}
		pred[key] = starlark.MakeUint64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// valueOf returns the byte value of an operand word.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	var fits bool
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		var v64 int64
		v64, err = asm.parenEval(word[2 : len(word)-1])
		if err != nil {
			return
		}
		value = uint8(v64)
		fits = v64 >= 0 && v64 <= 0xff
	} else {
		var u64 uint64
		u64, err = isa.ParseValue(word)
		switch {
		case errors.Is(err, isa.ErrValueRange):
			err = nil
		case err != nil:
			return
		default:
			fits = u64 <= 0xff
		}
		value = uint8(u64)
	}

	if !fits {
		if asm.Strict {
			err = ErrOperandRange
			return
		}
		log.Printf("line %v: operand '%v' truncated to 0x%02X", asm.Equate["LINENO"], word, value)
	}

	return
}

// currentAddr gets the address of the next emitted byte.
func (asm *Assembler) currentAddr() int {
	if len(asm.Statements) == 0 {
		return 0
	}

	last := asm.Statements[len(asm.Statements)-1]

	return last.Addr + len(last.Code)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Statements = asm.Statements[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(stripComment(text))
		if len(line) == 0 {
			continue
		}

		rule, operands, ok := isa.Match(line)
		if !ok {
			if asm.Verbose {
				log.Printf("%v: no instruction matches '%v', skipped\n", lineno, line)
			}
			continue
		}

		addr := asm.currentAddr()
		asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)
		asm.Equate["ADDR"] = fmt.Sprintf("%v", addr)

		var code []byte
		code, err = rule.Encode(operands, asm.valueOf)
		if err != nil {
			return
		}

		asm.Statements = append(asm.Statements, Statement{
			LineNo: lineno,
			Addr:   addr,
			Line:   line,
			Rule:   rule,
			Code:   code,
		})
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Statements: append([]Statement(nil), asm.Statements...),
	}

	return
}

// Assemble parses the input and builds its program image.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, img *Image, err error) {
	prog, err = asm.Parse(input)
	if err != nil {
		return
	}

	img, err = prog.Image()
	return
}
