package micro

import (
	"bufio"
	"io"
	"log"
	"strings"
)

// Parser reads microprogram text into a Table.
type Parser struct {
	Verbose bool // If set, verbosely logs the parser actions.
}

// fieldNames of a source row, in column order.
var fieldNames = [FIELD_COUNT]string{
	"address",
	"next_address",
	"jump_condition",
	"alu_op",
	"write_lines",
	"bus_select",
}

// parseRow splits a stripped, non-empty line into an Entry.
func parseRow(line string) (entry Entry, err error) {
	columns := strings.Split(line, "|")
	if len(columns) != FIELD_COUNT {
		err = ErrRowShape(len(columns))
		return
	}
	for n := range columns {
		columns[n] = strings.TrimSpace(columns[n])
	}

	entry.Address = columns[0]

	if columns[1] == SEQUENTIAL {
		entry.Next = NextAddress{Sequential: true, Field: Field{Width: NEXT_WIDTH}}
	} else {
		entry.Next.Field, err = ParseField(fieldNames[1], columns[1], NEXT_WIDTH)
		if err != nil {
			return
		}
	}

	out := [](*Field){&entry.Jump, &entry.Alu, &entry.Write, &entry.Bus}
	widths := []int{JUMP_WIDTH, ALU_WIDTH, WRITE_WIDTH, BUS_WIDTH}
	for n := range out {
		*out[n], err = ParseField(fieldNames[2+n], columns[2+n], widths[n])
		if err != nil {
			return
		}
	}

	return
}

// Parse reads a microprogram. The first line is a header and is ignored.
// Next addresses are left unresolved; see Table.Resolve.
func (p *Parser) Parse(input io.Reader) (table *Table, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	table = &Table{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if lineno == 1 {
			if p.Verbose {
				log.Printf("header: %v\n", text)
			}
			continue
		}

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ = strings.Cut(text, "#")
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var entry Entry
		entry, err = parseRow(line)
		if err != nil {
			table = nil
			return
		}
		entry.LineNo = lineno
		entry.Line = line

		table.Entries = append(table.Entries, entry)
	}

	err = scanner.Err()
	if err != nil {
		table = nil
	}

	return
}

// Compile parses and resolves a microprogram.
func (p *Parser) Compile(input io.Reader) (table *Table, err error) {
	table, err = p.Parse(input)
	if err != nil {
		return
	}

	err = table.Resolve()
	if err != nil {
		table = nil
	}

	return
}
