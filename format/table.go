package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/mc8/micro"
)

// writeWords renders one line per control word.
func writeWords(w io.Writer, table *micro.Table, line func(word micro.Word) string) (err error) {
	words, err := table.Words()
	if err != nil {
		return
	}

	bw := bufio.NewWriter(w)
	for _, word := range words {
		bw.WriteString(line(word))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// TableBin writes each word as 0b and 16 binary digits.
func TableBin(w io.Writer, table *micro.Table) error {
	return writeWords(w, table, func(word micro.Word) string {
		return "0b" + word.String()
	})
}

// TableHex writes each word as 0x and 4 hex digits.
func TableHex(w io.Writer, table *micro.Table) error {
	return writeWords(w, table, func(word micro.Word) string {
		return fmt.Sprintf("0x%04X", uint16(word))
	})
}

// TableMem writes the decimal value of each word.
func TableMem(w io.Writer, table *micro.Table) error {
	return writeWords(w, table, func(word micro.Word) string {
		return fmt.Sprintf("%d", uint16(word))
	})
}

// TableVhdl writes each word as a VHDL concatenation of bit literals, one
// element of a control-store array per line.
func TableVhdl(w io.Writer, table *micro.Table) (err error) {
	words, err := table.Words()
	if err != nil {
		return
	}

	bw := bufio.NewWriter(w)
	for addr, word := range words {
		next, jump, alu, write, bus := word.Unpack()

		var literals []string
		for _, field := range []micro.Field{next, jump, alu, write, bus} {
			if field.Width > 1 {
				literals = append(literals, `"`+field.String()+`"`)
			} else {
				literals = append(literals, `'`+field.String()+`'`)
			}
		}
		fmt.Fprintf(bw, "%v, -- @0x%04X\n", strings.Join(literals, " & "), addr)
	}
	return bw.Flush()
}

// TableListing dumps the control fields of each row.
func TableListing(w io.Writer, table *micro.Table) (err error) {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Microcode Table:")
	for addr := range table.Entries {
		entry := &table.Entries[addr]
		fields := []string{
			entry.Next.String(),
			entry.Jump.String(),
			entry.Alu.String(),
			entry.Write.String(),
			entry.Bus.String(),
		}
		fmt.Fprintf(bw, "@0x%04X : %v\n", addr, strings.Join(fields, " | "))
	}
	return bw.Flush()
}
