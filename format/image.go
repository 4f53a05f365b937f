package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/mc8/asm"
	"github.com/ezrec/mc8/isa"
)

const BYTES_PER_LINE = 8

// ImageRaw writes the image bytes as-is.
func ImageRaw(w io.Writer, img *asm.Image) (err error) {
	_, err = w.Write(img[:])
	return
}

// ImageBin writes one 0bxxxxxxxx line per byte.
func ImageBin(w io.Writer, img *asm.Image) (err error) {
	bw := bufio.NewWriter(w)
	for _, b := range img {
		fmt.Fprintf(bw, "0b%08b\n", b)
	}
	return bw.Flush()
}

// ImageHex writes one 0xXX line per byte.
func ImageHex(w io.Writer, img *asm.Image) (err error) {
	bw := bufio.NewWriter(w)
	for _, b := range img {
		fmt.Fprintf(bw, "0x%02X\n", b)
	}
	return bw.Flush()
}

// ImageMif writes an Altera memory initialization file.
func ImageMif(w io.Writer, img *asm.Image) (err error) {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "WIDTH=8;\n")
	fmt.Fprintf(bw, "DEPTH=%d;\n", len(img))
	fmt.Fprintf(bw, "\n")
	fmt.Fprintf(bw, "ADDRESS_RADIX=HEX;\n")
	fmt.Fprintf(bw, "DATA_RADIX=HEX;\n")
	fmt.Fprintf(bw, "\n")
	fmt.Fprintf(bw, "CONTENT BEGIN\n")
	for addr, b := range img {
		fmt.Fprintf(bw, "  %02X : %02X;\n", addr, b)
	}
	fmt.Fprintf(bw, "END;")
	return bw.Flush()
}

// ImageListing dumps the image, BYTES_PER_LINE bytes per line.
func ImageListing(w io.Writer, img *asm.Image) (err error) {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Assembled Machine Code:")
	for addr := 0; addr < len(img); addr += BYTES_PER_LINE {
		chunk := make([]string, 0, BYTES_PER_LINE)
		for _, b := range img[addr : addr+BYTES_PER_LINE] {
			chunk = append(chunk, fmt.Sprintf("0x%02X", b))
		}
		fmt.Fprintf(bw, "@0x%02X : %v\n", addr, strings.Join(chunk, " "))
	}
	return bw.Flush()
}

// SourceListing maps each emitted address back to the source line that
// produced it.
func SourceListing(w io.Writer, prog *asm.Program) (err error) {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Source Listing:")
	for addr := 0; addr < prog.Size(); {
		dbg := prog.Debug(addr)
		code := dbg.Code[dbg.Index:]

		hex := make([]string, 0, len(code))
		for _, b := range code {
			hex = append(hex, fmt.Sprintf("0x%02X", b))
		}
		fmt.Fprintf(bw, "@0x%02X : %-9v # %v: %v\n", addr, strings.Join(hex, " "), dbg.LineNo, dbg.Line)

		addr += len(code)
	}
	return bw.Flush()
}

// Disassembly lists the instructions of machine code, one per line.
func Disassembly(w io.Writer, code []byte) (err error) {
	bw := bufio.NewWriter(w)
	for addr, ins := range isa.Disassemble(code) {
		fmt.Fprintf(bw, "@0x%02X : %v\n", addr, ins)
	}
	return bw.Flush()
}
