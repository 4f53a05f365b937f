package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/mc8/asm"
	"github.com/ezrec/mc8/format"
)

var asmFlags struct {
	input   string
	output  string
	format  string
	strict  bool
	defines []string
}

// asmCmd represents the asm command
var asmCmd = &cobra.Command{
	Use:   "asm",
	Short: "Assemble a program into a 256-byte image",
	Long: `Asm assembles mc8 assembly source into the 256-byte instruction
memory image. The image is zero-padded; a program that does not fit
is an error.

Output formats: ` + strings.Join(format.ImageNames(), ", ") + `.
An unknown format writes no output.`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsm()
	},
}

func init() {
	asmCmd.Flags().StringVarP(&asmFlags.input, "input_file", "i", "-", "Path to the assembly code file")
	asmCmd.Flags().StringVarP(&asmFlags.output, "output_file", "o", "machine_code.txt", "Path to the output machine code file")
	asmCmd.Flags().StringVarP(&asmFlags.format, "format", "f", "raw", "Output format")
	asmCmd.Flags().BoolVar(&asmFlags.strict, "strict", false, "Reject operands wider than a byte")
	asmCmd.Flags().StringArrayVarP(&asmFlags.defines, "define", "D", nil, "Predefine NAME=VALUE for $(...) expressions")

	rootCmd.AddCommand(asmCmd)
}

func runAsm() (err error) {
	inf, err := openInput(asmFlags.input)
	if err != nil {
		return
	}
	defer inf.Close()

	assembler := &asm.Assembler{
		Verbose: verbose,
		Strict:  asmFlags.strict,
	}
	for _, define := range asmFlags.defines {
		name, value, ok := strings.Cut(define, "=")
		if !ok {
			value = "1"
		}
		assembler.Predefine(name, value)
	}

	prog, img, err := assembler.Assemble(inf)
	if err != nil {
		return fmt.Errorf("%v: %w", asmFlags.input, err)
	}

	err = showListing(asmFlags.output, func(w io.Writer) (err error) {
		err = format.ImageListing(w, img)
		if err != nil {
			return
		}
		return format.SourceListing(w, prog)
	})
	if err != nil {
		return
	}

	render, ok := format.LookupImage(asmFlags.format)
	if !ok {
		if verbose {
			log.Printf("%v: unknown format, nothing written", asmFlags.format)
		}
		return nil
	}

	var buf bytes.Buffer
	err = render(&buf, img)
	if err != nil {
		return
	}

	return writeOutput(asmFlags.output, buf.Bytes())
}
