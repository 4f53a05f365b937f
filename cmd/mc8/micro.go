package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/mc8/format"
	"github.com/ezrec/mc8/micro"
)

var microFlags struct {
	input  string
	output string
	format string
}

// microCmd represents the micro command
var microCmd = &cobra.Command{
	Use:   "micro",
	Short: "Compile a microprogram into control-store words",
	Long: `Micro compiles an mc8 microprogram into one 16-bit control word per
row. The first line of the microprogram is a header and is ignored.
A next address of "+1" becomes the address of the following row.

Output formats: ` + strings.Join(format.TableNames(), ", ") + `.
An unknown format writes no output.`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMicro()
	},
}

func init() {
	microCmd.Flags().StringVarP(&microFlags.input, "input_file", "i", "-", "Path to the microprogram file")
	microCmd.Flags().StringVarP(&microFlags.output, "output_file", "o", "microcode.mem", "Path to the output microcode file")
	microCmd.Flags().StringVarP(&microFlags.format, "format", "f", "vhdl", "Output format")

	rootCmd.AddCommand(microCmd)
}

func runMicro() (err error) {
	inf, err := openInput(microFlags.input)
	if err != nil {
		return
	}
	defer inf.Close()

	p := &micro.Parser{Verbose: verbose}
	table, err := p.Compile(inf)
	if err != nil {
		return fmt.Errorf("%v: %w", microFlags.input, err)
	}

	err = showListing(microFlags.output, func(w io.Writer) error {
		return format.TableListing(w, table)
	})
	if err != nil {
		return
	}

	render, ok := format.LookupTable(microFlags.format)
	if !ok {
		if verbose {
			log.Printf("%v: unknown format, nothing written", microFlags.format)
		}
		return nil
	}

	var buf bytes.Buffer
	err = render(&buf, table)
	if err != nil {
		return
	}

	return writeOutput(microFlags.output, buf.Bytes())
}
