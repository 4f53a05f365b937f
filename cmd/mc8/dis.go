package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ezrec/mc8/format"
	"github.com/ezrec/mc8/isa"
)

var disFlags struct {
	input string
}

// disCmd represents the dis command
var disCmd = &cobra.Command{
	Use:   "dis",
	Short: "Disassemble a raw program image",
	Long: `Dis lists the instructions of a raw program image, as written by
"mc8 asm -f raw". Trailing zero padding is not listed.`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDis(cmd.OutOrStdout())
	},
}

func init() {
	disCmd.Flags().StringVarP(&disFlags.input, "input_file", "i", "-", "Path to the raw image file")

	rootCmd.AddCommand(disCmd)
}

func runDis(w io.Writer) (err error) {
	inf, err := openInput(disFlags.input)
	if err != nil {
		return
	}
	defer inf.Close()

	code, err := io.ReadAll(io.LimitReader(inf, isa.MEMORY_SIZE+1))
	if err != nil {
		return
	}
	if len(code) > isa.MEMORY_SIZE {
		return fmt.Errorf("%v: larger than %v bytes", disFlags.input, isa.MEMORY_SIZE)
	}

	// Keep one zero past the program, it may be an operand.
	n := len(bytes.TrimRight(code, "\x00"))
	if n < len(code) {
		n++
	}

	return format.Disassembly(w, code[:n])
}
