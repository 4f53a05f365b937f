// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/mc8/translate"
)

var (
	verbose bool
	listing bool
	lang    string
)

var rootCmd = &cobra.Command{
	Use:   "mc8",
	Short: "Assembler and microcode compiler for the mc8 processor",
	Long: `Mc8 translates the two text descriptions of an mc8 machine into the
binary artifacts its hardware loads: "mc8 asm" assembles a program into
the 256-byte instruction memory image, and "mc8 micro" compiles a
microprogram into the control store of 16-bit control words.

Nothing is written unless translation succeeds.`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if len(lang) != 0 {
			return translate.SetLanguage(lang)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.PersistentFlags().BoolVarP(&listing, "listing", "l", false, "Always print the listing")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "Language of messages (BCP 47 tag)")
}

func main() {
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		atexit.Fatalf("%v: %v", rootCmd.Name(), err)
	}

	atexit.Exit(0)
}
