package cmd

import (
	"fmt"
	"os"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/EmanuelBits/atomc/internal/compiler"
	"github.com/EmanuelBits/atomc/internal/compiler/diag"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Analyze every source file under --dir, pausing between files",
	RunE: func(cmd *cobra.Command, args []string) error {
		bag := diag.NewBag(os.Stderr)
		bag.NoColor = !useColor

		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)

		next := func(prompt string) (string, bool) {
			line, err := ln.Prompt(prompt)
			if err != nil {
				return "", false
			}
			ln.AppendHistory(line)
			return line, true
		}

		fmt.Println(`type "exit" at any prompt to stop`)
		return compiler.RunInteractive(dir, os.Stdout, bag, next)
	},
}
