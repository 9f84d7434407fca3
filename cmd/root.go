package cmd

import (
	"github.com/spf13/cobra"
)

var (
	dir      string
	useColor bool
)

var rootCmd = &cobra.Command{
	Use:   "atomc",
	Short: "atomc — lexer, parser, and symbol table for AtomC",
	Long: `atomc analyzes AtomC source files: lexical scanning, recursive-descent
parsing, and declaration-time semantic checks against a symbol table.

Commands:
  check  Process every source file under --dir, uninterrupted
  repl   Process every source file under --dir, pausing between files
`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dir, "dir", "AtomC-tests", "directory of .c source files to analyze")
	rootCmd.PersistentFlags().BoolVar(&useColor, "color", true, "colorize diagnostic output")

	rootCmd.AddCommand(checkCmd, replCmd)
}
