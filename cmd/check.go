package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/EmanuelBits/atomc/internal/compiler"
	"github.com/EmanuelBits/atomc/internal/compiler/diag"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Analyze every source file under --dir, uninterrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		bag := diag.NewBag(os.Stderr)
		bag.NoColor = !useColor
		return compiler.RunAutomatic(dir, os.Stdout, bag)
	},
}
