// Copyright © 2026 The curage-lang authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vain0x/curage-lang/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive curage session",
	Long: `Start an interactive curage session.

Statements run against a persistent environment and bare expressions
are evaluated and echoed. A line that opens an if or while block
switches to a continuation prompt until the matching 'end'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := repl.Run("curage> ", repl.WithColor(colorMode())); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
