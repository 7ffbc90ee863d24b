// Copyright © 2026 The curage-lang authors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vain0x/curage-lang/docs"
)

// docsCmd represents the docs command
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Print the language reference",
	Long:  `Print the curage language reference to stdout.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(docs.LangGuide)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
