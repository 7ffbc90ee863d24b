// Copyright © 2026 The curage-lang authors

package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vain0x/curage-lang/formatter"
)

var (
	fmtWrite bool
	fmtDiff  bool
)

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:   "fmt file.curage...",
	Short: "Format curage source files",
	Long: `Format curage source files: blocks are indented two spaces per
level, tokens are single spaced, and call parentheses hug their
contents. Formatting is lossless; lines that fail to parse are
re-spaced but otherwise left alone.

By default the formatted source is printed to stdout. With -w the file
is rewritten in place; with -l the names of files that would change are
listed and the exit status is 1 when any would.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		changed := false
		for _, file := range args {
			data, err := os.ReadFile(file)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			out := formatter.Format(data, nil)
			switch {
			case fmtDiff:
				if !bytes.Equal(data, out) {
					changed = true
					fmt.Println(file)
				}
			case fmtWrite:
				if bytes.Equal(data, out) {
					continue
				}
				if err := os.WriteFile(file, out, 0o644); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
			default:
				os.Stdout.Write(out)
			}
		}
		if fmtDiff && changed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false,
		"Rewrite files in place instead of printing to stdout")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "list", "l", false,
		"List files whose formatting differs; exit 1 when any do")
}
