// Copyright © 2026 The curage-lang authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vain0x/curage-lang/curageutil"
	"github.com/vain0x/curage-lang/interp"
	"github.com/vain0x/curage-lang/lint"
)

var (
	checkLint     bool
	checkLintJSON bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check file.curage...",
	Short: "Analyze source files and print diagnostics",
	Long: `Analyze curage source files without running them.

Lexing, parsing, and name binding run on every file; all diagnostics
are printed with source snippets. The exit status is 1 when any file
has diagnostics.

With --lint, additional style checks run after analysis: unused
variables, shadowed names, empty blocks, and self-assignments. Lint
findings are printed one per line in go vet style and also fail the
check.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		renderer := newRenderer()
		found := false
		for _, file := range args {
			res, source, err := curageutil.LoadFile(file)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if diags := res.Diagnostics(); len(diags) > 0 {
				found = true
				if err := renderer.RenderAll(os.Stderr, file, source, diags); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
			}
			if !checkLint && !checkLintJSON {
				continue
			}
			linter := &lint.Linter{
				Analyzers: lint.DefaultAnalyzers(),
				Globals:   interp.BuiltinNames(),
			}
			findings, err := linter.LintFile([]byte(source), file)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if len(findings) == 0 {
				continue
			}
			found = true
			write := lint.WriteText
			if checkLintJSON {
				write = lint.WriteJSON
			}
			if err := write(os.Stdout, findings); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		if found {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkLint, "lint", false,
		"Run style checks in addition to analysis")
	checkCmd.Flags().BoolVar(&checkLintJSON, "json", false,
		"Print lint findings as JSON (implies --lint)")
}
