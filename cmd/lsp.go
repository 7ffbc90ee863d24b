// Copyright © 2026 The curage-lang authors

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/vain0x/curage-lang/interp"
	"github.com/vain0x/curage-lang/lsp"

	_ "github.com/tliron/commonlog/simple"
)

var (
	lspStdio   bool
	lspPort    int
	lspVerbose int
)

// lspCmd represents the lsp command
var lspCmd = &cobra.Command{
	Use:   "lsp [flags]",
	Short: "Start the curage Language Server Protocol server",
	Long: `Start an LSP server for curage source files.

The language server provides real-time diagnostics, document highlight,
go-to-definition, hover, find references, and rename support.

Transport modes:
  --stdio      Use stdin/stdout for LSP communication (default)
  --port N     Listen for an LSP client on TCP port N

Examples:
  curage lsp                     Start with stdio transport
  curage lsp --stdio             Same as above (explicit)
  curage lsp --port 7998         Start with TCP on port 7998`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(lspVerbose, nil)

		srv := lsp.New(lsp.WithGlobals(interp.BuiltinNames()))

		if !lspStdio && lspPort > 0 {
			addr := fmt.Sprintf("localhost:%d", lspPort)
			log.Printf("curage LSP server listening on %s", addr)
			if err := srv.RunTCP(addr); err != nil {
				fmt.Fprintf(os.Stderr, "lsp server error: %v\n", err)
				os.Exit(1)
			}
		} else {
			if err := srv.RunStdio(); err != nil {
				fmt.Fprintf(os.Stderr, "lsp server error: %v\n", err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(lspCmd)

	lspCmd.Flags().BoolVar(&lspStdio, "stdio", false,
		"Use stdin/stdout for LSP communication (default behavior)")
	lspCmd.Flags().IntVar(&lspPort, "port", 0,
		"TCP port for LSP server (use instead of --stdio)")
	lspCmd.Flags().IntVar(&lspVerbose, "verbose", 0,
		"Log verbosity for the LSP transport")
}
