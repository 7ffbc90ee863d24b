// Copyright © 2026 The curage-lang authors

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vain0x/curage-lang/curageutil"
	"github.com/vain0x/curage-lang/interp"
	"github.com/vain0x/curage-lang/interp/debugger"
	"github.com/vain0x/curage-lang/interp/debugger/dapserver"
)

var (
	debugPort        int
	debugStdio       bool
	debugStopOnEntry bool
)

// debugCmd represents the debug command
var debugCmd = &cobra.Command{
	Use:   "debug [flags] file.curage",
	Short: "Run a file under the DAP debugger",
	Long: `Start a DAP (Debug Adapter Protocol) server executing a curage
source file, for editors like VS Code, Neovim, or Helix to connect to.

Transport modes:
  --port N     Listen for a DAP client on TCP port N (default: 4711)
  --stdio      Use stdin/stdout for DAP communication (for editors that
               launch the debug adapter as a child process)

The --stop-on-entry flag pauses execution before the first statement,
giving the editor time to set breakpoints.

Examples:
  curage debug main.curage                   Debug with TCP on port 4711
  curage debug --port 9229 main.curage       Debug with TCP on port 9229
  curage debug --stdio main.curage           Debug with stdio transport
  curage debug --stop-on-entry main.curage   Pause at first statement`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file, err := filepath.Abs(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		res, source, err := curageutil.LoadFile(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if diags := res.Diagnostics(); len(diags) > 0 {
			if err := newRenderer().RenderAll(os.Stderr, file, source, diags); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}

		engine := debugger.NewEngine(file)
		engine.SetStopOnEntry(debugStopOnEntry)
		srv := dapserver.New(engine)

		// The interpreter blocks on the engine until the client sends
		// configurationDone.
		go func() {
			code := 0
			if err := interp.New(interp.WithHook(engine)).Run(res.Program); err != nil {
				fmt.Fprintln(os.Stderr, err)
				code = 1
			}
			engine.Exited(code)
		}()

		if debugStdio {
			err = srv.ServeStdio(os.Stdin, os.Stdout)
		} else {
			addr := fmt.Sprintf("localhost:%d", debugPort)
			fmt.Fprintf(os.Stderr, "curage DAP server listening on %s\n", addr)
			err = srv.ServeTCP(addr)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "dap server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)

	debugCmd.Flags().IntVar(&debugPort, "port", 4711,
		"TCP port for the DAP server")
	debugCmd.Flags().BoolVar(&debugStdio, "stdio", false,
		"Use stdin/stdout for DAP communication")
	debugCmd.Flags().BoolVar(&debugStopOnEntry, "stop-on-entry", false,
		"Pause execution before the first statement")
}
