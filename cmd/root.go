// Copyright © 2026 The curage-lang authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	colorFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "curage",
	Short: "Curage is a tiny block language with IDE tooling",
	Long: `Curage is a tiny line-oriented block language built to demonstrate
position-aware tooling: a lossless lexer, an error-recovering parser,
a shadowing-correct binder, and editor queries over the result.

Getting started:
  curage run file.curage       Run a source file
  curage check file.curage     Analyze a file and print diagnostics
  curage fmt -w file.curage    Format a file in place
  curage repl                  Start an interactive session
  curage lsp --stdio           Start the language server
  curage debug file.curage     Run a file under the DAP debugger

Language overview:
  A program is a sequence of statements, one per line. Variables are
  declared with "let x = expr" and reassigned with "set x = expr".
  "if expr" and "while expr" open a block closed by "end" on its own
  line. Expressions are integers, names, a single binary operation, or
  a call with at most one argument, like print(x).

More information:
  Source code:     https://github.com/vain0x/curage-lang`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.curage.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".curage" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".curage")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
