// Copyright © 2026 The curage-lang authors

package main

import "github.com/vain0x/curage-lang/cmd"

func main() {
	cmd.Execute()
}
