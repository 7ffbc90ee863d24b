// Copyright © 2026 The curage-lang authors

package cmd

import (
	"github.com/vain0x/curage-lang/diagnostic"
)

func colorMode() diagnostic.ColorMode {
	return diagnostic.ParseColorMode(colorFlag)
}

func newRenderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{Color: colorMode()}
}
