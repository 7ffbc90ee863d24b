// Copyright © 2026 The curage-lang authors

// Package curageutil provides convenience helpers for embedding the
// curage toolchain: loading and analyzing source files the way the CLI
// does.
package curageutil

import (
	"fmt"
	"os"

	"github.com/vain0x/curage-lang/analysis"
	"github.com/vain0x/curage-lang/interp"
)

// LoadFile reads and analyzes a curage source file. The interpreter
// builtins are predefined. Analysis itself never fails; the returned
// error covers file access only.
func LoadFile(file string) (*analysis.Result, string, error) {
	data, err := os.ReadFile(file) //#nosec G304
	if err != nil {
		return nil, "", fmt.Errorf("load %s: %w", file, err)
	}
	source := string(data)
	return AnalyzeSource(file, source), source, nil
}

// AnalyzeSource analyzes source with the interpreter builtins
// predefined.
func AnalyzeSource(file, source string) *analysis.Result {
	return analysis.AnalyzeSource(source, &analysis.Config{
		File:    file,
		Globals: interp.BuiltinNames(),
	})
}
