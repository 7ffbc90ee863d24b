// Copyright © 2026 The curage-lang authors

// Package curagetest provides a harness for testing curage programs.
// A test feeds source and optional input to a fresh interpreter and
// compares the program's output or diagnostics.
package curagetest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vain0x/curage-lang/analysis"
	"github.com/vain0x/curage-lang/interp"
)

// Runner runs curage programs for tests.
type Runner struct {
	// Stdin is the input served to read(). Empty means no input.
	Stdin string

	// Globals are extra predefined names. The interpreter builtins are
	// always available.
	Globals []string
}

func (r *Runner) analyze(source string) *analysis.Result {
	globals := interp.BuiltinNames()
	globals = append(globals, r.Globals...)
	return analysis.AnalyzeSource(source, &analysis.Config{
		File:    "test.curage",
		Globals: globals,
	})
}

// RunTest runs source and fails the test unless it analyzes cleanly,
// runs without a runtime error, and prints exactly want.
func (r *Runner) RunTest(t testing.TB, source, want string) {
	t.Helper()
	res := r.analyze(source)
	if diags := res.Diagnostics(); len(diags) > 0 {
		for _, d := range diags {
			t.Errorf("diagnostic: %s: %s", d.Range.Start, d.Message)
		}
		t.FailNow()
	}

	var out bytes.Buffer
	in := interp.New(
		interp.WithStdout(&out),
		interp.WithStdin(strings.NewReader(r.Stdin)),
	)
	if err := in.Run(res.Program); err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	if got := out.String(); got != want {
		t.Errorf("output mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

// RunError runs source and fails the test unless execution stops with a
// runtime error containing wantMsg.
func (r *Runner) RunError(t testing.TB, source, wantMsg string) {
	t.Helper()
	res := r.analyze(source)

	var out bytes.Buffer
	in := interp.New(
		interp.WithStdout(&out),
		interp.WithStdin(strings.NewReader(r.Stdin)),
	)
	err := in.Run(res.Program)
	if err == nil {
		t.Fatalf("expected runtime error containing %q, program succeeded", wantMsg)
	}
	if !strings.Contains(err.Error(), wantMsg) {
		t.Errorf("error mismatch:\ngot:  %v\nwant substring: %q", err, wantMsg)
	}
}

// RunDiagnostics analyzes source and fails the test unless the
// diagnostic messages match want in order.
func (r *Runner) RunDiagnostics(t testing.TB, source string, want []string) {
	t.Helper()
	res := r.analyze(source)
	diags := res.Diagnostics()

	got := make([]string, len(diags))
	for i, d := range diags {
		got[i] = d.Message
	}
	if len(got) != len(want) {
		t.Fatalf("diagnostic count mismatch:\ngot:  %v\nwant: %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("diagnostic %d mismatch:\ngot:  %q\nwant: %q", i, got[i], want[i])
		}
	}
}
