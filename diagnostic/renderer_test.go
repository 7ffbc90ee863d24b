// Copyright © 2026 The curage-lang authors

package diagnostic

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vain0x/curage-lang/parser/token"
)

func testRange(line, start, end int) token.Range {
	return token.Range{
		Start: token.Position{Line: line, Character: start},
		End:   token.Position{Line: line, Character: end},
	}
}

func TestRenderSnippet(t *testing.T) {
	source := "let x = 1\nset y = 2"
	d := Warnf(testRange(1, 4, 5), "'%s' is not defined.", "y")

	var buf bytes.Buffer
	r := &Renderer{Color: ColorNever}
	if err := r.Render(&buf, "main.curage", source, d); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"warning: 'y' is not defined.",
		"--> main.curage:2:5", // 1-based for humans
		"2 |  set y = 2",
		"^",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("ColorNever output contains escape codes:\n%s", out)
	}
}

func TestRenderUnderlineWidth(t *testing.T) {
	source := "let total = 1"
	d := Warnf(testRange(0, 4, 9), "shadowed.")

	var buf bytes.Buffer
	r := &Renderer{Color: ColorNever}
	if err := r.Render(&buf, "t.curage", source, d); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "    ^^^^^") {
		t.Errorf("underline not aligned under the token:\n%s", buf.String())
	}
}

func TestRenderZeroWidthRange(t *testing.T) {
	// End-of-line diagnostics carry a zero-width range; the caret still
	// renders with width one.
	source := "if x"
	d := Warnf(testRange(0, 4, 4), "Expected 'end'.")

	var buf bytes.Buffer
	r := &Renderer{Color: ColorNever}
	if err := r.Render(&buf, "t.curage", source, d); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "^") {
		t.Errorf("zero-width range lost its caret:\n%s", buf.String())
	}
}

func TestRenderNotes(t *testing.T) {
	d := Warnf(testRange(0, 0, 3), "header.")
	d.Notes = []string{"a note that explains the situation"}

	var buf bytes.Buffer
	r := &Renderer{Color: ColorNever}
	if err := r.Render(&buf, "t.curage", "let x = 1", d); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "note:") || !strings.Contains(out, "a note that explains") {
		t.Errorf("notes missing:\n%s", out)
	}
}

func TestRenderAllSeparatesDiagnostics(t *testing.T) {
	diags := []Diagnostic{
		Warnf(testRange(0, 0, 3), "first."),
		Warnf(testRange(1, 0, 3), "second."),
	}
	var buf bytes.Buffer
	r := &Renderer{Color: ColorNever}
	if err := r.RenderAll(&buf, "t.curage", "let x = 1\nset x = 2", diags); err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "warning:") != 2 {
		t.Errorf("expected two rendered diagnostics:\n%s", out)
	}
	if !strings.Contains(out, "\n\nwarning:") {
		t.Errorf("diagnostics not separated by a blank line:\n%s", out)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := map[string]ColorMode{
		"always": ColorAlways,
		"never":  ColorNever,
		"auto":   ColorAuto,
		"bogus":  ColorAuto,
	}
	for in, want := range tests {
		if got := ParseColorMode(in); got != want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", in, got, want)
		}
	}
}
