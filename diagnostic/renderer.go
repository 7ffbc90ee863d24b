// Copyright © 2026 The curage-lang authors

package diagnostic

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const noteWrapWidth = 72

// Renderer formats diagnostics as annotated source snippets. The
// source text is supplied by the caller; the renderer never touches
// the filesystem, so it works on unsaved editor buffers too.
type Renderer struct {
	// Color controls ANSI color output. Default is ColorAuto.
	Color ColorMode
}

// Render writes a single diagnostic against the given source text.
// The file name is used for the location line only.
func (r *Renderer) Render(w io.Writer, file, source string, d Diagnostic) error {
	p := choosePalette(r.Color, fileFromWriter(w))
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}

	r.writeHeader(ew, d, p)
	r.writeSnippet(ew, file, source, d, p)
	for _, note := range d.Notes {
		wrapped := indent.String(wordwrap.String(note, noteWrapWidth), 6)
		ew.printf("   %s=%s note:\n%s\n", p.boldCyan, p.reset, wrapped)
	}

	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

// RenderAll writes all diagnostics to w separated by blank lines.
func (r *Renderer) RenderAll(w io.Writer, file, source string, diags []Diagnostic) error {
	for i, d := range diags {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.Render(w, file, source, d); err != nil {
			return err
		}
	}
	return nil
}

// errWriter captures the first write error, short-circuiting subsequent
// writes, so each formatting step can skip error checks.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}

func (r *Renderer) writeHeader(ew *errWriter, d Diagnostic, p palette) {
	sevColor := p.boldYellow
	switch d.Severity {
	case SeverityError:
		sevColor = p.boldRed
	case SeverityNote:
		sevColor = p.boldCyan
	}
	ew.printf("%s%s:%s %s%s%s\n",
		sevColor, d.Severity, p.reset,
		p.bold, d.Message, p.reset)
}

func (r *Renderer) writeSnippet(ew *errWriter, file, source string, d Diagnostic, p palette) {
	// Location line uses 1-based line/column for human consumption.
	line := d.Range.Start.Line
	col := d.Range.Start.Character
	ew.printf("  %s-->%s %s:%d:%d\n", p.boldBlue, p.reset, file, line+1, col+1)

	lines := strings.Split(source, "\n")
	if line < 0 || line >= len(lines) {
		ew.printf("   %s|%s\n", p.boldBlue, p.reset)
		return
	}
	text := strings.TrimSuffix(lines[line], "\r")

	lineStr := fmt.Sprintf("%d", line+1)
	pad := strings.Repeat(" ", len(lineStr))

	ew.printf(" %s%s |%s\n", p.boldBlue, pad, p.reset)
	ew.printf(" %s%s |%s  %s\n", p.boldBlue, lineStr, p.reset, text)

	underLen := 1
	if d.Range.End.Line == d.Range.Start.Line && d.Range.End.Character > col {
		underLen = d.Range.End.Character - col
	}
	runes := []rune(text)
	if col > len(runes) {
		col = len(runes)
	}
	underPad := strings.Repeat(" ", col)
	underline := strings.Repeat("^", underLen)
	ew.printf(" %s%s |%s  %s%s%s%s\n", p.boldBlue, pad, p.reset, underPad, p.boldRed, underline, p.reset)
	ew.printf(" %s%s |%s\n", p.boldBlue, pad, p.reset)
}

// fileFromWriter extracts an *os.File from a writer for terminal
// detection. Returns nil if the writer is not backed by a file.
func fileFromWriter(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
