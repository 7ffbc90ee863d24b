// Copyright © 2026 The curage-lang authors

// Package lint provides static analysis for curage source files.
//
// The linter is modeled after go vet: each check is an independent
// Analyzer that receives an analysis snapshot and reports diagnostics.
// The framework handles analysis, running analyzers, collecting
// results, and formatting output.
//
// Analyzers are composable and extensible; embedders can define custom
// checks alongside the built-in set.
package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/vain0x/curage-lang/analysis"
	"github.com/vain0x/curage-lang/parser/token"
)

// Severity indicates the severity level of a lint diagnostic.
type Severity int

const (
	severityUnset Severity = iota // unexported zero sentinel for default detection
	SeverityError
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the severity as a JSON string.
// An unset severity (zero value) is marshaled as "warning".
func (s Severity) MarshalJSON() ([]byte, error) {
	if s == severityUnset {
		return json.Marshal("warning")
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON deserializes a severity from a JSON string.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity: %q", str)
	}
	return nil
}

// Analyzer defines a single lint check.
type Analyzer struct {
	// Name is a short identifier for this check (e.g. "unused-variable").
	Name string

	// Doc is a human-readable description. The first line is a short summary.
	Doc string

	// Severity is the default severity for diagnostics from this analyzer.
	Severity Severity

	// Run executes the check. It should call pass.Report() for each finding.
	Run func(pass *Pass) error
}

// Pass provides context to a running analyzer.
type Pass struct {
	// Analyzer is the currently running check.
	Analyzer *Analyzer

	// Filename is the source file being analyzed.
	Filename string

	// Result holds the full analysis snapshot: tokens, syntax tree, and
	// the symbol table.
	Result *analysis.Result

	// diagnostics collects reported findings.
	diagnostics []Diagnostic
}

// Report records a diagnostic finding.
func (p *Pass) Report(d Diagnostic) {
	d.Analyzer = p.Analyzer.Name
	if d.Severity == severityUnset {
		d.Severity = p.Analyzer.Severity
	}
	p.diagnostics = append(p.diagnostics, d)
}

// Reportf is a convenience for reporting a diagnostic at a source range.
// Positions are reported 1-based.
func (p *Pass) Reportf(r token.Range, format string, args ...interface{}) {
	p.Report(Diagnostic{
		Pos: Position{
			File: p.Filename,
			Line: r.Start.Line + 1,
			Col:  r.Start.Character + 1,
		},
		Message: fmt.Sprintf(format, args...),
	})
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	// Pos is the source location of the problem.
	Pos Position `json:"pos"`

	// Message is a human-readable description of the problem.
	Message string `json:"message"`

	// Analyzer is the name of the check that found this problem.
	Analyzer string `json:"analyzer"`

	// Severity is the severity level of the diagnostic.
	Severity Severity `json:"severity"`
}

// Position identifies a location in source code, 1-based.
type Position struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Col  int    `json:"col,omitempty"`
}

// String returns the position in file:line:col format.
func (p Position) String() string {
	if p.Line == 0 {
		return p.File
	}
	if p.Col > 0 {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// String returns the diagnostic in go vet style: file:line:col: message (analyzer).
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (%s)", d.Pos, d.Message, d.Analyzer)
}

// Linter runs a set of analyzers over source files.
type Linter struct {
	Analyzers []*Analyzer

	// Globals are names predefined for analysis, typically the
	// interpreter builtins.
	Globals []string
}

// LintFile analyzes a single source file and returns all findings
// sorted by position. Parse errors do not stop the linter; analyzers
// see the recovered tree and the symbols it produced.
func (l *Linter) LintFile(source []byte, filename string) ([]Diagnostic, error) {
	res := analysis.AnalyzeSource(string(source), &analysis.Config{
		File:    filename,
		Globals: l.Globals,
	})

	var all []Diagnostic
	for _, analyzer := range l.Analyzers {
		pass := &Pass{
			Analyzer: analyzer,
			Filename: filename,
			Result:   res,
		}
		if err := analyzer.Run(pass); err != nil {
			return nil, fmt.Errorf("%s: analyzer %s: %w", filename, analyzer.Name, err)
		}
		all = append(all, pass.diagnostics...)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Pos.Line != all[j].Pos.Line {
			return all[i].Pos.Line < all[j].Pos.Line
		}
		if all[i].Pos.Col != all[j].Pos.Col {
			return all[i].Pos.Col < all[j].Pos.Col
		}
		return all[i].Analyzer < all[j].Analyzer
	})
	return all, nil
}

// WriteText writes findings one per line in go vet style.
func WriteText(w io.Writer, diags []Diagnostic) error {
	for _, d := range diags {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes findings as a JSON array.
func WriteJSON(w io.Writer, diags []Diagnostic) error {
	if diags == nil {
		diags = []Diagnostic{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}
