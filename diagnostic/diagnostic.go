// Copyright © 2026 The curage-lang authors

// Package diagnostic defines the advisory diagnostics produced by the
// parser and binder, and a Rust-style annotated renderer for CLI
// output. Diagnostics are never fatal; the worst outcome of analysis is
// a partial model accompanied by explanatory diagnostics.
package diagnostic

import (
	"fmt"

	"github.com/vain0x/curage-lang/parser/token"
)

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Diagnostic is one advisory message anchored to a source range.
type Diagnostic struct {
	Severity Severity
	Message  string
	Range    token.Range
	Notes    []string
}

// Warnf builds a warning diagnostic. Analysis diagnostics are always
// advisory, so this is the constructor the parser and binder use.
func Warnf(r token.Range, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
		Range:    r,
	}
}
