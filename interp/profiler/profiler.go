// Copyright © 2026 The curage-lang authors

// Package profiler annotates interpreter execution with trace spans.
// Two backends are provided, OpenTelemetry and OpenCensus; both hang
// off the interpreter's statement hook and open one span per executed
// statement.
package profiler

import (
	"fmt"

	"github.com/vain0x/curage-lang/interp"
	"github.com/vain0x/curage-lang/parser/ast"
)

// SkipFilter decides whether a statement should be left out of the
// trace. Returning true skips the span.
type SkipFilter func(stmt ast.Stmt) bool

// StmtLabeler overrides the span name for a statement. An empty result
// falls back to the default label.
type StmtLabeler func(stmt ast.Stmt) string

// profiler holds configuration shared by the annotators.
type profiler struct {
	file        string
	enabled     bool
	skipFilter  SkipFilter
	stmtLabeler StmtLabeler
}

type Option func(*profiler)

// WithFile records the file name attached to span attributes.
func WithFile(file string) Option {
	return func(p *profiler) { p.file = file }
}

// WithSkipFilter installs a statement filter.
func WithSkipFilter(f SkipFilter) Option {
	return func(p *profiler) { p.skipFilter = f }
}

// WithStmtLabeler installs a span name override.
func WithStmtLabeler(l StmtLabeler) Option {
	return func(p *profiler) { p.stmtLabeler = l }
}

func (p *profiler) applyConfigs(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

func (p *profiler) Enable() error {
	if p.enabled {
		return fmt.Errorf("profiler already enabled")
	}
	p.enabled = true
	return nil
}

func (p *profiler) IsEnabled() bool {
	return p.enabled
}

func (p *profiler) skipTrace(stmt ast.Stmt) bool {
	return !p.enabled || p.skipFilter != nil && p.skipFilter(stmt)
}

// prettyStmtLabel returns the span name for a statement, defaulting to
// the statement form plus the bound name where one exists ("let x").
func (p *profiler) prettyStmtLabel(stmt ast.Stmt) string {
	label := defaultStmtLabel(stmt)
	if p.stmtLabeler != nil {
		if pretty := p.stmtLabeler(stmt); pretty != "" {
			label = pretty
		}
	}
	return label
}

func defaultStmtLabel(stmt ast.Stmt) string {
	switch s := stmt.(type) {
	case *ast.Let:
		if s.Name != nil {
			return "let " + s.Name.Tok.Text
		}
		return "let"
	case *ast.Set:
		if s.Name != nil {
			return "set " + s.Name.Tok.Text
		}
		return "set"
	case *ast.If:
		return "if"
	case *ast.While:
		return "while"
	default:
		return "stmt"
	}
}

var _ interp.Hook = &profiler{}

// EnterStmt satisfies interp.Hook with a no-op span; the annotators
// embed profiler and override it.
func (p *profiler) EnterStmt(in *interp.Interp, stmt ast.Stmt) func() {
	return func() {}
}
