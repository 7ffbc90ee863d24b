// Copyright © 2026 The curage-lang authors

package profiler

import (
	"context"
	"errors"

	"go.opencensus.io/trace"

	"github.com/vain0x/curage-lang/interp"
	"github.com/vain0x/curage-lang/parser/ast"
)

type ocAnnotator struct {
	profiler
	currentContext context.Context
	currentSpan    *trace.Span
}

// NewOpenCensusAnnotator returns a hook that opens an OpenCensus span
// per executed statement.
func NewOpenCensusAnnotator(parentContext context.Context, opts ...Option) *ocAnnotator {
	p := &ocAnnotator{
		currentContext: parentContext,
	}
	p.profiler.applyConfigs(opts...)
	return p
}

func (p *ocAnnotator) Enable() error {
	if p.currentContext == nil {
		return errors.New("we can only append spans to a context that is linked to opencensus")
	}
	return p.profiler.Enable()
}

func (p *ocAnnotator) Complete() error {
	if p.currentSpan != nil {
		p.currentSpan.End()
	}
	return nil
}

func (p *ocAnnotator) EnterStmt(in *interp.Interp, stmt ast.Stmt) func() {
	if p.skipTrace(stmt) {
		return func() {}
	}
	oldContext := p.currentContext
	p.currentContext, p.currentSpan = trace.StartSpan(p.currentContext, p.prettyStmtLabel(stmt))
	r := stmt.Range()
	p.currentSpan.Annotate([]trace.Attribute{
		trace.StringAttribute("file", p.file),
		trace.Int64Attribute("line", int64(r.Start.Line)),
	}, "source")
	return func() {
		p.currentSpan.End()
		// And pop the current context back
		p.currentContext = oldContext
		p.currentSpan = trace.FromContext(p.currentContext)
	}
}
