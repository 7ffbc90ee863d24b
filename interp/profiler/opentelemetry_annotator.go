// Copyright © 2026 The curage-lang authors

package profiler

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vain0x/curage-lang/interp"
	"github.com/vain0x/curage-lang/parser/ast"
)

const (
	// ContextOpenTelemetryTracerKey looks up a parent tracer name from a context key.
	ContextOpenTelemetryTracerKey = "otelParentTracer"
)

var _ interp.Hook = &otelAnnotator{}

type otelAnnotator struct {
	profiler
	currentContext context.Context
	currentSpan    trace.Span
}

// NewOpenTelemetryAnnotator returns a hook that opens an OpenTelemetry
// span for every executed statement, parenting nested statements under
// the enclosing if or while span.
func NewOpenTelemetryAnnotator(parentContext context.Context, opts ...Option) *otelAnnotator {
	p := &otelAnnotator{
		currentContext: parentContext,
	}
	p.profiler.applyConfigs(opts...)
	return p
}

func (p *otelAnnotator) Enable() error {
	if p.currentContext == nil {
		return errors.New("we can only append spans to a context that is linked to opentelemetry")
	}
	return p.profiler.Enable()
}

func (p *otelAnnotator) Complete() error {
	if p.currentSpan != nil {
		p.currentSpan.End()
	}
	return nil
}

func contextTracer(ctx context.Context) trace.Tracer {
	tracerName, ok := ctx.Value(ContextOpenTelemetryTracerKey).(string)
	if !ok {
		tracerName = "curage"
	}
	return otel.GetTracerProvider().Tracer(tracerName)
}

func (p *otelAnnotator) EnterStmt(in *interp.Interp, stmt ast.Stmt) func() {
	if p.skipTrace(stmt) {
		return func() {}
	}
	oldContext := p.currentContext
	p.currentContext, p.currentSpan = contextTracer(p.currentContext).Start(p.currentContext, p.prettyStmtLabel(stmt))
	p.addCodeAttributes(stmt)
	return func() {
		p.currentSpan.End()
		// And pop the current context back
		p.currentContext = oldContext
		p.currentSpan = trace.SpanFromContext(p.currentContext)
	}
}

func (p *otelAnnotator) addCodeAttributes(stmt ast.Stmt) {
	r := stmt.Range()
	attrs := []attribute.KeyValue{
		attribute.String("code.filepath", p.file),
		attribute.Int("code.lineno", r.Start.Line),
		attribute.Int("code.column", r.Start.Character),
	}
	p.currentSpan.SetAttributes(attrs...)
}
