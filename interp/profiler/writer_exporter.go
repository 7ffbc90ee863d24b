// Copyright © 2026 The curage-lang authors

package profiler

import (
	"context"
	"fmt"
	"io"
	"sync"

	octrace "go.opencensus.io/trace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// WriterExporter is a SpanExporter that prints one line per finished
// span, with its name and wall-clock duration. The run command uses it
// to show a statement-level profile without any collector setup.
type WriterExporter struct {
	mu      sync.Mutex
	w       io.Writer
	stopped bool
}

var _ sdktrace.SpanExporter = &WriterExporter{}

// NewWriterExporter returns an exporter printing to w.
func NewWriterExporter(w io.Writer) *WriterExporter {
	return &WriterExporter{w: w}
}

func (e *WriterExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return nil
	}
	for _, span := range spans {
		line := int64(-1)
		for _, attr := range span.Attributes() {
			if attr.Key == "code.lineno" {
				line = attr.Value.AsInt64()
			}
		}
		dur := span.EndTime().Sub(span.StartTime())
		if line >= 0 {
			fmt.Fprintf(e.w, "%-16s line %-4d %v\n", span.Name(), line, dur)
		} else {
			fmt.Fprintf(e.w, "%-16s %v\n", span.Name(), dur)
		}
	}
	return nil
}

func (e *WriterExporter) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopped = true
	return nil
}

// OCWriterExporter is the OpenCensus counterpart of WriterExporter.
type OCWriterExporter struct {
	mu sync.Mutex
	w  io.Writer
}

var _ octrace.Exporter = &OCWriterExporter{}

// NewOCWriterExporter returns an exporter printing to w.
func NewOCWriterExporter(w io.Writer) *OCWriterExporter {
	return &OCWriterExporter{w: w}
}

func (e *OCWriterExporter) ExportSpan(sd *octrace.SpanData) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fmt.Fprintf(e.w, "%-16s %v\n", sd.Name, sd.EndTime.Sub(sd.StartTime))
}
