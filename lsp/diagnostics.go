// Copyright © 2026 The curage-lang authors

package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/vain0x/curage-lang/diagnostic"
)

// textDocumentDidOpen handles the textDocument/didOpen notification.
func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.captureNotify(ctx)
	doc := s.docs.Open(
		params.TextDocument.URI,
		int32(params.TextDocument.Version),
		params.TextDocument.Text,
		s.globals,
	)
	s.publishDiagnostics(doc)
	return nil
}

// textDocumentDidChange handles the textDocument/didChange notification.
// Analysis runs synchronously so every later request sees a snapshot of
// the new content.
func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	s.captureNotify(ctx)
	// With full sync, the last content change is the complete document.
	var content string
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			content = c.Text
		case protocol.TextDocumentContentChangeEvent:
			content = c.Text
		}
	}

	doc := s.docs.Change(
		params.TextDocument.URI,
		int32(params.TextDocument.Version),
		content,
		s.globals,
	)
	s.publishDiagnostics(doc)
	return nil
}

// textDocumentDidSave handles the textDocument/didSave notification.
func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.captureNotify(ctx)
	if doc := s.docs.Get(params.TextDocument.URI); doc != nil {
		s.publishDiagnostics(doc)
	}
	return nil
}

// textDocumentDidClose handles the textDocument/didClose notification.
func (s *Server) textDocumentDidClose(_ *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	// Clear diagnostics for the closed file.
	s.sendNotification(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	s.docs.Close(params.TextDocument.URI)
	return nil
}

// publishDiagnostics sends the document's merged syntax and semantic
// diagnostics to the client. All of them are advisory, so they are
// published as warnings; the editing experience never blocks on them.
func (s *Server) publishDiagnostics(doc *Document) {
	res := doc.Snapshot()
	diags := []protocol.Diagnostic{}
	for _, d := range res.Diagnostics() {
		sev := mapSeverity(d.Severity)
		diags = append(diags, protocol.Diagnostic{
			Range:    toLSPRange(d.Range),
			Severity: &sev,
			Source:   strPtr("curage"),
			Message:  d.Message,
		})
	}

	s.sendNotification(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Diagnostics: diags,
	})
}

func mapSeverity(sev diagnostic.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case diagnostic.SeverityError:
		return protocol.DiagnosticSeverityError
	case diagnostic.SeverityNote:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityWarning
	}
}

func strPtr(s string) *string {
	return &s
}
