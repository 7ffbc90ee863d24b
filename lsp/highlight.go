// Copyright © 2026 The curage-lang authors

package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/vain0x/curage-lang/analysis"
)

// textDocumentDocumentHighlight handles the textDocument/documentHighlight
// request: the definition is marked as a write and each reference as a
// read. A position that hits no symbol yields no highlights.
func (s *Server) textDocumentDocumentHighlight(_ *glsp.Context, params *protocol.DocumentHighlightParams) ([]protocol.DocumentHighlight, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	res := doc.Snapshot()

	highlights := res.Highlights(fromLSPPosition(params.Position))
	if highlights == nil {
		return nil, nil
	}

	out := make([]protocol.DocumentHighlight, len(highlights))
	for i, h := range highlights {
		kind := protocol.DocumentHighlightKindRead
		if h.Kind == analysis.HighlightWrite {
			kind = protocol.DocumentHighlightKindWrite
		}
		out[i] = protocol.DocumentHighlight{
			Range: toLSPRange(h.Range),
			Kind:  &kind,
		}
	}
	return out, nil
}
