// Copyright © 2026 The curage-lang authors

package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/vain0x/curage-lang/analysis"
)

// textDocumentPrepareRename validates that the symbol under the cursor
// is renameable and returns its range. Per the LSP spec, a null result
// (not an error) means rename is not applicable here.
func (s *Server) textDocumentPrepareRename(_ *glsp.Context, params *protocol.PrepareRenameParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	res := doc.Snapshot()

	sym, tok := res.SymbolAt(fromLSPPosition(params.Position))
	if sym == nil || sym.Kind == analysis.SymBuiltin {
		return nil, nil
	}

	return &protocol.RangeWithPlaceholder{
		Range:       toLSPRange(tok.Range()),
		Placeholder: sym.Name,
	}, nil
}

// textDocumentRename handles the textDocument/rename request. The edit
// set covers the definition and every reference; a miss or a builtin
// produces an empty edit rather than an error, leaving the document
// untouched.
func (s *Server) textDocumentRename(_ *glsp.Context, params *protocol.RenameParams) (*protocol.WorkspaceEdit, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	res := doc.Snapshot()

	edits := res.RenameEdits(fromLSPPosition(params.Position), params.NewName)
	if edits == nil {
		return nil, nil
	}

	textEdits := make([]protocol.TextEdit, len(edits))
	for i, e := range edits {
		textEdits[i] = protocol.TextEdit{
			Range:   toLSPRange(e.Range),
			NewText: e.NewText,
		}
	}
	return &protocol.WorkspaceEdit{
		Changes: map[protocol.DocumentUri][]protocol.TextEdit{
			params.TextDocument.URI: textEdits,
		},
	}, nil
}
