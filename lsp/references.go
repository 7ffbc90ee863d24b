// Copyright © 2026 The curage-lang authors

package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentReferences handles the textDocument/references request.
func (s *Server) textDocumentReferences(_ *glsp.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	res := doc.Snapshot()

	ranges := res.References(fromLSPPosition(params.Position), params.Context.IncludeDeclaration)
	if ranges == nil {
		return nil, nil
	}

	locs := make([]protocol.Location, len(ranges))
	for i, r := range ranges {
		locs[i] = protocol.Location{
			URI:   params.TextDocument.URI,
			Range: toLSPRange(r),
		}
	}
	return locs, nil
}

// textDocumentDefinition handles the textDocument/definition request.
// Builtins have no source definition, so they resolve to nothing.
func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	res := doc.Snapshot()

	sym, _ := res.SymbolAt(fromLSPPosition(params.Position))
	if sym == nil || sym.Def < 0 {
		return nil, nil
	}

	return protocol.Location{
		URI:   params.TextDocument.URI,
		Range: toLSPRange(res.Tokens[sym.Def].Range()),
	}, nil
}
