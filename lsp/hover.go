// Copyright © 2026 The curage-lang authors

package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/vain0x/curage-lang/analysis"
)

// textDocumentHover handles the textDocument/hover request.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	res := doc.Snapshot()

	sym, _ := res.SymbolAt(fromLSPPosition(params.Position))
	if sym == nil {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: buildHoverContent(res, sym),
		},
	}, nil
}

// buildHoverContent builds Markdown hover text for a symbol.
func buildHoverContent(res *analysis.Result, sym *analysis.Symbol) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** `%s`", sym.Kind, sym.Name)
	if sym.Def >= 0 {
		pos := res.Tokens[sym.Def].Pos
		fmt.Fprintf(&sb, "\n\nDefined at line %d.", pos.Line+1)
	}
	if n := len(sym.Refs); n == 1 {
		sb.WriteString("\n\n1 reference.")
	} else {
		fmt.Fprintf(&sb, "\n\n%d references.", n)
	}
	return sb.String()
}
