// Copyright © 2026 The curage-lang authors

package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/vain0x/curage-lang/parser/token"
)

// Positions on the wire are UTF-16 code units while the analyzer counts
// runes. The two agree for sources confined to the Basic Multilingual
// Plane, which covers every token this language can produce plus the
// usual comment-free source files; a full UTF-16 remap is not done.

// toLSPPosition converts an analyzer position to a protocol position.
// Both are zero-based.
func toLSPPosition(pos token.Position) protocol.Position {
	return protocol.Position{
		Line:      safeUint(pos.Line),
		Character: safeUint(pos.Character),
	}
}

// fromLSPPosition converts a protocol position to an analyzer position.
func fromLSPPosition(pos protocol.Position) token.Position {
	return token.Position{
		Line:      int(pos.Line),
		Character: int(pos.Character),
	}
}

// toLSPRange converts an analyzer range to a protocol range.
func toLSPRange(r token.Range) protocol.Range {
	return protocol.Range{
		Start: toLSPPosition(r.Start),
		End:   toLSPPosition(r.End),
	}
}

// safeUint converts a non-negative int to protocol.UInteger, clamping
// negative values to zero.
func safeUint(n int) protocol.UInteger {
	if n < 0 {
		return 0
	}
	return protocol.UInteger(n)
}

// uriToPath converts a file:// URI to a filesystem path.
func uriToPath(uri string) string {
	if path, ok := strings.CutPrefix(uri, "file://"); ok {
		return path
	}
	return uri
}

// pathToURI converts a filesystem path to a file:// URI.
func pathToURI(path string) string {
	if strings.HasPrefix(path, "/") {
		return "file://" + path
	}
	return path
}
