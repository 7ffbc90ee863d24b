// Copyright © 2026 The curage-lang authors

package analysis

import (
	"sort"

	"github.com/vain0x/curage-lang/parser/ast"
	"github.com/vain0x/curage-lang/parser/token"
)

// HighlightKind distinguishes write (definition) regions from read
// (reference) regions in a highlight result.
type HighlightKind int

const (
	HighlightWrite HighlightKind = iota
	HighlightRead
)

// Highlight is one occurrence region of a symbol.
type Highlight struct {
	Kind  HighlightKind
	Range token.Range
}

// Edit is one text replacement of a rename result.
type Edit struct {
	Range   token.Range
	NewText string
}

// TokenAt returns the token whose range contains pos, or nil when pos
// falls in inter-token whitespace, on a blank line, or on a synthetic
// zero-width token.
func (r *Result) TokenAt(pos token.Position) *token.Token {
	i := sort.Search(len(r.Tokens), func(i int) bool {
		return pos.Before(r.Tokens[i].Range().End)
	})
	if i < len(r.Tokens) && r.Tokens[i].Range().Contains(pos) {
		return r.Tokens[i]
	}
	return nil
}

// NodeAt returns the most specific syntax node whose range contains
// pos, descending to the deepest match. Returns nil when no node
// contains pos.
func (r *Result) NodeAt(pos token.Position) ast.Node {
	var best ast.Node
	ast.Walk(r.Program, func(n ast.Node) bool {
		if _, isRoot := n.(*ast.Program); isRoot {
			return true
		}
		if !n.Range().Contains(pos) {
			return false
		}
		best = n
		return true
	})
	return best
}

// SymbolAt resolves the cursor position to the symbol whose definition
// or reference token contains it. The hit token is returned alongside.
// A linear scan of the symbol table is fine at the document sizes this
// language targets.
func (r *Result) SymbolAt(pos token.Position) (*Symbol, *token.Token) {
	tok := r.TokenAt(pos)
	if tok == nil || tok.Type != token.NAME {
		return nil, nil
	}
	for _, sym := range r.Symbols {
		if sym.Def == tok.ID {
			return sym, tok
		}
		for _, ref := range sym.Refs {
			if ref == tok.ID {
				return sym, tok
			}
		}
	}
	return nil, nil
}

// Highlights returns one write region per definition token and one
// read region per reference token of the symbol at pos: definitions
// first, then references in source order. Returns nil when pos does
// not resolve to a symbol.
func (r *Result) Highlights(pos token.Position) []Highlight {
	sym, _ := r.SymbolAt(pos)
	if sym == nil {
		return nil
	}
	var out []Highlight
	for _, id := range r.occurrences(sym) {
		kind := HighlightRead
		if id == sym.Def {
			kind = HighlightWrite
		}
		out = append(out, Highlight{Kind: kind, Range: r.Tokens[id].Range()})
	}
	return out
}

// RenameEdits returns one replacement per definition and reference
// token of the symbol at pos, in the same set and order as Highlights.
// Returns nil, never an error, when pos does not resolve to a symbol
// or the symbol is a builtin, which has no renameable definition.
func (r *Result) RenameEdits(pos token.Position, newName string) []Edit {
	sym, _ := r.SymbolAt(pos)
	if sym == nil || sym.Kind == SymBuiltin {
		return nil
	}
	var out []Edit
	for _, id := range r.occurrences(sym) {
		out = append(out, Edit{Range: r.Tokens[id].Range(), NewText: newName})
	}
	return out
}

// References returns the range of every reference to the symbol at pos
// in source order, optionally preceded by the declaration.
func (r *Result) References(pos token.Position, includeDecl bool) []token.Range {
	sym, _ := r.SymbolAt(pos)
	if sym == nil {
		return nil
	}
	var out []token.Range
	if includeDecl && sym.Def >= 0 {
		out = append(out, r.Tokens[sym.Def].Range())
	}
	for _, id := range sortedRefs(sym) {
		out = append(out, r.Tokens[id].Range())
	}
	return out
}

// occurrences returns the symbol's definition followed by its
// references in source order. Token ids increase in source order, so
// sorting by id is sorting by position.
func (r *Result) occurrences(sym *Symbol) []int {
	var ids []int
	if sym.Def >= 0 {
		ids = append(ids, sym.Def)
	}
	return append(ids, sortedRefs(sym)...)
}

func sortedRefs(sym *Symbol) []int {
	refs := make([]int, len(sym.Refs))
	copy(refs, sym.Refs)
	sort.Ints(refs)
	return refs
}
