// Copyright © 2026 The curage-lang authors

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vain0x/curage-lang/parser/ast"
	"github.com/vain0x/curage-lang/parser/token"
)

func pos(line, character int) token.Position {
	return token.Position{Line: line, Character: character}
}

func TestTokenAt(t *testing.T) {
	res := analyzeSource(t, "let x = 10")

	tok := res.TokenAt(pos(0, 4))
	require.NotNil(t, tok)
	assert.Equal(t, "x", tok.Text)

	// Any position inside a token hits it, start inclusive.
	tok = res.TokenAt(pos(0, 9))
	require.NotNil(t, tok)
	assert.Equal(t, "10", tok.Text)

	// Inter-token whitespace hits nothing; neither does the position
	// just past a token.
	assert.Nil(t, res.TokenAt(pos(0, 3)))
	assert.Nil(t, res.TokenAt(pos(0, 7)))
	assert.Nil(t, res.TokenAt(pos(5, 0)))
}

func TestNodeAt(t *testing.T) {
	res := analyzeSource(t, "let x = 1 + 2")

	node := res.NodeAt(pos(0, 12))
	require.NotNil(t, node)
	lit, ok := node.(*ast.Lit)
	require.True(t, ok, "deepest node at the literal should be *ast.Lit, got %T", node)
	assert.Equal(t, "2", lit.Tok.Text)

	// On the operator the deepest covering node is the binary itself.
	node = res.NodeAt(pos(0, 10))
	_, ok = node.(*ast.Binary)
	assert.True(t, ok, "node at operator is %T, want *ast.Binary", node)
}

func TestSymbolAt(t *testing.T) {
	res := analyzeSource(t, "let x = 1\nset x = 2")

	// Definition site and reference site resolve to the same symbol.
	def, defTok := res.SymbolAt(pos(0, 4))
	ref, refTok := res.SymbolAt(pos(1, 4))
	require.NotNil(t, def)
	require.NotNil(t, ref)
	assert.Same(t, def, ref)
	assert.NotEqual(t, defTok.ID, refTok.ID)

	// Keywords and literals are not symbols.
	sym, _ := res.SymbolAt(pos(0, 0))
	assert.Nil(t, sym)
	sym, _ = res.SymbolAt(pos(0, 8))
	assert.Nil(t, sym)
}

func TestHighlights(t *testing.T) {
	res := analyzeSource(t, "let x = 1\nset x = x + 1")

	hs := res.Highlights(pos(0, 4))
	require.Len(t, hs, 3)
	assert.Equal(t, HighlightWrite, hs[0].Kind)
	assert.Equal(t, HighlightRead, hs[1].Kind)
	assert.Equal(t, HighlightRead, hs[2].Kind)

	// Definition first, references in source order.
	assert.Equal(t, pos(0, 4), hs[0].Range.Start)
	assert.Equal(t, pos(1, 4), hs[1].Range.Start)
	assert.Equal(t, pos(1, 8), hs[2].Range.Start)

	// Querying from a reference yields the same set.
	assert.Equal(t, hs, res.Highlights(pos(1, 8)))

	// A miss yields nil.
	assert.Nil(t, res.Highlights(pos(0, 6)))
}

func TestHighlightsShadowing(t *testing.T) {
	res := analyzeSource(t, "let x = 1\nlet x = x")

	// The second definition has no references; the occurrence on line 1
	// column 8 belongs to the first x.
	hs := res.Highlights(pos(1, 4))
	require.Len(t, hs, 1)
	assert.Equal(t, HighlightWrite, hs[0].Kind)

	hs = res.Highlights(pos(0, 4))
	require.Len(t, hs, 2)
	assert.Equal(t, pos(1, 8), hs[1].Range.Start)
}

func TestRenameEdits(t *testing.T) {
	res := analyzeSource(t, "let x = 1\nset x = x + 1")

	edits := res.RenameEdits(pos(1, 8), "count")
	require.Len(t, edits, 3)
	for _, e := range edits {
		assert.Equal(t, "count", e.NewText)
	}
	// Same occurrence set and order as highlights.
	hs := res.Highlights(pos(1, 8))
	require.Len(t, hs, len(edits))
	for i := range edits {
		assert.Equal(t, hs[i].Range, edits[i].Range)
	}

	// A miss is nil, not an error.
	assert.Nil(t, res.RenameEdits(pos(0, 6), "count"))
}

func TestRenameBuiltinRejected(t *testing.T) {
	res := AnalyzeSource("let y = print(1)", &Config{
		File:    "test.curage",
		Globals: []string{"print"},
	})
	assert.Nil(t, res.RenameEdits(pos(0, 8), "log"))
	// Highlights still work on builtins.
	assert.NotEmpty(t, res.Highlights(pos(0, 8)))
}

func TestReferences(t *testing.T) {
	// Cursor on the second declaration of a: its references are the
	// two uses on the last line, not the first declaration's.
	res := analyzeSource(t, "let a = 1\nlet a = a\nset a = a(a)")

	refs := res.References(pos(1, 4), false)
	require.Len(t, refs, 3)
	assert.Equal(t, pos(2, 4), refs[0].Start)
	assert.Equal(t, pos(2, 8), refs[1].Start)
	assert.Equal(t, pos(2, 10), refs[2].Start)

	withDecl := res.References(pos(1, 4), true)
	require.Len(t, withDecl, 4)
	assert.Equal(t, pos(1, 4), withDecl[0].Start)

	// The first a is only referenced by the second one's initializer.
	refs = res.References(pos(0, 4), false)
	require.Len(t, refs, 1)
	assert.Equal(t, pos(1, 8), refs[0].Start)
}

func TestReferencesSortedDespiteBindingOrder(t *testing.T) {
	// The binder visits the set right-hand side before the left-hand
	// name, so raw reference order differs from source order.
	res := analyzeSource(t, "let x = 1\nset x = x")
	refs := res.References(pos(0, 4), false)
	require.Len(t, refs, 2)
	assert.True(t, refs[0].Start.Before(refs[1].Start))
}
