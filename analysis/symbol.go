// Copyright © 2026 The curage-lang authors

package analysis

// SymbolKind classifies a symbol definition.
type SymbolKind int

const (
	SymVariable SymbolKind = iota // let binding
	SymBuiltin                    // embedder-provided global (print, read)
)

func (k SymbolKind) String() string {
	switch k {
	case SymVariable:
		return "variable"
	case SymBuiltin:
		return "builtin"
	default:
		return "unknown"
	}
}

// Symbol is the identity of one declared name. Definition and
// reference sites are recorded as token ids into Result.Tokens rather
// than node pointers, so the symbol table never aliases the syntax
// tree. A re-declaration of the same name creates a new Symbol and
// freezes this one's reference list.
type Symbol struct {
	Name string
	Kind SymbolKind

	// Def is the token id of the defining name occurrence, or -1 for
	// builtins, which have no source definition.
	Def int

	// Refs are the token ids of every resolved reference, in the order
	// the binder encountered them.
	Refs []int
}

// UnresolvedRef records a name occurrence that did not resolve to any
// visible symbol.
type UnresolvedRef struct {
	Name string
	Tok  int
}
