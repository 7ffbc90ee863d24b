// Copyright © 2026 The curage-lang authors

// Package analysis binds names in a curage syntax tree to symbols and
// answers the position queries editors ask: hit-testing, symbol
// resolution, highlights, references, and rename edits. A Result is an
// immutable snapshot; document changes build a whole new Result rather
// than mutating one in place.
package analysis

import (
	"sort"

	"github.com/vain0x/curage-lang/diagnostic"
	"github.com/vain0x/curage-lang/parser/ast"
	"github.com/vain0x/curage-lang/parser/lexer"
	"github.com/vain0x/curage-lang/parser/rdparser"
	"github.com/vain0x/curage-lang/parser/token"
)

// Config controls a binding pass.
type Config struct {
	// File is the display name used in rendered diagnostics.
	File string

	// Globals are names predefined by the embedder, typically the
	// interpreter's builtin functions. They resolve like ordinary
	// symbols but have no definition site.
	Globals []string

	// BlockScoped gives if/while bodies their own scope frame. The
	// default (false) keeps the language's documented behavior where
	// bindings introduced inside a block stay visible after it.
	BlockScoped bool
}

// Result is the semantic model for one document snapshot.
type Result struct {
	File    string
	Tokens  []*token.Token
	Program *ast.Program

	SyntaxDiagnostics   []diagnostic.Diagnostic
	SemanticDiagnostics []diagnostic.Diagnostic

	// Symbols holds every symbol in definition order; builtins first,
	// then one entry per let statement encountered.
	Symbols []*Symbol

	Unresolved []UnresolvedRef
}

// Diagnostics returns syntax and semantic diagnostics merged in source
// order.
func (r *Result) Diagnostics() []diagnostic.Diagnostic {
	out := make([]diagnostic.Diagnostic, 0, len(r.SyntaxDiagnostics)+len(r.SemanticDiagnostics))
	out = append(out, r.SyntaxDiagnostics...)
	out = append(out, r.SemanticDiagnostics...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Range.Start.Before(out[j].Range.Start)
	})
	return out
}

// AnalyzeSource runs the whole pipeline over document text: lex, parse,
// bind. It never fails; problems surface as diagnostics on the Result.
func AnalyzeSource(text string, cfg *Config) *Result {
	toks := lexer.Tokenize(text)
	prog, syntaxDiags := rdparser.Parse(toks)
	res := Analyze(prog, toks, cfg)
	res.SyntaxDiagnostics = syntaxDiags
	return res
}

// Analyze binds names in prog against a fresh environment and returns
// the symbol table with semantic diagnostics.
func Analyze(prog *ast.Program, toks []*token.Token, cfg *Config) *Result {
	if cfg == nil {
		cfg = &Config{}
	}
	res := &Result{
		File:    cfg.File,
		Tokens:  toks,
		Program: prog,
	}
	b := &binder{
		scope: NewScope(),
		res:   res,
		cfg:   cfg,
	}
	for _, name := range cfg.Globals {
		sym := &Symbol{Name: name, Kind: SymBuiltin, Def: -1}
		res.Symbols = append(res.Symbols, sym)
		b.scope.Define(sym)
	}
	for _, stmt := range prog.Stmts {
		b.stmt(stmt)
	}
	return res
}

// binder performs the single depth-first, left-to-right walk.
type binder struct {
	scope *Scope
	res   *Result
	cfg   *Config
}

func (b *binder) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Let:
		// The initializer is resolved before the name is bound, so
		// `let x = x` sees any pre-existing x, never the new one.
		b.expr(s.Init)
		sym := &Symbol{Name: s.Name.Tok.Text, Kind: SymVariable, Def: s.Name.Tok.ID}
		b.res.Symbols = append(b.res.Symbols, sym)
		b.scope.Define(sym)
	case *ast.Set:
		// set rebinds an existing symbol: the left-hand name is a
		// reference, not a new definition.
		b.expr(s.Value)
		b.resolve(s.Name)
	case *ast.If:
		b.block(s.Cond, s.Body)
	case *ast.While:
		b.block(s.Cond, s.Body)
	case *ast.Error:
		// Nothing to bind inside a region that failed to parse.
	}
}

func (b *binder) block(cond ast.Expr, body []ast.Stmt) {
	b.expr(cond)
	if b.cfg.BlockScoped {
		b.scope.Push()
		defer b.scope.Pop()
	}
	for _, stmt := range body {
		b.stmt(stmt)
	}
}

func (b *binder) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Name:
		b.resolve(e)
	case *ast.Binary:
		b.expr(e.X)
		b.expr(e.Y)
	case *ast.Call:
		b.expr(e.Callee)
		if e.Arg != nil {
			b.expr(e.Arg)
		}
	case *ast.Lit, *ast.Error:
	}
}

// resolve records one environment lookup for a name occurrence. A miss
// produces one diagnostic and never interrupts the walk.
func (b *binder) resolve(n *ast.Name) {
	sym := b.scope.Lookup(n.Tok.Text)
	if sym == nil {
		b.res.SemanticDiagnostics = append(b.res.SemanticDiagnostics,
			diagnostic.Warnf(n.Tok.Range(), "'%s' is not defined.", n.Tok.Text))
		b.res.Unresolved = append(b.res.Unresolved, UnresolvedRef{Name: n.Tok.Text, Tok: n.Tok.ID})
		return
	}
	sym.Refs = append(sym.Refs, n.Tok.ID)
}
