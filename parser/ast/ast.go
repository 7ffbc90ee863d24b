// Copyright © 2026 The curage-lang authors

// Package ast declares the syntax tree of the curage language. Each
// node kind carries exactly the children its production requires; where
// a production failed to parse, the tree holds an explicit Error node
// instead, so the tree is always total and recovery never leaves nil
// holes in required positions.
package ast

import "github.com/vain0x/curage-lang/parser/token"

// Node is any element of the syntax tree. A node exclusively owns its
// children; its range covers its first through last contained token.
type Node interface {
	Range() token.Range
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Error marks a region that failed to parse. It stands in for whatever
// statement or expression the grammar required there; the parser emits
// a matching diagnostic separately.
type Error struct {
	Message string
	Span    token.Range
}

func (n *Error) Range() token.Range { return n.Span }
func (n *Error) stmtNode()          {}
func (n *Error) exprNode()          {}

// Lit is an integer literal.
type Lit struct {
	Tok *token.Token
}

func (n *Lit) Range() token.Range { return n.Tok.Range() }
func (n *Lit) exprNode()          {}

// Name is a single identifier occurrence.
type Name struct {
	Tok *token.Token
}

func (n *Name) Range() token.Range { return n.Tok.Range() }
func (n *Name) exprNode()          {}

// Binary is an expression with exactly one operator between two atomic
// operands. There is no precedence chain; the grammar admits one level.
type Binary struct {
	X  Expr
	Op *token.Token
	Y  Expr
}

func (n *Binary) Range() token.Range { return n.X.Range().Cover(n.Y.Range()) }
func (n *Binary) exprNode()          {}

// Call is a call expression with at most one argument. Arg and Close
// are nil when absent ("f()" has no Arg; an unclosed call has no Close).
type Call struct {
	Callee Expr
	Open   *token.Token
	Arg    Expr
	Close  *token.Token
}

func (n *Call) Range() token.Range {
	r := n.Callee.Range().Cover(n.Open.Range())
	if n.Arg != nil {
		r = r.Cover(n.Arg.Range())
	}
	if n.Close != nil {
		r = r.Cover(n.Close.Range())
	}
	return r
}
func (n *Call) exprNode() {}

// Let introduces a new binding.
type Let struct {
	Keyword *token.Token
	Name    *Name
	Assign  *token.Token
	Init    Expr
}

func (n *Let) Range() token.Range { return n.Keyword.Range().Cover(n.Init.Range()) }
func (n *Let) stmtNode()          {}

// Set assigns to an existing binding.
type Set struct {
	Keyword *token.Token
	Name    *Name
	Assign  *token.Token
	Value   Expr
}

func (n *Set) Range() token.Range { return n.Keyword.Range().Cover(n.Value.Range()) }
func (n *Set) stmtNode()          {}

// If executes its body when the condition is nonzero. End is nil when
// the closing keyword was missing at end of file.
type If struct {
	Keyword *token.Token
	Cond    Expr
	Body    []Stmt
	End     *token.Token
}

func (n *If) Range() token.Range { return blockRange(n.Keyword, n.Cond, n.Body, n.End) }
func (n *If) stmtNode()          {}

// While repeats its body while the condition is nonzero. End is nil
// when the closing keyword was missing at end of file.
type While struct {
	Keyword *token.Token
	Cond    Expr
	Body    []Stmt
	End     *token.Token
}

func (n *While) Range() token.Range { return blockRange(n.Keyword, n.Cond, n.Body, n.End) }
func (n *While) stmtNode()          {}

// Program is the root node.
type Program struct {
	Stmts []Stmt
	EOF   *token.Token
}

func (n *Program) Range() token.Range {
	r := token.Range{}
	if len(n.Stmts) > 0 {
		r = n.Stmts[0].Range()
		r = r.Cover(n.Stmts[len(n.Stmts)-1].Range())
	}
	if n.EOF != nil {
		r = r.Cover(n.EOF.Range())
	}
	return r
}

func blockRange(kw *token.Token, cond Expr, body []Stmt, end *token.Token) token.Range {
	r := kw.Range().Cover(cond.Range())
	if len(body) > 0 {
		r = r.Cover(body[len(body)-1].Range())
	}
	if end != nil {
		r = r.Cover(end.Range())
	}
	return r
}
