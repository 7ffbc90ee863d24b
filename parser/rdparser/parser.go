// Copyright © 2026 The curage-lang authors

// Package rdparser implements a predictive recursive descent parser for
// the curage language. The parser always terminates and always produces
// a tree: on a missing required token it synthesizes an ast.Error node
// spanning the rest of the physical line, emits at most one diagnostic
// per line, and resynchronizes at the next statement keyword, end of
// line, or end of file.
package rdparser

import (
	"errors"

	"github.com/vain0x/curage-lang/diagnostic"
	"github.com/vain0x/curage-lang/parser/ast"
	"github.com/vain0x/curage-lang/parser/token"
)

// Parser consumes a token sequence produced by the lexer.
type Parser struct {
	toks     []*token.Token
	cur      int
	diags    []diagnostic.Diagnostic
	errLines map[int]bool
}

// New initializes a Parser over toks. The sequence must be terminated
// by an EOF token, which the lexer guarantees.
func New(toks []*token.Token) *Parser {
	return &Parser{
		toks:     toks,
		errLines: make(map[int]bool),
	}
}

// Parse is a convenience wrapper running a full parse over toks.
func Parse(toks []*token.Token) (*ast.Program, []diagnostic.Diagnostic) {
	p := New(toks)
	prog := p.ParseProgram()
	return prog, p.Diagnostics()
}

// ParseExpr parses toks as a single expression, as typed into a REPL
// or a debugger evaluate prompt. The whole input must be consumed.
func ParseExpr(toks []*token.Token) (ast.Expr, error) {
	p := New(toks)
	expr, msg := p.parseExpr()
	if msg != "" {
		return nil, errors.New(msg)
	}
	if tok := p.peek(); tok.Type != token.EOL && tok.Type != token.EOF {
		return nil, errors.New("Expected end of line.")
	}
	return expr, nil
}

// Diagnostics returns the syntax diagnostics collected so far, in
// source order.
func (p *Parser) Diagnostics() []diagnostic.Diagnostic {
	return p.diags
}

// ParseProgram parses statements until end of file.
func (p *Parser) ParseProgram() *ast.Program {
	var stmts []ast.Stmt
	for {
		p.skipEOL()
		if p.at(token.EOF) {
			break
		}
		if p.at(token.END) {
			endTok := p.next()
			p.report("Unexpected 'end'.", endTok.Range())
			stmts = append(stmts, p.discardLine(endTok.Pos, "Unexpected 'end'."))
			continue
		}
		stmts = append(stmts, p.parseStmt())
	}
	return &ast.Program{Stmts: stmts, EOF: p.peek()}
}

// parseBlock parses statements until an 'end' keyword or end of file,
// leaving the terminator unconsumed.
func (p *Parser) parseBlock() []ast.Stmt {
	var stmts []ast.Stmt
	for {
		p.skipEOL()
		if p.at(token.EOF) || p.at(token.END) {
			return stmts
		}
		stmts = append(stmts, p.parseStmt())
	}
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.peek().Type {
	case token.LET:
		return p.parseLet()
	case token.SET:
		return p.parseSet()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	default:
		return p.syntaxError(p.peek().Pos, "Expected a statement.")
	}
}

func (p *Parser) parseLet() ast.Stmt {
	kw := p.next()
	name := p.acceptName()
	if name == nil {
		return p.syntaxError(kw.Pos, "Expected a name.")
	}
	assign := p.acceptOperator("=")
	if assign == nil {
		return p.syntaxError(kw.Pos, "Expected '='.")
	}
	init, msg := p.parseExpr()
	if init == nil {
		return p.syntaxError(kw.Pos, msg)
	}
	p.expectEOL()
	return &ast.Let{Keyword: kw, Name: name, Assign: assign, Init: init}
}

func (p *Parser) parseSet() ast.Stmt {
	kw := p.next()
	name := p.acceptName()
	if name == nil {
		return p.syntaxError(kw.Pos, "Expected a name.")
	}
	assign := p.acceptOperator("=")
	if assign == nil {
		return p.syntaxError(kw.Pos, "Expected '='.")
	}
	value, msg := p.parseExpr()
	if value == nil {
		return p.syntaxError(kw.Pos, msg)
	}
	p.expectEOL()
	return &ast.Set{Keyword: kw, Name: name, Assign: assign, Value: value}
}

func (p *Parser) parseIf() ast.Stmt {
	kw := p.next()
	cond, body, end := p.parseBlockHeader(kw)
	return &ast.If{Keyword: kw, Cond: cond, Body: body, End: end}
}

func (p *Parser) parseWhile() ast.Stmt {
	kw := p.next()
	cond, body, end := p.parseBlockHeader(kw)
	return &ast.While{Keyword: kw, Cond: cond, Body: body, End: end}
}

// parseBlockHeader parses the condition, body, and closing 'end' shared
// by if and while statements. A condition that fails to parse becomes
// an ast.Error; the body is still parsed so later lines keep their
// positions and diagnostics.
func (p *Parser) parseBlockHeader(kw *token.Token) (ast.Expr, []ast.Stmt, *token.Token) {
	cond, msg := p.parseExpr()
	if cond == nil {
		cond = p.syntaxError(kw.Pos, msg)
	} else {
		p.expectEOL()
	}
	body := p.parseBlock()
	end := p.accept(token.END)
	if end == nil {
		// Reached end of file before the matching 'end'.
		p.report("Expected 'end'.", p.peek().Range())
	}
	return cond, body, end
}

// parseExpr parses one expression: an atomic, an atomic followed by an
// operator and a second atomic, or an atomic followed by a call
// argument list with at most one argument. On failure it returns a nil
// expression and the diagnostic message for the caller's recovery.
func (p *Parser) parseExpr() (ast.Expr, string) {
	x := p.parseAtomic()
	if x == nil {
		return nil, "Expected an expression."
	}
	switch p.peek().Type {
	case token.OPERATOR:
		op := p.next()
		y := p.parseAtomic()
		if y == nil {
			return nil, "Expected an expression."
		}
		return &ast.Binary{X: x, Op: op, Y: y}, ""
	case token.PAREN_L:
		open := p.next()
		arg := p.parseAtomic()
		close := p.accept(token.PAREN_R)
		if close == nil {
			return nil, "Expected ')'."
		}
		return &ast.Call{Callee: x, Open: open, Arg: arg, Close: close}, ""
	default:
		return x, ""
	}
}

func (p *Parser) parseAtomic() ast.Expr {
	switch p.peek().Type {
	case token.INT:
		return &ast.Lit{Tok: p.next()}
	case token.NAME:
		return &ast.Name{Tok: p.next()}
	default:
		return nil
	}
}

// expectEOL requires the statement to end at the physical line. Junk
// after a complete statement is reported once and discarded up to the
// next synchronization point.
func (p *Parser) expectEOL() {
	if p.at(token.EOL) {
		p.cur++
		return
	}
	if p.at(token.EOF) {
		return
	}
	p.report("Expected end of line.", p.peek().Range())
	p.skipToSync()
}

// syntaxError reports msg at the current token, then discards the rest
// of the physical line and yields an error node covering it.
func (p *Parser) syntaxError(from token.Position, msg string) *ast.Error {
	p.report(msg, p.peek().Range())
	return p.discardLine(from, msg)
}

// discardLine skips tokens until the next statement keyword, end of
// line, or end of file, consuming a terminating EOL. The returned
// error node spans from the failed construct's start to the point
// where parsing resynchronized.
func (p *Parser) discardLine(from token.Position, msg string) *ast.Error {
	end := p.skipToSync()
	if end.Before(from) {
		end = from
	}
	return &ast.Error{Message: msg, Span: token.Range{Start: from, End: end}}
}

// skipToSync advances to the next synchronization point and returns
// the position reached. The cursor strictly advances past every
// non-sync token, which is what guarantees parser termination.
func (p *Parser) skipToSync() token.Position {
	for {
		t := p.peek()
		switch {
		case t.Type == token.EOF:
			return t.Pos
		case t.Type == token.EOL:
			p.cur++
			return t.Pos
		case t.Type.StartsStatement() || t.Type == token.END:
			return t.Pos
		default:
			p.cur++
		}
	}
}

// report records a diagnostic unless the line already has one.
func (p *Parser) report(msg string, rng token.Range) {
	line := rng.Start.Line
	if p.errLines[line] {
		return
	}
	p.errLines[line] = true
	p.diags = append(p.diags, diagnostic.Warnf(rng, "%s", msg))
}

func (p *Parser) skipEOL() {
	for p.at(token.EOL) {
		p.cur++
	}
}

func (p *Parser) peek() *token.Token {
	if p.cur >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.cur]
}

func (p *Parser) next() *token.Token {
	t := p.peek()
	if p.cur < len(p.toks)-1 {
		p.cur++
	}
	return t
}

func (p *Parser) at(typ token.Type) bool {
	return p.peek().Type == typ
}

func (p *Parser) accept(typ token.Type) *token.Token {
	if p.at(typ) {
		return p.next()
	}
	return nil
}

func (p *Parser) acceptName() *ast.Name {
	if tok := p.accept(token.NAME); tok != nil {
		return &ast.Name{Tok: tok}
	}
	return nil
}

func (p *Parser) acceptOperator(text string) *token.Token {
	if p.at(token.OPERATOR) && p.peek().Text == text {
		return p.next()
	}
	return nil
}
