// Copyright © 2026 The curage-lang authors

package rdparser

import (
	"testing"

	"github.com/vain0x/curage-lang/parser/ast"
	"github.com/vain0x/curage-lang/parser/lexer"
	"github.com/vain0x/curage-lang/parser/token"
)

func parseSource(t *testing.T, source string) (*ast.Program, []string) {
	t.Helper()
	prog, diags := Parse(lexer.Tokenize(source))
	if prog == nil {
		t.Fatalf("Parse(%q) returned nil program", source)
	}
	msgs := make([]string, len(diags))
	for i, d := range diags {
		msgs[i] = d.Message
	}
	return prog, msgs
}

func TestParseStatements(t *testing.T) {
	prog, msgs := parseSource(t, "let x = 1\nset x = x + 1")
	if len(msgs) != 0 {
		t.Fatalf("unexpected diagnostics: %v", msgs)
	}
	if len(prog.Stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Stmts))
	}
	let, ok := prog.Stmts[0].(*ast.Let)
	if !ok {
		t.Fatalf("first statement is %T, want *ast.Let", prog.Stmts[0])
	}
	if let.Name.Tok.Text != "x" {
		t.Errorf("let name = %q", let.Name.Tok.Text)
	}
	if _, ok := let.Init.(*ast.Lit); !ok {
		t.Errorf("let init is %T, want *ast.Lit", let.Init)
	}
	set, ok := prog.Stmts[1].(*ast.Set)
	if !ok {
		t.Fatalf("second statement is %T, want *ast.Set", prog.Stmts[1])
	}
	bin, ok := set.Value.(*ast.Binary)
	if !ok {
		t.Fatalf("set value is %T, want *ast.Binary", set.Value)
	}
	if bin.Op.Text != "+" {
		t.Errorf("operator = %q", bin.Op.Text)
	}
}

func TestParseBlocks(t *testing.T) {
	prog, msgs := parseSource(t, "while n\n  if n\n    set n = n - 1\n  end\nend")
	if len(msgs) != 0 {
		t.Fatalf("unexpected diagnostics: %v", msgs)
	}
	wh, ok := prog.Stmts[0].(*ast.While)
	if !ok {
		t.Fatalf("statement is %T, want *ast.While", prog.Stmts[0])
	}
	if wh.End == nil {
		t.Fatalf("while lost its 'end' token")
	}
	ifStmt, ok := wh.Body[0].(*ast.If)
	if !ok {
		t.Fatalf("body statement is %T, want *ast.If", wh.Body[0])
	}
	if len(ifStmt.Body) != 1 || ifStmt.End == nil {
		t.Errorf("if body = %d statements, end = %v", len(ifStmt.Body), ifStmt.End)
	}
}

func TestParseCall(t *testing.T) {
	prog, msgs := parseSource(t, "let r = read()\nlet p = print(r)")
	if len(msgs) != 0 {
		t.Fatalf("unexpected diagnostics: %v", msgs)
	}
	read := prog.Stmts[0].(*ast.Let).Init.(*ast.Call)
	if read.Arg != nil {
		t.Errorf("read() should have no argument")
	}
	print := prog.Stmts[1].(*ast.Let).Init.(*ast.Call)
	if print.Arg == nil {
		t.Errorf("print(r) lost its argument")
	}
}

func TestRecoveryOneDiagnosticPerLine(t *testing.T) {
	// Every line is broken in more than one way; each still produces
	// exactly one diagnostic.
	sources := []string{
		"let = = =",
		"set 1 2 3",
		"let x 1 )",
		"@ @ @ @",
	}
	for _, source := range sources {
		prog, msgs := parseSource(t, source)
		if len(msgs) != 1 {
			t.Errorf("Parse(%q) produced %d diagnostics %v, want 1", source, len(msgs), msgs)
		}
		if len(prog.Stmts) != 1 {
			t.Errorf("Parse(%q) produced %d statements, want 1 error node", source, len(prog.Stmts))
			continue
		}
		if _, ok := prog.Stmts[0].(*ast.Error); !ok {
			t.Errorf("Parse(%q) statement is %T, want *ast.Error", source, prog.Stmts[0])
		}
	}
}

func TestRecoveryLaterLinesSurvive(t *testing.T) {
	prog, msgs := parseSource(t, "let = 1\nlet y = 2")
	if len(msgs) != 1 || msgs[0] != "Expected a name." {
		t.Fatalf("diagnostics = %v", msgs)
	}
	if len(prog.Stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Stmts))
	}
	if _, ok := prog.Stmts[0].(*ast.Error); !ok {
		t.Errorf("first statement is %T, want *ast.Error", prog.Stmts[0])
	}
	let, ok := prog.Stmts[1].(*ast.Let)
	if !ok {
		t.Fatalf("second statement is %T, want *ast.Let", prog.Stmts[1])
	}
	if let.Name.Tok.Pos.Line != 1 {
		t.Errorf("second let kept wrong position %v", let.Name.Tok.Pos)
	}
}

func TestRecoveryMessages(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"let", "Expected a name."},
		{"let x", "Expected '='."},
		{"let x =", "Expected an expression."},
		{"let x = 1 2", "Expected end of line."},
		{"set", "Expected a name."},
		{"1 + 2", "Expected a statement."},
		{"end", "Unexpected 'end'."},
		{"let x = print(1", "Expected ')'."},
		{"if x", "Expected 'end'."},
		{"while x\n  set x = 0", "Expected 'end'."},
	}
	for _, test := range tests {
		_, msgs := parseSource(t, test.source)
		if len(msgs) != 1 || msgs[0] != test.want {
			t.Errorf("Parse(%q) diagnostics = %v, want [%q]", test.source, msgs, test.want)
		}
	}
}

func TestUnclosedBlocksReportOnce(t *testing.T) {
	// Two unclosed blocks end at the same EOF; the report is deduped to
	// one diagnostic on that line.
	_, msgs := parseSource(t, "if x\nif y")
	if len(msgs) != 1 || msgs[0] != "Expected 'end'." {
		t.Errorf("diagnostics = %v, want one Expected 'end'.", msgs)
	}
}

func TestErrorNodeSpansLine(t *testing.T) {
	prog, _ := parseSource(t, "let x ? ? ?\nset x = 1")
	errNode, ok := prog.Stmts[0].(*ast.Error)
	if !ok {
		t.Fatalf("first statement is %T, want *ast.Error", prog.Stmts[0])
	}
	span := errNode.Span
	if span.Start.Line != 0 || span.Start.Character != 0 {
		t.Errorf("error span starts at %v, want line start", span.Start)
	}
	if span.End.Line != 0 || span.End.Character != 11 {
		t.Errorf("error span ends at %v, want end of line 0", span.End)
	}
}

func TestParseTerminates(t *testing.T) {
	// Junk-heavy inputs must not hang the parser.
	sources := []string{
		"((((((((((",
		")))) let ((((",
		"end end end end",
		"let let let let\nset set set",
		"@#$ @#$ @#$\n\n\nwhile\nend\nend",
	}
	for _, source := range sources {
		prog, _ := parseSource(t, source)
		if prog.EOF == nil || prog.EOF.Type != token.EOF {
			t.Errorf("Parse(%q) lost the EOF token", source)
		}
	}
}

func TestParseExpr(t *testing.T) {
	expr, err := ParseExpr(lexer.Tokenize("n % 15"))
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	if _, ok := expr.(*ast.Binary); !ok {
		t.Errorf("expr is %T, want *ast.Binary", expr)
	}
	if _, err := ParseExpr(lexer.Tokenize("let x = 1")); err == nil {
		t.Errorf("ParseExpr accepted a statement")
	}
	if _, err := ParseExpr(lexer.Tokenize("1 2")); err == nil {
		t.Errorf("ParseExpr accepted trailing junk")
	}
}
