// Copyright © 2026 The curage-lang authors

package interp

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vain0x/curage-lang/parser/ast"
	"github.com/vain0x/curage-lang/parser/lexer"
	"github.com/vain0x/curage-lang/parser/rdparser"
)

func runSource(t *testing.T, source, stdin string) (string, error) {
	t.Helper()
	prog, diags := rdparser.Parse(lexer.Tokenize(source))
	for _, d := range diags {
		t.Logf("diagnostic: %s", d.Message)
	}
	var out bytes.Buffer
	in := New(WithStdout(&out), WithStdin(strings.NewReader(stdin)))
	err := in.Run(prog)
	return out.String(), err
}

func TestRunArithmetic(t *testing.T) {
	out, err := runSource(t, `
let a = 7
let b = a * 6
let c = b - 2
let _ = print(c)
let d = b / 5
let _ = print(d)
let e = b % 5
let _ = print(e)
`, "")
	require.NoError(t, err)
	assert.Equal(t, "40\n8\n2\n", out)
}

func TestRunComparisons(t *testing.T) {
	out, err := runSource(t, `
let x = 3
let lt = x < 5
let _ = print(lt)
let ge = x >= 5
let _ = print(ge)
let eq = x == 3
let _ = print(eq)
let ne = x != 3
let _ = print(ne)
`, "")
	require.NoError(t, err)
	assert.Equal(t, "1\n0\n1\n0\n", out)
}

func TestRunWhileLoop(t *testing.T) {
	out, err := runSource(t, `
let n = 3
while n
  let _ = print(n)
  set n = n - 1
end
`, "")
	require.NoError(t, err)
	assert.Equal(t, "3\n2\n1\n", out)
}

func TestRunIf(t *testing.T) {
	out, err := runSource(t, `
let x = 1
if x
  let _ = print(10)
end
if x - 1
  let _ = print(20)
end
`, "")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func TestRunRead(t *testing.T) {
	out, err := runSource(t, `
let a = read()
let b = read()
let s = a + b
let _ = print(s)
`, "19 23")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestRunShadowing(t *testing.T) {
	// A second let overwrites the visible binding at runtime.
	out, err := runSource(t, `
let x = 1
let x = x + 1
let _ = print(x)
`, "")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestDivisionByZero(t *testing.T) {
	for _, source := range []string{
		"let z = 0\nlet x = 1 / z",
		"let z = 0\nlet x = 1 % z",
	} {
		_, err := runSource(t, source, "")
		var rerr *Error
		require.ErrorAs(t, err, &rerr, "source: %s", source)
		assert.Equal(t, "Division by zero.", rerr.Message)
		assert.Equal(t, 1, rerr.Span.Start.Line)
	}
}

func TestUndefinedAtRuntime(t *testing.T) {
	_, err := runSource(t, "set x = 1", "")
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "'x' is not defined.", rerr.Message)
}

func TestErrorStatementRefusesToRun(t *testing.T) {
	_, err := runSource(t, "let x = 1\nlet = =", "")
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Message, "failed to parse")
}

func TestReadBadInput(t *testing.T) {
	_, err := runSource(t, "let a = read()", "bogus")
	require.Error(t, err)
}

func TestGlobalsSnapshot(t *testing.T) {
	prog, _ := rdparser.Parse(lexer.Tokenize("let b = 2\nlet a = 1"))
	in := New(WithStdout(&bytes.Buffer{}))
	require.NoError(t, in.Run(prog))

	globals := in.Globals()
	require.Len(t, globals, 2)
	// Sorted by name.
	assert.Equal(t, Binding{Name: "a", Value: 1}, globals[0])
	assert.Equal(t, Binding{Name: "b", Value: 2}, globals[1])
}

func TestEval(t *testing.T) {
	prog, _ := rdparser.Parse(lexer.Tokenize("let x = 21"))
	in := New()
	require.NoError(t, in.Run(prog))

	expr, err := rdparser.ParseExpr(lexer.Tokenize("x * 2"))
	require.NoError(t, err)
	v, err := in.Eval(expr)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

type countingHook struct {
	entered int
	ended   int
}

func (h *countingHook) EnterStmt(in *Interp, stmt ast.Stmt) func() {
	h.entered++
	return func() { h.ended++ }
}

func TestHookSeesEveryStatement(t *testing.T) {
	prog, _ := rdparser.Parse(lexer.Tokenize(`
let n = 2
while n
  set n = n - 1
end
`))
	hook := &countingHook{}
	in := New(WithHook(hook))
	require.NoError(t, in.Run(prog))

	// let, while, and the set on each of two iterations.
	assert.Equal(t, 4, hook.entered)
	assert.Equal(t, hook.entered, hook.ended)
}

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, []string{"print", "read"}, BuiltinNames())
}

func TestRuntimeErrorMessage(t *testing.T) {
	err := &Error{Message: "Division by zero."}
	var target *Error
	assert.True(t, errors.As(err, &target))
	assert.Contains(t, err.Error(), "Division by zero.")
}
