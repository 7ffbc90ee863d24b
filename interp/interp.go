// Copyright © 2026 The curage-lang authors

// Package interp is a small tree-walking evaluator for curage programs,
// used by the run command, the REPL, and the debug adapter. Values are
// 64-bit integers; conditions treat nonzero as true. Runtime errors
// carry the source range of the construct that failed.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/vain0x/curage-lang/parser/ast"
	"github.com/vain0x/curage-lang/parser/token"
)

// Error is a runtime error anchored to a source range.
type Error struct {
	Message string
	Span    token.Range
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Span.Start, e.Message)
}

// Hook observes statement execution. EnterStmt runs before a statement
// and returns a function invoked after it completes; the profiler
// annotators open spans here and the debugger blocks here when paused.
type Hook interface {
	EnterStmt(in *Interp, stmt ast.Stmt) func()
}

// Binding is one visible variable and its current value.
type Binding struct {
	Name  string
	Value int64
}

type builtin func(in *Interp, arg []int64, span token.Range) (int64, error)

// Interp executes statements against a persistent environment, so a
// REPL can feed it one statement at a time.
type Interp struct {
	out  io.Writer
	in   *bufio.Scanner
	hook Hook

	vars     map[string]int64
	builtins map[string]builtin
}

// Option configures an Interp.
type Option func(*Interp)

// WithStdout overrides the writer print sends output to.
func WithStdout(w io.Writer) Option {
	return func(in *Interp) { in.out = w }
}

// WithStdin overrides the reader read pulls words from.
func WithStdin(r io.Reader) Option {
	return func(in *Interp) {
		in.in = bufio.NewScanner(r)
		in.in.Split(bufio.ScanWords)
	}
}

// WithHook installs a statement hook.
func WithHook(h Hook) Option {
	return func(in *Interp) { in.hook = h }
}

// New returns an interpreter with an empty environment.
func New(opts ...Option) *Interp {
	in := &Interp{
		out:  os.Stdout,
		vars: make(map[string]int64),
	}
	WithStdin(os.Stdin)(in)
	in.builtins = map[string]builtin{
		"print": (*Interp).printBuiltin,
		"read":  (*Interp).readBuiltin,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// BuiltinNames lists the names the interpreter predefines. The binder
// takes these as Config.Globals so programs calling print or read
// analyze cleanly.
func BuiltinNames() []string {
	return []string{"print", "read"}
}

// Globals returns a name-sorted snapshot of the current environment,
// for debugger variable views.
func (in *Interp) Globals() []Binding {
	names := make([]string, 0, len(in.vars))
	for name := range in.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Binding, len(names))
	for i, name := range names {
		out[i] = Binding{Name: name, Value: in.vars[name]}
	}
	return out
}

// Run executes every statement of prog. The first runtime error stops
// execution and is returned as *Error.
func (in *Interp) Run(prog *ast.Program) error {
	for _, stmt := range prog.Stmts {
		if err := in.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interp) execStmt(stmt ast.Stmt) error {
	if in.hook != nil {
		done := in.hook.EnterStmt(in, stmt)
		defer done()
	}
	switch s := stmt.(type) {
	case *ast.Let:
		v, err := in.eval(s.Init)
		if err != nil {
			return err
		}
		in.vars[s.Name.Tok.Text] = v
	case *ast.Set:
		v, err := in.eval(s.Value)
		if err != nil {
			return err
		}
		name := s.Name.Tok.Text
		if _, ok := in.vars[name]; !ok {
			return &Error{Message: fmt.Sprintf("'%s' is not defined.", name), Span: s.Name.Range()}
		}
		in.vars[name] = v
	case *ast.If:
		v, err := in.eval(s.Cond)
		if err != nil {
			return err
		}
		if v != 0 {
			return in.execBody(s.Body)
		}
	case *ast.While:
		for {
			v, err := in.eval(s.Cond)
			if err != nil {
				return err
			}
			if v == 0 {
				return nil
			}
			if err := in.execBody(s.Body); err != nil {
				return err
			}
		}
	case *ast.Error:
		return &Error{Message: "Cannot run code that failed to parse.", Span: s.Span}
	}
	return nil
}

func (in *Interp) execBody(body []ast.Stmt) error {
	for _, stmt := range body {
		if err := in.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Eval evaluates a single expression against the current environment.
// The debug adapter uses this for evaluate requests.
func (in *Interp) Eval(e ast.Expr) (int64, error) {
	return in.eval(e)
}

func (in *Interp) eval(e ast.Expr) (int64, error) {
	switch e := e.(type) {
	case *ast.Lit:
		v, err := strconv.ParseInt(e.Tok.Text, 10, 64)
		if err != nil {
			return 0, &Error{Message: "Integer literal out of range.", Span: e.Range()}
		}
		return v, nil
	case *ast.Name:
		v, ok := in.vars[e.Tok.Text]
		if !ok {
			if _, isBuiltin := in.builtins[e.Tok.Text]; isBuiltin {
				return 0, &Error{Message: fmt.Sprintf("'%s' must be called.", e.Tok.Text), Span: e.Range()}
			}
			return 0, &Error{Message: fmt.Sprintf("'%s' is not defined.", e.Tok.Text), Span: e.Range()}
		}
		return v, nil
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Call:
		return in.evalCall(e)
	case *ast.Error:
		return 0, &Error{Message: "Cannot run code that failed to parse.", Span: e.Range()}
	default:
		return 0, &Error{Message: "Cannot evaluate this expression.", Span: e.Range()}
	}
}

func (in *Interp) evalBinary(e *ast.Binary) (int64, error) {
	x, err := in.eval(e.X)
	if err != nil {
		return 0, err
	}
	y, err := in.eval(e.Y)
	if err != nil {
		return 0, err
	}
	switch e.Op.Text {
	case "+":
		return x + y, nil
	case "-":
		return x - y, nil
	case "*":
		return x * y, nil
	case "/":
		if y == 0 {
			return 0, &Error{Message: "Division by zero.", Span: e.Op.Range()}
		}
		return x / y, nil
	case "%":
		if y == 0 {
			return 0, &Error{Message: "Division by zero.", Span: e.Op.Range()}
		}
		return x % y, nil
	case "==":
		return boolInt(x == y), nil
	case "!=":
		return boolInt(x != y), nil
	case "<":
		return boolInt(x < y), nil
	case "<=":
		return boolInt(x <= y), nil
	case ">":
		return boolInt(x > y), nil
	case ">=":
		return boolInt(x >= y), nil
	default:
		return 0, &Error{Message: fmt.Sprintf("Unknown operator '%s'.", e.Op.Text), Span: e.Op.Range()}
	}
}

func (in *Interp) evalCall(e *ast.Call) (int64, error) {
	name, ok := e.Callee.(*ast.Name)
	if !ok {
		return 0, &Error{Message: "Only names can be called.", Span: e.Callee.Range()}
	}
	fn, ok := in.builtins[name.Tok.Text]
	if !ok {
		return 0, &Error{Message: fmt.Sprintf("'%s' is not callable.", name.Tok.Text), Span: name.Range()}
	}
	var args []int64
	if e.Arg != nil {
		v, err := in.eval(e.Arg)
		if err != nil {
			return 0, err
		}
		args = append(args, v)
	}
	return fn(in, args, e.Range())
}

func (in *Interp) printBuiltin(args []int64, span token.Range) (int64, error) {
	if len(args) != 1 {
		return 0, &Error{Message: "print takes exactly one argument.", Span: span}
	}
	fmt.Fprintln(in.out, args[0])
	return args[0], nil
}

func (in *Interp) readBuiltin(args []int64, span token.Range) (int64, error) {
	if len(args) != 0 {
		return 0, &Error{Message: "read takes no arguments.", Span: span}
	}
	if !in.in.Scan() {
		return 0, &Error{Message: "Expected an integer on input.", Span: span}
	}
	v, err := strconv.ParseInt(in.in.Text(), 10, 64)
	if err != nil {
		return 0, &Error{Message: "Expected an integer on input.", Span: span}
	}
	return v, nil
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
