// Copyright © 2026 The curage-lang authors

package lint

import "github.com/vain0x/curage-lang/parser/ast"

// WalkStmts visits every statement in the program, passing its block
// nesting depth; top-level statements have depth 0. Children are
// visited after their enclosing statement.
func WalkStmts(prog *ast.Program, fn func(stmt ast.Stmt, depth int)) {
	walkStmts(prog.Stmts, 0, fn)
}

func walkStmts(stmts []ast.Stmt, depth int, fn func(stmt ast.Stmt, depth int)) {
	for _, stmt := range stmts {
		fn(stmt, depth)
		switch s := stmt.(type) {
		case *ast.If:
			walkStmts(s.Body, depth+1, fn)
		case *ast.While:
			walkStmts(s.Body, depth+1, fn)
		}
	}
}
