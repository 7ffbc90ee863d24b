// Copyright © 2026 The curage-lang authors

package lint

import (
	"github.com/vain0x/curage-lang/analysis"
	"github.com/vain0x/curage-lang/parser/ast"
)

// AnalyzerUnusedVariable warns about let bindings that are never read.
// A name of "_" is the conventional way to discard a value and is
// exempt.
var AnalyzerUnusedVariable = &Analyzer{
	Name:     "unused-variable",
	Doc:      "Warn when a let binding is never referenced.\n\nA binding with no references is usually leftover from a refactor. Name it _ to discard a value on purpose.",
	Severity: SeverityWarning,
	Run: func(pass *Pass) error {
		res := pass.Result
		for _, sym := range res.Symbols {
			if sym.Kind != analysis.SymVariable || sym.Def < 0 {
				continue
			}
			if sym.Name == "_" || len(sym.Refs) > 0 {
				continue
			}
			pass.Reportf(res.Tokens[sym.Def].Range(),
				"variable '%s' is declared but never used", sym.Name)
		}
		return nil
	},
}

// AnalyzerShadowedName warns when a let re-declares a name that is
// still visible. The old binding becomes unreachable from that point
// on, which is legal but frequently a typo for set.
var AnalyzerShadowedName = &Analyzer{
	Name:     "shadowed-name",
	Doc:      "Warn when a let re-declares a visible name.\n\nRe-declaring makes the earlier binding unreachable; use set to update it instead.",
	Severity: SeverityInfo,
	Run: func(pass *Pass) error {
		res := pass.Result
		seen := make(map[string]bool)
		for _, sym := range res.Symbols {
			if sym.Def < 0 {
				seen[sym.Name] = true
				continue
			}
			if seen[sym.Name] {
				pass.Reportf(res.Tokens[sym.Def].Range(),
					"declaration of '%s' shadows an earlier declaration", sym.Name)
			}
			seen[sym.Name] = true
		}
		return nil
	},
}

// AnalyzerEmptyBlock warns about if and while statements whose body
// holds no statements.
var AnalyzerEmptyBlock = &Analyzer{
	Name:     "empty-block",
	Doc:      "Warn when an if or while body is empty.\n\nAn empty while either never runs or never terminates; an empty if does nothing.",
	Severity: SeverityInfo,
	Run: func(pass *Pass) error {
		WalkStmts(pass.Result.Program, func(stmt ast.Stmt, depth int) {
			switch s := stmt.(type) {
			case *ast.If:
				if len(s.Body) == 0 {
					pass.Reportf(s.Keyword.Range(), "if body is empty")
				}
			case *ast.While:
				if len(s.Body) == 0 {
					pass.Reportf(s.Keyword.Range(), "while body is empty")
				}
			}
		})
		return nil
	},
}

// AnalyzerSelfAssignment warns about statements of the form set x = x.
var AnalyzerSelfAssignment = &Analyzer{
	Name:     "self-assignment",
	Doc:      "Warn when a set assigns a variable to itself.",
	Severity: SeverityWarning,
	Run: func(pass *Pass) error {
		WalkStmts(pass.Result.Program, func(stmt ast.Stmt, depth int) {
			s, ok := stmt.(*ast.Set)
			if !ok || s.Name == nil {
				return
			}
			if name, ok := s.Value.(*ast.Name); ok && name.Tok.Text == s.Name.Tok.Text {
				pass.Reportf(s.Range(), "self-assignment of '%s'", s.Name.Tok.Text)
			}
		})
		return nil
	},
}

// DefaultAnalyzers returns the built-in checks.
func DefaultAnalyzers() []*Analyzer {
	return []*Analyzer{
		AnalyzerUnusedVariable,
		AnalyzerShadowedName,
		AnalyzerEmptyBlock,
		AnalyzerSelfAssignment,
	}
}
