// Copyright © 2026 The curage-lang authors

package ast

// Walk traverses the tree rooted at n in depth-first, source order,
// calling fn for every node. If fn returns false the node's children
// are skipped. Nil optional children are not visited.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Binary:
		Walk(n.X, fn)
		Walk(n.Y, fn)
	case *Call:
		Walk(n.Callee, fn)
		if n.Arg != nil {
			Walk(n.Arg, fn)
		}
	case *Let:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		Walk(n.Init, fn)
	case *Set:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		Walk(n.Value, fn)
	case *If:
		Walk(n.Cond, fn)
		for _, s := range n.Body {
			Walk(s, fn)
		}
	case *While:
		Walk(n.Cond, fn)
		for _, s := range n.Body {
			Walk(s, fn)
		}
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, fn)
		}
	}
}
