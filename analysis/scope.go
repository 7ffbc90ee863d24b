// Copyright © 2026 The curage-lang authors

package analysis

// Scope is an explicit stack of binding frames. The binder pushes a
// frame when it enters a block (when block scoping is enabled) and pops
// it on exit; lookups walk frames innermost-first. Defining a name that
// already exists in the innermost frame replaces the visible binding,
// which is how shadowing freezes the prior symbol.
type Scope struct {
	frames []map[string]*Symbol
}

// NewScope returns a scope with a single global frame.
func NewScope() *Scope {
	return &Scope{frames: []map[string]*Symbol{{}}}
}

// Push adds an empty innermost frame.
func (s *Scope) Push() {
	s.frames = append(s.frames, map[string]*Symbol{})
}

// Pop discards the innermost frame. The global frame is never popped.
func (s *Scope) Pop() {
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Define binds sym.Name to sym in the innermost frame.
func (s *Scope) Define(sym *Symbol) {
	s.frames[len(s.frames)-1][sym.Name] = sym
}

// Lookup resolves name against the visible frames, innermost first.
// Returns nil if the name is not bound.
func (s *Scope) Lookup(name string) *Symbol {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if sym, ok := s.frames[i][name]; ok {
			return sym
		}
	}
	return nil
}

// Depth returns the number of frames currently on the stack.
func (s *Scope) Depth() int {
	return len(s.frames)
}
