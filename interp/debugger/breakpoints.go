// Copyright © 2026 The curage-lang authors

package debugger

import (
	"sort"
	"sync"
)

// Breakpoint is a line breakpoint. Lines are 1-based, matching the
// Debug Adapter Protocol.
type Breakpoint struct {
	ID       int
	Line     int
	Verified bool
}

// BreakpointStore holds the breakpoints for the single debugged file.
type BreakpointStore struct {
	mu     sync.Mutex
	nextID int
	byLine map[int]*Breakpoint
}

func NewBreakpointStore() *BreakpointStore {
	return &BreakpointStore{byLine: make(map[int]*Breakpoint)}
}

// SetLines replaces all breakpoints with one per given line, as the
// DAP setBreakpoints request requires. The result preserves the input
// order.
func (s *BreakpointStore) SetLines(lines []int) []*Breakpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byLine = make(map[int]*Breakpoint, len(lines))
	out := make([]*Breakpoint, 0, len(lines))
	for _, line := range lines {
		if prev, ok := s.byLine[line]; ok {
			out = append(out, prev)
			continue
		}
		s.nextID++
		bp := &Breakpoint{ID: s.nextID, Line: line, Verified: true}
		s.byLine[line] = bp
		out = append(out, bp)
	}
	return out
}

// At returns the breakpoint on line, or nil.
func (s *BreakpointStore) At(line int) *Breakpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byLine[line]
}

// All returns the current breakpoints sorted by line.
func (s *BreakpointStore) All() []*Breakpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Breakpoint, 0, len(s.byLine))
	for _, bp := range s.byLine {
		out = append(out, bp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Line < out[j].Line })
	return out
}
