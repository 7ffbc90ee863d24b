// Copyright © 2026 The curage-lang authors

package token

import "fmt"

// Position is a zero-based line/character location in a document.
// Characters count Unicode code points from the start of the line.
type Position struct {
	Line      int
	Character int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Compare orders positions line-major, character-minor. It returns a
// negative value when p precedes q, zero when they are equal, and a
// positive value when p follows q.
func (p Position) Compare(q Position) int {
	if p.Line != q.Line {
		return p.Line - q.Line
	}
	return p.Character - q.Character
}

// Before reports whether p strictly precedes q.
func (p Position) Before(q Position) bool {
	return p.Compare(q) < 0
}

// Add composes p with an offset q relative to p. Offsets on the same
// line extend the character; offsets on later lines restart the
// character count, matching how a span recorded relative to a node's
// start is turned back into an absolute position.
func (p Position) Add(q Position) Position {
	if q.Line == 0 {
		return Position{Line: p.Line, Character: p.Character + q.Character}
	}
	return Position{Line: p.Line + q.Line, Character: q.Character}
}

// Sub returns q's offset relative to p, the inverse of Add.
func (p Position) Sub(q Position) Position {
	if p.Line == q.Line {
		return Position{Character: p.Character - q.Character}
	}
	return Position{Line: p.Line - q.Line, Character: p.Character}
}

// Range is a half-open region of a document: Start is included, End is
// not. A zero-width range contains no position.
type Range struct {
	Start Position
	End   Position
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Contains reports whether pos falls inside the range (Start <= pos < End).
func (r Range) Contains(pos Position) bool {
	return r.Start.Compare(pos) <= 0 && pos.Compare(r.End) < 0
}

// Cover returns the smallest range containing both r and s. Node spans
// are derived by covering the ranges of their first and last tokens.
func (r Range) Cover(s Range) Range {
	out := r
	if s.Start.Before(out.Start) {
		out.Start = s.Start
	}
	if out.End.Before(s.End) {
		out.End = s.End
	}
	return out
}
