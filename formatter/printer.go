// Copyright © 2026 The curage-lang authors

package formatter

import (
	"strings"

	"github.com/vain0x/curage-lang/parser/token"
)

// printer assembles formatted lines, tracking block depth from the
// keywords it has emitted.
type printer struct {
	cfg   *Config
	buf   strings.Builder
	depth int

	// pendingBlank is set when a blank line was seen; at most one blank
	// line survives between statements.
	pendingBlank bool
	wroteAny     bool
}

func newPrinter(cfg *Config) *printer {
	return &printer{cfg: cfg}
}

func (p *printer) writeLine(toks []*token.Token) {
	if len(toks) == 0 {
		p.pendingBlank = true
		return
	}

	if toks[0].Type == token.END && p.depth > 0 {
		p.depth--
	}

	if p.pendingBlank && p.wroteAny {
		p.buf.WriteByte('\n')
	}
	p.pendingBlank = false
	p.wroteAny = true

	p.buf.WriteString(strings.Repeat(" ", p.depth*p.cfg.IndentWidth))
	for i, tok := range toks {
		if i > 0 && needsSpace(toks[i-1], tok) {
			p.buf.WriteByte(' ')
		}
		p.buf.WriteString(tok.Text)
	}
	p.buf.WriteByte('\n')

	switch toks[0].Type {
	case token.IF, token.WHILE:
		p.depth++
	}
}

// needsSpace reports whether a space separates prev from next. Call
// parentheses hug their contents; everything else is single spaced.
func needsSpace(prev, next *token.Token) bool {
	if next.Type == token.PAREN_L {
		// No space between a callee and its argument list.
		return prev.Type != token.NAME
	}
	if prev.Type == token.PAREN_L || next.Type == token.PAREN_R {
		return false
	}
	return true
}
