// Copyright © 2026 The curage-lang authors

// Package formatter provides source code formatting for curage files.
// It works on the lossless token stream rather than the syntax tree,
// so malformed lines are re-spaced without being reinterpreted and
// formatting never loses text.
package formatter

import (
	"strings"

	"github.com/vain0x/curage-lang/parser/lexer"
	"github.com/vain0x/curage-lang/parser/token"
)

// Config controls formatting output.
type Config struct {
	// IndentWidth is the number of spaces per block nesting level.
	IndentWidth int
}

// DefaultConfig returns the standard formatting configuration.
func DefaultConfig() *Config {
	return &Config{IndentWidth: 2}
}

// Format formats curage source code. If cfg is nil, DefaultConfig() is
// used. The result ends with exactly one trailing newline when it has
// any content.
func Format(source []byte, cfg *Config) []byte {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	lines := splitLines(lexer.Tokenize(string(source)))

	pr := newPrinter(cfg)
	for _, line := range lines {
		pr.writeLine(line)
	}

	result := pr.buf.String()
	if len(strings.TrimSpace(result)) == 0 {
		return nil
	}
	return []byte(strings.TrimRight(result, "\n") + "\n")
}

// splitLines groups tokens by source line, keeping empty entries for
// blank lines. EOL and EOF tokens are dropped; the printer re-derives
// line breaks.
func splitLines(toks []*token.Token) [][]*token.Token {
	var lines [][]*token.Token
	for _, tok := range toks {
		if tok.Type == token.EOL || tok.Type == token.EOF {
			continue
		}
		for len(lines) <= tok.Pos.Line {
			lines = append(lines, nil)
		}
		lines[tok.Pos.Line] = append(lines[tok.Pos.Line], tok)
	}
	return lines
}
