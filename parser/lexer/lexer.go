// Copyright © 2026 The curage-lang authors

// Package lexer turns document text into the ordered token stream
// consumed by the parser. Lexing is lossless and never fails: leading
// space runs are recorded on each token, unrecognized characters become
// INVALID tokens, and judgement about what is well formed is deferred
// to the parser.
package lexer

import (
	"strings"
	"unicode"

	"github.com/vain0x/curage-lang/parser/token"
)

const operatorRunes = "+-*/%=<>!&|^~"

type lexer struct {
	toks []*token.Token
}

// Tokenize splits text into tokens. Lines are processed one at a time
// (either line-ending convention); blank lines emit no tokens but still
// advance the line counter. Every non-blank line is terminated by a
// zero-width EOL token and the document by a zero-width EOF token.
func Tokenize(text string) []*token.Token {
	lex := &lexer{}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		lex.tokenizeLine(i, []rune(line))
	}
	last := len(lines) - 1
	end := len([]rune(strings.TrimSuffix(lines[last], "\r")))
	lex.emit(token.EOF, "", token.Position{Line: last, Character: end}, 0)
	return lex.toks
}

func (lex *lexer) tokenizeLine(line int, src []rune) {
	if len(src) == 0 {
		return
	}
	i := 0
	for {
		gap := 0
		for i < len(src) && src[i] == ' ' {
			i++
			gap++
		}
		if i >= len(src) {
			lex.emit(token.EOL, "", token.Position{Line: line, Character: i}, gap)
			return
		}
		start := i
		pos := token.Position{Line: line, Character: start}
		switch c := src[i]; {
		case isDigit(c) || (isSign(c) && i+1 < len(src) && isDigit(src[i+1])):
			i++
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			lex.emit(token.INT, string(src[start:i]), pos, gap)
		case isNameStart(c):
			for i < len(src) && isName(src[i]) {
				i++
			}
			text := string(src[start:i])
			typ := token.NAME
			if kw, ok := token.KeywordType(text); ok {
				typ = kw
			}
			lex.emit(typ, text, pos, gap)
		case c == '(':
			i++
			lex.emit(token.PAREN_L, "(", pos, gap)
		case c == ')':
			i++
			lex.emit(token.PAREN_R, ")", pos, gap)
		case isOperator(c):
			for i < len(src) && isOperator(src[i]) {
				i++
			}
			lex.emit(token.OPERATOR, string(src[start:i]), pos, gap)
		default:
			i++
			lex.emit(token.INVALID, string(src[start:i]), pos, gap)
		}
	}
}

func (lex *lexer) emit(typ token.Type, text string, pos token.Position, gap int) {
	lex.toks = append(lex.toks, &token.Token{
		ID:            len(lex.toks),
		Type:          typ,
		Text:          text,
		Pos:           pos,
		LeadingSpaces: gap,
	})
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isSign(c rune) bool {
	return c == '+' || c == '-'
}

func isNameStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isName(c rune) bool {
	return isNameStart(c) || isDigit(c)
}

func isOperator(c rune) bool {
	return strings.ContainsRune(operatorRunes, c)
}
