// Copyright © 2026 The curage-lang authors

// Package token defines the lexical tokens of the curage language and
// the position arithmetic shared by every later stage. Tokens carry
// absolute source ranges so that editor queries can hit-test against
// them directly.
package token

import "unicode/utf8"

// Type identifies the kind of a token.
type Type uint

const (
	INVALID Type = iota
	EOF
	EOL

	INT
	NAME

	// Keywords
	LET
	SET
	END
	IF
	WHILE

	OPERATOR
	PAREN_L
	PAREN_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:  "invalid",
		EOF:      "EOF",
		EOL:      "EOL",
		INT:      "int",
		NAME:     "name",
		LET:      "let",
		SET:      "set",
		END:      "end",
		IF:       "if",
		WHILE:    "while",
		OPERATOR: "operator",
		PAREN_L:  "(",
		PAREN_R:  ")",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

var keywords = map[string]Type{
	"let":   LET,
	"set":   SET,
	"end":   END,
	"if":    IF,
	"while": WHILE,
}

// KeywordType retags identifier text as a keyword type when it matches
// one of the fixed keywords.
func KeywordType(text string) (Type, bool) {
	typ, ok := keywords[text]
	return typ, ok
}

// IsKeyword reports whether typ is one of the language keywords.
func (typ Type) IsKeyword() bool {
	return typ >= LET && typ <= WHILE
}

// StartsStatement reports whether a token of this type can begin a
// statement. The parser resynchronizes on these after an error.
func (typ Type) StartsStatement() bool {
	switch typ {
	case LET, SET, IF, WHILE:
		return true
	}
	return false
}

// Token is an immutable lexical unit. ID is the token's index in the
// document's token sequence; symbol records refer to tokens by ID so
// the symbol table never aliases the syntax tree (see analysis.Symbol).
// LeadingSpaces records the run of spaces discarded before the token;
// together with Text it makes lexing lossless per line.
type Token struct {
	ID            int
	Type          Type
	Text          string
	Pos           Position
	LeadingSpaces int
}

// Width returns the token's width in code points. EOL and EOF tokens
// are synthetic and have zero width.
func (t *Token) Width() int {
	return utf8.RuneCountInString(t.Text)
}

// Range returns the token's source range. The end is exclusive; tokens
// never span lines.
func (t *Token) Range() Range {
	return Range{
		Start: t.Pos,
		End:   Position{Line: t.Pos.Line, Character: t.Pos.Character + t.Width()},
	}
}
