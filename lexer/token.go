package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	offset int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, offset int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		offset: offset,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the byte offset of the lexical unit within the newline-stripped
// source.
func (t Token) Pos() int {
	return t.offset
}

// Text returns the trimmed text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d])", t.tt, t.lexeme, t.offset)
}
