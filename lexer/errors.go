package lexer

import (
	"errors"
	"fmt"
)

// ErrNoMatch is wrapped by every LexError.
var ErrNoMatch = errors.New("no token matches input")

const excerptLen = 16

// LexError reports the position where none of the token patterns matched.
type LexError struct {
	Offset int
	Near   string
}

func newLexError(src string, offset int) *LexError {
	near := src[offset:]
	if len(near) > excerptLen {
		near = near[:excerptLen]
	}
	return &LexError{Offset: offset, Near: near}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer: %v at offset %d near %q", ErrNoMatch, e.Offset, e.Near)
}

func (e *LexError) Unwrap() error {
	return ErrNoMatch
}
