package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lispish/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrMaxDepth        = errors.New("maximum nesting depth exceeded")
)

// SyntaxError reports the grammar rule that could not be derived. Tok is nil
// when the tokens ran out.
type SyntaxError struct {
	Rule string
	Tok  *lexer.Token
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Tok == nil {
		return fmt.Sprintf("syntax error: %s: %v", e.Rule, e.Err)
	}
	return fmt.Sprintf("syntax error: %s: %v %v", e.Rule, e.Err, e.Tok)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
