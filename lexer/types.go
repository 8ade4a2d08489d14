package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenParen                // Parenthesis literal: "(" or ")"
	TokenReal                 // Real number: [+-]?[0-9]*\.[0-9]+
	TokenInt                  // Integer: [+-]?[0-9]+
	TokenString               // Double quoted string, \" does not terminate it
	TokenIdentifier           // Anything else but whitespace, '"', '(', ')' and '.'
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "INVALID",
	TokenParen:      "LITERAL",
	TokenReal:       "REAL",
	TokenInt:        "INT",
	TokenString:     "STRING",
	TokenIdentifier: "ID",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// IsAtom returns true if tokens of this type can stand alone as an atom.
func (tt TokenType) IsAtom() bool {
	switch tt {
	case TokenIdentifier, TokenInt, TokenReal, TokenString:
		return true
	}
	return false
}
