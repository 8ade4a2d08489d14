package lexer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// space is the whitespace class every pattern accepts before a lexeme.
const space = `\t\n\v\f\r\x{85}\p{Z}`

var (
	parenPattern      = regexp.MustCompile(`^[` + space + `]*[()]`)
	realPattern       = regexp.MustCompile(`^[` + space + `]*[+-]?[0-9]*\.[0-9]+`)
	intPattern        = regexp.MustCompile(`^[` + space + `]*[+-]?[0-9]+`)
	identifierPattern = regexp.MustCompile(`^[` + space + `]*[^` + space + `"().]+`)
)

// matchFunc returns the length of the match anchored at the start of src, or
// -1 if there is none.
type matchFunc func(src string) int

type matcher struct {
	tt    TokenType
	match matchFunc
}

// matchers are tried in order, the first one that matches wins.
var matchers = []matcher{
	{TokenParen, matchPattern(parenPattern)},
	{TokenReal, matchPattern(realPattern)},
	{TokenInt, matchPattern(intPattern)},
	{TokenString, matchString},
	{TokenIdentifier, matchPattern(identifierPattern)},
}

func matchPattern(re *regexp.Regexp) matchFunc {
	return func(src string) int {
		loc := re.FindStringIndex(src)
		if loc == nil {
			return -1
		}
		return loc[1]
	}
}

// matchString matches a double quoted string. The body is read in units where
// `\"` is a single unit and any other byte is another one. The string closes
// at the last unit boundary followed by '"', so the quote in `\"` never
// closes it.
func matchString(src string) int {
	i := skipSpace(src)
	if i >= len(src) || src[i] != '"' {
		return -1
	}

	end := -1
	for j := i + 1; j < len(src); {
		if src[j] == '"' {
			end = j + 1
		}
		if src[j] == '\\' && j+1 < len(src) && src[j+1] == '"' {
			j += 2
			continue
		}
		j++
	}

	return end
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', 0x85:
		return true
	}
	return unicode.Is(unicode.Z, r)
}

// skipSpace returns the length of the leading whitespace in src.
func skipSpace(src string) int {
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if !isSpace(r) {
			break
		}
		i += size
	}
	return i
}

// Lexer represents a lexical analyzer over a complete source text.
type Lexer struct {
	src string
	pos int

	tok Token
	err error
}

// New initializes a Lexer object. Newlines are removed from src before
// scanning, without inserting a separator.
func New(src string) *Lexer {
	return &Lexer{
		src: strings.ReplaceAll(src, "\n", ""),
	}
}

// Next scans the next token and reports whether there is one. It returns
// false at the end of the input or after an error, see Err.
func (lx *Lexer) Next() bool {
	if lx.err != nil || lx.pos >= len(lx.src) {
		return false
	}

	rest := lx.src[lx.pos:]
	for _, m := range matchers {
		n := m.match(rest)
		if n < 0 {
			continue
		}
		lexeme := strings.TrimFunc(rest[:n], isSpace)
		lx.tok = Token{
			tt:     m.tt,
			lexeme: lexeme,
			offset: lx.pos + n - len(lexeme),
		}
		lx.pos += n
		return true
	}

	// trailing whitespace
	skip := skipSpace(rest)
	if skip == len(rest) {
		lx.pos = len(lx.src)
		return false
	}

	lx.err = newLexError(lx.src, lx.pos+skip)
	return false
}

// Token returns the last token scanned by Next.
func (lx *Lexer) Token() Token {
	return lx.tok
}

// Err returns the error that stopped the lexer, if any.
func (lx *Lexer) Err() error {
	return lx.err
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	return TokenizeString(string(in))
}

// TokenizeString is like Tokenize but takes a string.
func TokenizeString(src string) ([]Token, error) {
	lx := New(src)

	tokens := []Token{}
	for lx.Next() {
		tokens = append(tokens, lx.Token())
	}

	if err := lx.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}
