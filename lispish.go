// Package lispish reads programs written in a minimal s-expression syntax.
// Source text is tokenized first, then the whole sequence of tokens is parsed
// into a tree that follows the grammar documented in package parser.
package lispish

import (
	"bytes"
	"io"

	"github.com/xiam/lispish/ast"
	"github.com/xiam/lispish/lexer"
	"github.com/xiam/lispish/parser"
)

// Reader reads a complete program from an io.Reader.
type Reader struct {
	r    io.Reader
	opts []parser.Option

	src    []byte
	loaded bool
}

// Tokenize returns the tokens of the given source.
func Tokenize(in []byte) ([]lexer.Token, error) {
	return lexer.Tokenize(in)
}

// Parse tokenizes and parses the given source.
func Parse(in []byte, opts ...parser.Option) (*ast.Node, error) {
	r := NewReader(bytes.NewReader(in), opts...)
	return r.Parse()
}

// NewReader creates a Reader, opts are passed to the parser.
func NewReader(r io.Reader, opts ...parser.Option) *Reader {
	return &Reader{r: r, opts: opts}
}

func (r *Reader) source() ([]byte, error) {
	if r.loaded {
		return r.src, nil
	}
	src, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	r.src, r.loaded = src, true
	return r.src, nil
}

// Source returns everything that was read from the underlying reader.
func (r *Reader) Source() ([]byte, error) {
	return r.source()
}

// Tokens reads the program and returns its tokens.
func (r *Reader) Tokens() ([]lexer.Token, error) {
	src, err := r.source()
	if err != nil {
		return nil, err
	}
	return lexer.Tokenize(src)
}

// Parse reads the program and returns its parse tree.
func (r *Reader) Parse() (*ast.Node, error) {
	tokens, err := r.Tokens()
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens, r.opts...)
}
