package parser

import (
	"github.com/xiam/lispish/ast"
	"github.com/xiam/lispish/lexer"
)

const (
	openParen  = "("
	closeParen = ")"
)

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth limits how deep lists can be nested. Zero or a negative value
// means no limit.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// Parser is a predictive parser for the grammar:
//
//	Program → SExpr*
//	SExpr   → List | Atom
//	List    → "(" ")" | "(" Seq ")"
//	Seq     → SExpr | SExpr Seq
//	Atom    → ID | INT | REAL | STRING
//
// Every decision is made by looking at the current token only. A Parser
// consumes its tokens once and is not meant to be reused.
type Parser struct {
	tokens []lexer.Token
	pos    int

	maxDepth int
}

// listFrame is a list that was opened and is waiting for its closing
// parenthesis.
type listFrame struct {
	lparen *ast.Node
	items  []*ast.Node
}

// New creates a parser over a complete sequence of tokens.
func New(tokens []lexer.Token, opts ...Option) *Parser {
	p := &Parser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse derives a Program out of all the tokens. No tree is returned on
// error.
func (p *Parser) Parse() (*ast.Node, error) {
	exprs := []*ast.Node{}
	for p.curr() != nil {
		expr, err := p.sexpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return ast.NewProgram(exprs...)
}

func (p *Parser) curr() *lexer.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *Parser) next() *lexer.Token {
	tok := p.curr()
	if tok != nil {
		p.pos++
	}
	return tok
}

// consume turns the current token into a leaf and moves past it.
func (p *Parser) consume() (*ast.Node, error) {
	tok := p.next()
	if tok == nil {
		return nil, syntaxError(ast.NodeTypeAtom, nil, ErrUnexpectedEOF)
	}
	return ast.NewLeaf(*tok)
}

// sexpr derives a single SExpr. Lists waiting for more elements are kept in
// an explicit stack instead of the call stack, and each list's elements are
// folded into a right-leaning Seq once its closing parenthesis is found.
func (p *Parser) sexpr() (*ast.Node, error) {
	stack := []*listFrame{}

	for {
		expr, frame, err := p.derive(len(stack))
		if err != nil {
			return nil, err
		}
		if frame != nil {
			stack = append(stack, frame)
			continue
		}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			top.items = append(top.items, expr)

			tok := p.curr()
			if tok == nil {
				return nil, syntaxError(ast.NodeTypeSeq, nil, ErrUnexpectedEOF)
			}
			if tok.Text() != closeParen {
				// another element of the same Seq follows
				break
			}

			stack = stack[:len(stack)-1]
			if expr, err = p.closeList(top); err != nil {
				return nil, err
			}
		}

		if len(stack) == 0 {
			return expr, nil
		}
	}
}

// derive starts an SExpr at the current token. It returns the SExpr if it is
// already complete (an atom or an empty list), or the frame of the list that
// was just opened.
func (p *Parser) derive(depth int) (*ast.Node, *listFrame, error) {
	tok := p.curr()
	if tok == nil {
		return nil, nil, syntaxError(ast.NodeTypeSExpr, nil, ErrUnexpectedEOF)
	}

	if tok.Text() != openParen {
		atom, err := p.atom()
		if err != nil {
			return nil, nil, err
		}
		expr, err := ast.NewSExpr(atom)
		return expr, nil, err
	}

	if p.maxDepth > 0 && depth >= p.maxDepth {
		return nil, nil, syntaxError(ast.NodeTypeList, tok, ErrMaxDepth)
	}

	lparen, err := p.consume()
	if err != nil {
		return nil, nil, err
	}

	tok = p.curr()
	if tok == nil {
		return nil, nil, syntaxError(ast.NodeTypeList, nil, ErrUnexpectedEOF)
	}
	if tok.Text() != closeParen {
		return nil, &listFrame{lparen: lparen}, nil
	}

	rparen, err := p.consume()
	if err != nil {
		return nil, nil, err
	}

	list, err := ast.NewList(lparen, nil, rparen)
	if err != nil {
		return nil, nil, err
	}

	expr, err := ast.NewSExpr(list)
	return expr, nil, err
}

// closeList consumes the closing parenthesis of the list in frame.
func (p *Parser) closeList(frame *listFrame) (*ast.Node, error) {
	rparen, err := p.consume()
	if err != nil {
		return nil, err
	}

	seq, err := ast.NewSeq(frame.items...)
	if err != nil {
		return nil, err
	}

	list, err := ast.NewList(frame.lparen, seq, rparen)
	if err != nil {
		return nil, err
	}

	return ast.NewSExpr(list)
}

func (p *Parser) atom() (*ast.Node, error) {
	tok := p.curr()
	if tok == nil {
		return nil, syntaxError(ast.NodeTypeAtom, nil, ErrUnexpectedEOF)
	}
	if !tok.Type().IsAtom() {
		return nil, syntaxError(ast.NodeTypeAtom, tok, ErrUnexpectedToken)
	}

	leaf, err := p.consume()
	if err != nil {
		return nil, err
	}

	return ast.NewAtom(leaf)
}

func syntaxError(rule ast.NodeType, tok *lexer.Token, err error) error {
	e := &SyntaxError{Rule: rule.String(), Err: err}
	if tok != nil {
		t := *tok
		e.Tok = &t
	}
	return e
}

// Parse derives a Program out of the given tokens.
func Parse(tokens []lexer.Token, opts ...Option) (*ast.Node, error) {
	return New(tokens, opts...).Parse()
}

// ParseBytes tokenizes and parses the given source.
func ParseBytes(in []byte, opts ...Option) (*ast.Node, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, opts...)
}
