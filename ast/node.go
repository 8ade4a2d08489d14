package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/lispish/lexer"
)

// ErrUnexpectedNode is returned when a constructor is given children that
// don't fit the grammar rule of the node being built.
var ErrUnexpectedNode = errors.New("unexpected node")

// Node represents a node of the parse tree. Nodes are built bottom-up by the
// constructors below and can't be modified afterwards.
type Node struct {
	nt       NodeType
	tok      *lexer.Token
	children []*Node
}

func newNode(nt NodeType, tok *lexer.Token, children ...*Node) *Node {
	return &Node{
		nt:       nt,
		tok:      tok,
		children: children,
	}
}

func unexpected(rule NodeType, n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: %v got nil", ErrUnexpectedNode, rule)
	}
	return fmt.Errorf("%w: %v got %v", ErrUnexpectedNode, rule, n.nt)
}

func isType(n *Node, nt NodeType) bool {
	return n != nil && n.nt == nt
}

func isLiteral(n *Node, lexeme string) bool {
	return isType(n, NodeTypeLiteral) && n.tok.Text() == lexeme
}

// NewLeaf creates a terminal node that holds a copy of the given token.
func NewLeaf(tok lexer.Token) (*Node, error) {
	nt, ok := terminalTypes[tok.Type()]
	if !ok {
		return nil, fmt.Errorf("%w: token %v", ErrUnexpectedNode, tok)
	}
	return newNode(nt, &tok), nil
}

// NewAtom wraps an identifier, integer, real or string leaf.
func NewAtom(leaf *Node) (*Node, error) {
	if leaf == nil {
		return nil, unexpected(NodeTypeAtom, leaf)
	}
	switch leaf.nt {
	case NodeTypeID, NodeTypeInt, NodeTypeReal, NodeTypeString:
		return newNode(NodeTypeAtom, nil, leaf), nil
	}
	return nil, unexpected(NodeTypeAtom, leaf)
}

// NewList creates a list out of its parenthesis leaves and an optional Seq,
// seq must be nil for the empty list.
func NewList(lparen *Node, seq *Node, rparen *Node) (*Node, error) {
	if !isLiteral(lparen, "(") {
		return nil, unexpected(NodeTypeList, lparen)
	}
	if !isLiteral(rparen, ")") {
		return nil, unexpected(NodeTypeList, rparen)
	}
	if seq == nil {
		return newNode(NodeTypeList, nil, lparen, rparen), nil
	}
	if !isType(seq, NodeTypeSeq) {
		return nil, unexpected(NodeTypeList, seq)
	}
	return newNode(NodeTypeList, nil, lparen, seq, rparen), nil
}

// NewSeq folds one or more SExpr nodes into a right-leaning chain of Seq
// nodes, Seq(a, Seq(b, Seq(c))). It returns nil when items is empty.
func NewSeq(items ...*Node) (*Node, error) {
	for _, item := range items {
		if !isType(item, NodeTypeSExpr) {
			return nil, unexpected(NodeTypeSeq, item)
		}
	}

	var seq *Node
	for i := len(items) - 1; i >= 0; i-- {
		if seq == nil {
			seq = newNode(NodeTypeSeq, nil, items[i])
			continue
		}
		seq = newNode(NodeTypeSeq, nil, items[i], seq)
	}
	return seq, nil
}

// NewSExpr wraps a List or an Atom.
func NewSExpr(child *Node) (*Node, error) {
	if !isType(child, NodeTypeList) && !isType(child, NodeTypeAtom) {
		return nil, unexpected(NodeTypeSExpr, child)
	}
	return newNode(NodeTypeSExpr, nil, child), nil
}

// NewProgram creates the root node out of zero or more SExpr nodes.
func NewProgram(exprs ...*Node) (*Node, error) {
	for _, expr := range exprs {
		if !isType(expr, NodeTypeSExpr) {
			return nil, unexpected(NodeTypeProgram, expr)
		}
	}
	children := make([]*Node, len(exprs))
	copy(children, exprs)
	return newNode(NodeTypeProgram, nil, children...), nil
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Token returns the token associated to the node, only terminal nodes have
// one.
func (n Node) Token() *lexer.Token {
	if n.tok == nil {
		return nil
	}
	tok := *n.tok
	return &tok
}

// Lexeme returns the text of the token of a terminal node, or an empty string.
func (n Node) Lexeme() string {
	if n.tok == nil {
		return ""
	}
	return n.tok.Text()
}

// IsTerminal returns true if the node was copied from a token
func (n Node) IsTerminal() bool {
	return n.nt.IsTerminal()
}

// Len returns the number of children
func (n Node) Len() int {
	return len(n.children)
}

// Child returns the i-th child, or nil if there is no such child
func (n Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the list of children
func (n Node) Children() []*Node {
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	return children
}

func (n Node) String() string {
	if n.IsTerminal() {
		return fmt.Sprintf("(%v): %v", n.nt, n.Lexeme())
	}
	return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
}
