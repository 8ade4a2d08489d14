package ast

import (
	"github.com/xiam/lispish/lexer"
)

// NodeType represents the grammar symbol of an AST node
type NodeType uint16

// Node types
const (
	nodeTypeTerminal    NodeType = 128
	nodeTypeNonTerminal NodeType = 256

	NodeTypeLiteral NodeType = nodeTypeTerminal | 1
	NodeTypeReal    NodeType = nodeTypeTerminal | 2
	NodeTypeInt     NodeType = nodeTypeTerminal | 4
	NodeTypeString  NodeType = nodeTypeTerminal | 8
	NodeTypeID      NodeType = nodeTypeTerminal | 16

	NodeTypeProgram NodeType = nodeTypeNonTerminal | 1
	NodeTypeSExpr   NodeType = nodeTypeNonTerminal | 2
	NodeTypeList    NodeType = nodeTypeNonTerminal | 4
	NodeTypeSeq     NodeType = nodeTypeNonTerminal | 8
	NodeTypeAtom    NodeType = nodeTypeNonTerminal | 16
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

// IsTerminal returns true for symbols that wrap a token.
func (nt NodeType) IsTerminal() bool {
	return nt&nodeTypeTerminal > 0
}

var nodeTypeName = map[NodeType]string{
	NodeTypeLiteral: "LITERAL",
	NodeTypeReal:    "REAL",
	NodeTypeInt:     "INT",
	NodeTypeString:  "STRING",
	NodeTypeID:      "ID",
	NodeTypeProgram: "Program",
	NodeTypeSExpr:   "SExpr",
	NodeTypeList:    "List",
	NodeTypeSeq:     "Seq",
	NodeTypeAtom:    "Atom",
}

var terminalTypes = map[lexer.TokenType]NodeType{
	lexer.TokenParen:      NodeTypeLiteral,
	lexer.TokenReal:       NodeTypeReal,
	lexer.TokenInt:        NodeTypeInt,
	lexer.TokenString:     NodeTypeString,
	lexer.TokenIdentifier: NodeTypeID,
}
