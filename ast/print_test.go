package ast

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/lispish/lexer"
)

// buildList returns the tree of `(a)`.
func buildList(t *testing.T) *Node {
	seq, err := NewSeq(atomExpr(t, lexer.TokenIdentifier, "a"))
	require.NoError(t, err)

	list, err := NewList(leaf(t, lexer.TokenParen, "("), seq, leaf(t, lexer.TokenParen, ")"))
	require.NoError(t, err)

	expr, err := NewSExpr(list)
	require.NoError(t, err)

	program, err := NewProgram(expr)
	require.NoError(t, err)

	return program
}

func TestWalk(t *testing.T) {
	program := buildList(t)

	visited := []string{}
	depths := []int{}
	err := Walk(program, func(n *Node, depth int) error {
		visited = append(visited, n.Type().String())
		depths = append(depths, depth)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Program", "SExpr", "List", "LITERAL", "Seq", "SExpr", "Atom", "ID", "LITERAL"}, visited)
	assert.Equal(t, []int{0, 1, 2, 3, 3, 4, 5, 6, 3}, depths)
}

func TestWalkSkipChildren(t *testing.T) {
	program := buildList(t)

	visited := []string{}
	err := Walk(program, func(n *Node, depth int) error {
		visited = append(visited, n.Type().String())
		if n.Type() == NodeTypeSeq {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Program", "SExpr", "List", "LITERAL", "Seq", "LITERAL"}, visited)
}

func TestWalkError(t *testing.T) {
	errStop := errors.New("stop")

	count := 0
	err := Walk(buildList(t), func(n *Node, depth int) error {
		count++
		if n.Type() == NodeTypeList {
			return errStop
		}
		return nil
	})

	assert.Equal(t, errStop, err)
	assert.Equal(t, 3, count)

	assert.NoError(t, Walk(nil, nil))
}

func TestLeaves(t *testing.T) {
	lexemes := []string{}
	for _, leaf := range Leaves(buildList(t)) {
		lexemes = append(lexemes, leaf.Lexeme())
	}
	assert.Equal(t, []string{"(", "a", ")"}, lexemes)

	assert.Empty(t, Leaves(nil))
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer

	pr := Printer{Column: 12, Indent: "  "}
	require.NoError(t, pr.Fprint(&buf, buildList(t)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)

	assert.Equal(t, "Program      ", lines[0])
	assert.Equal(t, "  SExpr      ", lines[1])
	assert.Equal(t, "      LITERAL (", lines[3])
	assert.Equal(t, "            ID a", lines[7])
	assert.Equal(t, "      LITERAL )", lines[8])
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Print(&buf, buildList(t)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)

	// the lexeme starts right after the symbol column
	assert.Equal(t, strings.Repeat(" ", 12)+"ID"+strings.Repeat(" ", 40-12-2)+" a", lines[7])

	buf.Reset()
	require.NoError(t, Print(&buf, nil))
	assert.Equal(t, ":nil\n", buf.String())
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "(a)", string(Encode(buildList(t))))

	a := atomExpr(t, lexer.TokenIdentifier, "a")
	one := atomExpr(t, lexer.TokenInt, "1")
	str := atomExpr(t, lexer.TokenString, `"s s"`)

	seq, err := NewSeq(a, one, str)
	require.NoError(t, err)
	list, err := NewList(leaf(t, lexer.TokenParen, "("), seq, leaf(t, lexer.TokenParen, ")"))
	require.NoError(t, err)
	inner, err := NewSExpr(list)
	require.NoError(t, err)

	empty, err := NewList(leaf(t, lexer.TokenParen, "("), nil, leaf(t, lexer.TokenParen, ")"))
	require.NoError(t, err)
	emptyExpr, err := NewSExpr(empty)
	require.NoError(t, err)

	program, err := NewProgram(inner, emptyExpr, atomExpr(t, lexer.TokenReal, "-.5"))
	require.NoError(t, err)

	assert.Equal(t, `(a 1 "s s") () -.5`, string(Encode(program)))
}
