package ast

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Printer renders a tree as indented lines of the form
// "<indent><symbol padded to Column> <lexeme>". The output is meant to be
// read by people and is not a stable format.
type Printer struct {
	Column int
	Indent string
}

// DefaultPrinter is the printer used by Print.
var DefaultPrinter = Printer{
	Column: 40,
	Indent: "  ",
}

// Fprint writes the tree rooted at n to w.
func (pr Printer) Fprint(w io.Writer, n *Node) error {
	if n == nil {
		_, err := fmt.Fprintf(w, ":nil\n")
		return err
	}
	return Walk(n, func(n *Node, depth int) error {
		prefix := strings.Repeat(pr.Indent, depth)
		width := pr.Column - len(prefix)
		if width < 0 {
			width = 0
		}
		_, err := fmt.Fprintf(w, "%s%-*s %s\n", prefix, width, n.Type(), n.Lexeme())
		return err
	})
}

// Print displays a human-readable representation of a node
func Print(w io.Writer, n *Node) error {
	return DefaultPrinter.Fprint(w, n)
}

// Encode transform a node into text representation. Atoms are separated by a
// single space, parentheses hug their contents.
func Encode(n *Node) []byte {
	var buf bytes.Buffer

	prev := ""
	for _, leaf := range Leaves(n) {
		lexeme := leaf.Lexeme()
		if buf.Len() > 0 && prev != "(" && lexeme != ")" {
			buf.WriteByte(' ')
		}
		buf.WriteString(lexeme)
		prev = lexeme
	}

	return buf.Bytes()
}
