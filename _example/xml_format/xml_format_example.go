package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lispish/ast"
	"github.com/xiam/lispish/parser"
)

// printTree closes every non-terminal after its children, so it keeps the
// open nodes on a stack while walking.
func printTree(root *ast.Node) {
	type open struct {
		node  *ast.Node
		depth int
	}
	stack := []open{}

	closeUntil := func(depth int) {
		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			fmt.Printf("%s</%s>\n", strings.Repeat("  ", top.depth), top.node.Type())
		}
	}

	_ = ast.Walk(root, func(n *ast.Node, depth int) error {
		closeUntil(depth)
		indent := strings.Repeat("  ", depth)
		if n.IsTerminal() {
			fmt.Printf("%s<%s>%s</%s>\n", indent, n.Type(), n.Lexeme(), n.Type())
			return nil
		}
		fmt.Printf("%s<%s>\n", indent, n.Type())
		stack = append(stack, open{node: n, depth: depth})
		return nil
	})
	closeUntil(0)
}

func main() {
	input := `(fn_a (fn_b (89 :A :B (67 3.27))) (fn_c 66 3 53 "Hello world!" 😊))`

	root, err := parser.ParseBytes([]byte(input))
	if err != nil {
		log.Fatal("parser.ParseBytes:", err)
	}

	printTree(root)
}
