package main

import (
	"log"
	"os"

	"github.com/xiam/lispish/ast"
	"github.com/xiam/lispish/parser"
)

func main() {
	input := `(fn_a (fn_b (89 :A :B (67 3.27))) (fn_c 66 3 53 "Hello world!" 😊))`

	root, err := parser.ParseBytes([]byte(input))
	if err != nil {
		log.Fatal("parser.ParseBytes:", err)
	}

	if err := ast.Print(os.Stdout, root); err != nil {
		log.Fatal("ast.Print:", err)
	}
}
