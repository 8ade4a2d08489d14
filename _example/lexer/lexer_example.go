package main

import (
	"fmt"
	"log"

	"github.com/xiam/lispish/lexer"
)

func main() {
	input := `
		(fn_a
			(fn_b (89 :A :B (67 3.27)))
			(fn_c 66 3 53 "Hello world!")
		)
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v, offset: %d)\n\t-> %q\n\n", i, tok.Type(), tok.Pos(), tok.Text())
	}
}
