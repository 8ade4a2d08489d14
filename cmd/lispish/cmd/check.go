package cmd

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/xiam/lispish/internal/config"
	"github.com/xiam/lispish/lexer"
	"github.com/xiam/lispish/parser"
)

const ruleWidth = 50

var (
	doubleRule = strings.Repeat("=", ruleWidth)
	singleRule = strings.Repeat("-", ruleWidth)
)

// check prints the source, its tokens and its parse tree. Sections already
// written stay on w when a later stage fails.
func check(w io.Writer, logger *log.Logger, cfg *config.Config, src []byte) error {
	fmt.Fprintln(w, doubleRule)
	fmt.Fprintf(w, "Input: %s\n", src)
	fmt.Fprintln(w, singleRule)

	start := time.Now()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}
	logger.Printf("tokenized %d bytes into %d tokens in %v", len(src), len(tokens), time.Since(start))

	if cfg.Output.Tokens {
		fmt.Fprintln(w, "Tokens")
		fmt.Fprintln(w, singleRule)
		for _, tok := range tokens {
			fmt.Fprintf(w, "%-18s\t: %s\n", tok.Type(), tok.Text())
		}
		fmt.Fprintln(w, singleRule)
	}

	start = time.Now()
	tree, err := parser.Parse(tokens, parser.WithMaxDepth(cfg.Parser.MaxDepth))
	if err != nil {
		return err
	}
	logger.Printf("parsed %d tokens in %v", len(tokens), time.Since(start))

	if cfg.Output.Tree {
		fmt.Fprintln(w, "Parse Tree")
		fmt.Fprintln(w, singleRule)
		if err := cfg.TreePrinter().Fprint(w, tree); err != nil {
			return err
		}
		fmt.Fprintln(w, singleRule)
	}

	return nil
}
