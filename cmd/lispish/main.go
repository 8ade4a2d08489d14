package main

import (
	"os"

	"github.com/xiam/lispish/cmd/lispish/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
