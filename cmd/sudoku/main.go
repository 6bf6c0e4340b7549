package main

import (
	"os"

	"github.com/gridkit/sudoku/internal/adapters/cli"
)

func main() {
	os.Exit(cli.Execute())
}
