// Command stcore runs a Structured Text scan-cycle program described
// as a parsed-AST JSON document (spec.md §1: the lexer/parser that
// produces that document is out of scope for this module).
//
// Grounded on CWBudde-go-dws's cmd/dwscript entry point: a thin main
// that delegates to a cobra root command.
package main

import (
	"fmt"
	"os"

	"github.com/golang-plc/stcore/cmd/stcore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
