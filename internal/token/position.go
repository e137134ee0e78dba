// Package token holds the small source-position type shared by the AST
// and error reporting. The lexer/parser that produces positions is an
// external collaborator; this package only defines the contract.
package token

import "fmt"

// Position identifies a location in source text.
type Position struct {
	Line   int
	Column int
	File   string
}

// String renders "file:line:column", omitting the file when empty.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}
