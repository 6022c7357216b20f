package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	// lexical errors
	synErrInvalidSymbol = newSyntaxError("invalid symbol; only letters, ->, and | may appear in a production")

	// syntax errors
	synErrNoProduction     = newSyntaxError("a grammar must have at least one production")
	synErrNoArrow          = newSyntaxError("an arrow -> must follow the left-hand side of a production")
	synErrNoLHS            = newSyntaxError("the left-hand side of a production must be a single non-terminal")
	synErrEmptyAlternative = newSyntaxError("an alternative must contain at least one symbol; empty productions are not supported")
	synErrProdNoNewline    = newSyntaxError("a production must be followed by a newline")
)
