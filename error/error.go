package error

import (
	"fmt"
	"strings"
)

// SpecError annotates an error arising from a grammar definition with the row
// it occurred at, for user display.
type SpecError struct {
	Cause error
	Row   int
	Line  string
}

func (e *SpecError) Error() string {
	var b strings.Builder
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v: ", e.Row)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	if e.Line != "" {
		fmt.Fprintf(&b, "\n    %v", e.Line)
	}
	return b.String()
}

func (e *SpecError) Unwrap() error {
	return e.Cause
}
