package lex

import "fmt"

// SyntaxError is returned by Parse and Compile when a pattern cannot be
// parsed: an unbalanced ')', an unterminated '[', an invalid character
// where a simple expression was expected, or an escape sequence that runs
// past the end of the pattern.
type SyntaxError struct {
	Message  string
	Position int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d: %s", e.Position, e.Message)
}

func syntaxErrorf(pos int, format string, a ...interface{}) error {
	return &SyntaxError{Message: fmt.Sprintf(format, a...), Position: pos}
}
