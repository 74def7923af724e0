package regex

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
	synErrAlphabetViolation = newSyntaxError("a literal is outside the alphabet")
	synErrUnsupportedToken  = newSyntaxError("unsupported character")
	synErrMismatchedParen   = newSyntaxError("mismatched parenthesis")
)

// A ParseError annotates a syntax error with the construct that caused it.
type ParseError struct {
	Cause  error
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%v: %v", e.Cause, e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
