package regexlib

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRegex matches every error returned by Parse, Build and CompileNFA.
	ErrInvalidRegex = errors.New("invalid regex")

	// ErrUnbalancedParentheses is reported when parenthesis nesting does not close.
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")

	// ErrInvalidExpression is reported when postfix evaluation runs out of
	// operands or leaves more than one fragment behind.
	ErrInvalidExpression = errors.New("invalid expression")
)

// SyntaxError describes a malformed regex.
//
// errors.Is reports true for ErrInvalidRegex and for the specific Kind.
type SyntaxError struct {
	Regex string
	Pos   int // rune offset of the offending token, -1 when unknown
	Kind  error
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("invalid regex %q: %v: %s", e.Regex, e.Kind, e.Msg)
	}
	return fmt.Sprintf("invalid regex %q: %v at position %d: %s", e.Regex, e.Kind, e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return e.Kind }

func (e *SyntaxError) Is(target error) bool { return target == ErrInvalidRegex }

func unbalanced(pos int, msg string) *SyntaxError {
	return &SyntaxError{Pos: pos, Kind: ErrUnbalancedParentheses, Msg: msg}
}

func invalidExpr(pos int, msg string) *SyntaxError {
	return &SyntaxError{Pos: pos, Kind: ErrInvalidExpression, Msg: msg}
}

// withRegex fills in the source pattern on a *SyntaxError produced deeper in
// the pipeline.
func withRegex(err error, regex string) error {
	var se *SyntaxError
	if errors.As(err, &se) && se.Regex == "" {
		se.Regex = regex
	}
	return err
}
