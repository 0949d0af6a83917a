package keyvalues

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("keyvalues: syntax error")

// SyntaxError pinpoints a parse failure.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("keyvalues: L%d:%d: %s", e.Line, e.Col, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }
