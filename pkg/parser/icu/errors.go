package icu

import "fmt"

// ErrorKind separates scanner failures from grammar failures.
type ErrorKind uint8

// Error kinds.
const (
	KindLexical ErrorKind = iota
	KindSyntax
)

func (k ErrorKind) String() string {
	if k == KindLexical {
		return "lexical"
	}
	return "syntax"
}

// SyntaxError reports malformed input with its location.
type SyntaxError struct {
	Kind   ErrorKind
	Offset int
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s error in line %d, pos %d: %s", e.Kind, e.Line, e.Column, e.Msg)
}
