package segment

import (
	"errors"
	"fmt"

	"github.com/yaklabco/goicu/pkg/msgast"
)

// Sentinel errors for errors.Is.
var (
	// ErrInvariant marks a structural fault: the extracted data is
	// inconsistent, which is a defect rather than bad input.
	ErrInvariant = errors.New("structural invariant violated")

	// ErrUsage marks an API misuse by the caller.
	ErrUsage = errors.New("usage error")
)

// InvariantError reports a structural fault such as overlapping spans.
type InvariantError struct {
	Msg   string
	Spans []msgast.Span
}

func (e *InvariantError) Error() string {
	if len(e.Spans) == 0 {
		return fmt.Sprintf("%v: %s", ErrInvariant, e.Msg)
	}
	return fmt.Sprintf("%v: %s %v", ErrInvariant, e.Msg, e.Spans)
}

// Unwrap returns ErrInvariant.
func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// UsageError reports a caller mistake: mismatched item counts, a missing
// "other" entry for standalone expansion or an absent input.
type UsageError struct {
	Op  string
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, ErrUsage, e.Msg)
}

// Unwrap returns ErrUsage.
func (e *UsageError) Unwrap() error {
	return ErrUsage
}

// DiagnosticKind classifies collected parse problems.
type DiagnosticKind uint8

// Diagnostic kinds.
const (
	DiagLexical DiagnosticKind = iota
	DiagSyntax
	DiagMissingOther
	DiagStrictMode
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagLexical:
		return "lexical"
	case DiagSyntax:
		return "syntax"
	case DiagMissingOther:
		return "missing-other"
	case DiagStrictMode:
		return "strict-mode"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name.
func (k DiagnosticKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Diagnostic is one problem found in the input. Diagnostics are values,
// not errors: a message with diagnostics still yields items.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind" yaml:"kind"`
	Message string         `json:"message" yaml:"message"`
	Line    int            `json:"line,omitempty" yaml:"line,omitempty"`
	Column  int            `json:"column,omitempty" yaml:"column,omitempty"`
	Offset  int            `json:"offset" yaml:"offset"`
}

func (d Diagnostic) String() string {
	return d.Message
}
