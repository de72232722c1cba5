// Package icumsg is the entry point for working with one ICU message:
// parse it, hand its translatable items to a translator, and compose the
// translated items back into a message for a target language.
//
// Parse never fails on bad input. Problems are collected as diagnostics and
// the message degrades to a single item holding the whole input, so
// pipelines can pass unparseable strings through unchanged.
package icumsg

import (
	"errors"
	"fmt"

	"github.com/yaklabco/goicu/internal/logging"
	"github.com/yaklabco/goicu/pkg/expand"
	"github.com/yaklabco/goicu/pkg/extract"
	"github.com/yaklabco/goicu/pkg/msgast"
	"github.com/yaklabco/goicu/pkg/parser/icu"
	"github.com/yaklabco/goicu/pkg/segment"
)

// Message is a parsed message. It is not safe for concurrent use.
type Message struct {
	input    string
	opts     options
	snap     *msgast.Snapshot
	res      *extract.Result
	diags    []segment.Diagnostic
	isICU    bool
	degraded bool
}

// Parse parses and validates input.
func Parse(input string, opts ...Option) *Message {
	m := &Message{
		input: input,
		opts:  newOptions(opts),
	}
	m.run()
	return m
}

// ParseNullable is Parse for an input that may be absent.
func ParseNullable(input *string, opts ...Option) (*Message, error) {
	if input == nil {
		return nil, &segment.UsageError{Op: "parse", Msg: "input is absent"}
	}
	return Parse(*input, opts...), nil
}

func (m *Message) run() {
	logger := m.opts.logger

	snap, err := m.opts.parser.Parse(m.input)
	if err != nil {
		m.addParseError(err)
		m.degrade()
		return
	}
	m.snap = snap

	res, err := extract.Extract(snap.Root)
	if err != nil {
		m.addParseError(err)
		m.degrade()
		return
	}

	for _, stray := range res.Strays {
		m.addDiagnostic(segment.DiagStrictMode, stray.Span.Start,
			fmt.Sprintf("Strict parse mode enabled. Content contains leading/trailing text '%s'.", stray.Text))
	}

	if m.Success() {
		for _, g := range res.MissingOther() {
			m.addDiagnostic(segment.DiagMissingOther, g.Span.Start,
				fmt.Sprintf("Missing 'other' plural selector in '%s'.", m.input))
		}
	}

	if m.Success() {
		err = expand.Groups(res.Groups, res.Segments, m.opts.registry)
		if err != nil {
			m.addParseError(err)
		}
	}

	if !m.Success() {
		m.degrade()
		return
	}

	m.res = res
	m.isICU = res.ComplexArgs > 0

	expanded := 0
	for _, g := range res.Groups {
		expanded += len(g.Expanded)
	}
	logger.Debug("parsed message",
		logging.FieldSegments, len(res.Segments),
		logging.FieldGroups, len(res.Groups),
		logging.FieldExpanded, expanded)
}

func (m *Message) addParseError(err error) {
	var syntaxErr *icu.SyntaxError
	if errors.As(err, &syntaxErr) {
		kind := segment.DiagSyntax
		if syntaxErr.Kind == icu.KindLexical {
			kind = segment.DiagLexical
		}
		m.diags = append(m.diags, segment.Diagnostic{
			Kind:    kind,
			Message: syntaxErr.Error(),
			Line:    syntaxErr.Line,
			Column:  syntaxErr.Column,
			Offset:  syntaxErr.Offset,
		})
		return
	}
	m.diags = append(m.diags, segment.Diagnostic{Kind: segment.DiagSyntax, Message: err.Error()})
}

func (m *Message) addDiagnostic(kind segment.DiagnosticKind, offset int, msg string) {
	d := segment.Diagnostic{Kind: kind, Message: msg, Offset: offset}
	if m.snap != nil {
		d.Line, d.Column = m.snap.LineAt(offset)
	}
	m.diags = append(m.diags, d)
}

// degrade replaces the extraction with the whole input as one segment.
func (m *Message) degrade() {
	m.res = extract.Whole(m.input)
	m.isICU = false
	m.degraded = true

	m.opts.logger.Debug("message degraded to plain text",
		logging.FieldDiagnostics, len(m.diags),
		logging.FieldError, m.diags[0].Message)
}

// Input returns the text that was parsed.
func (m *Message) Input() string {
	return m.input
}

// IsICU reports whether the message parsed and contains at least one
// plural, select or selectordinal argument.
func (m *Message) IsICU() bool {
	return m.isICU
}

// Degraded reports whether the message fell back to a single segment.
func (m *Message) Degraded() bool {
	return m.degraded
}

// Success reports whether no diagnostic was recorded.
func (m *Message) Success() bool {
	return len(m.diags) == 0
}

// Diagnostics returns the recorded problems in detection order.
func (m *Message) Diagnostics() []segment.Diagnostic {
	return m.diags
}

// Errors returns the diagnostic messages.
func (m *Message) Errors() []string {
	out := make([]string, len(m.diags))
	for i, d := range m.diags {
		out[i] = d.Message
	}
	return out
}

// Segments returns the extracted segments in document order.
func (m *Message) Segments() []*segment.Segment {
	return m.res.Segments
}

// Groups returns the plural groups, outer before inner. It is empty for a
// degraded message.
func (m *Message) Groups() []*segment.Group {
	return m.res.Groups
}

// Snapshot returns the syntax tree, or nil when parsing failed.
func (m *Message) Snapshot() *msgast.Snapshot {
	return m.snap
}
