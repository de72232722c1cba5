// Package icu parses ICU MessageFormat strings into msgast trees.
//
// The grammar understood here is the subset used by localization
// pipelines: literal text with apostrophe and double-quote literals, simple
// and none arguments, the number sign inside branch bodies, and the
// plural, select and selectordinal complex arguments.
package icu

import (
	"fmt"

	"github.com/yaklabco/goicu/pkg/msgast"
)

// simpleTypes lists the argument types that format a single value.
//
//nolint:gochecknoglobals // Read-only lookup table.
var simpleTypes = map[string]bool{
	"number":   true,
	"date":     true,
	"time":     true,
	"spellout": true,
	"ordinal":  true,
	"duration": true,
}

// complexTypes maps the complex argument keywords to their kinds.
//
//nolint:gochecknoglobals // Read-only lookup table.
var complexTypes = map[string]msgast.ArgKind{
	"plural":        msgast.ArgPlural,
	"select":        msgast.ArgSelect,
	"selectordinal": msgast.ArgSelectOrdinal,
}

const offsetKeyword = "offset:"

// Parser converts message text into a msgast.Snapshot.
// A Parser holds no state between calls and is safe for concurrent use.
type Parser struct{}

// New creates a new parser.
func New() *Parser {
	return &Parser{}
}

// Parse builds the syntax tree for input.
// On malformed input it returns nil and a *SyntaxError.
func (p *Parser) Parse(input string) (*msgast.Snapshot, error) {
	snap := msgast.NewSnapshot(input)
	state := &parseState{
		scanner: scanner{input: input},
		snap:    snap,
	}

	root, err := state.parseMessage(false)
	if err != nil {
		return nil, err
	}

	snap.Root = root
	msgast.SetFile(root, snap)

	return snap, nil
}

type parseState struct {
	scanner
	snap *msgast.Snapshot
}

func (st *parseState) fail(kind ErrorKind, offset int, format string, args ...any) *SyntaxError {
	line, col := st.snap.LineAt(offset)
	return &SyntaxError{
		Kind:   kind,
		Offset: offset,
		Line:   line,
		Column: col,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// parseMessage parses a sequence of text runs and complex arguments.
// At top level it stops at end of input. Inside a branch it stops in front
// of the closing '}' and leaves it for the caller.
func (st *parseState) parseMessage(inBranch bool) (*msgast.Node, error) {
	msg := msgast.NewMessage(msgast.Span{Start: st.pos, Stop: st.pos - 1})

	var run *msgast.Node
	closeRun := func(end int) {
		if run == nil {
			return
		}
		run.Span.Stop = end - 1
		msgast.AppendChild(msg, run)
		run = nil
	}
	openRun := func(start int) {
		if run == nil {
			run = msgast.NewNode(msgast.NodeText, msgast.Span{Start: start})
		}
	}

	for !st.eof() {
		start := st.pos

		switch st.peek() {
		case '}':
			if !inBranch {
				return nil, st.fail(KindSyntax, start, "unmatched '}'")
			}
			closeRun(start)
			msg.Span.Stop = start - 1
			return msg, nil

		case '{':
			arg, err := st.parseArgument()
			if err != nil {
				return nil, err
			}
			if arg.Kind == msgast.NodeComplexArg {
				closeRun(start)
				msgast.AppendChild(msg, arg)
				continue
			}
			openRun(start)
			msgast.AppendChild(run, arg)

		case '#':
			openRun(start)
			if inBranch {
				msgast.AppendChild(run, msgast.NewNode(msgast.NodeNumberSign, msgast.Span{Start: start, Stop: start}))
			}
			st.pos++

		case '\'':
			openRun(start)
			if err := st.skipApostrophe(); err != nil {
				return nil, err
			}

		case '"':
			openRun(start)
			if err := st.skipDoubleQuote(); err != nil {
				return nil, err
			}

		default:
			openRun(start)
			st.pos++
		}
	}

	if inBranch {
		return nil, st.fail(KindSyntax, st.pos, "missing '}' at end of input")
	}

	closeRun(st.pos)
	msg.Span.Stop = st.pos - 1

	return msg, nil
}

// skipApostrophe consumes an apostrophe and, when it opens a quoted
// literal, everything up to the closing apostrophe.
func (st *parseState) skipApostrophe() error {
	start := st.pos

	switch st.peekAt(1) {
	case '\'':
		st.pos += 2
		return nil
	case '{':
		st.pos += 2
	default:
		st.pos++
		return nil
	}

	for !st.eof() {
		if st.peek() != '\'' {
			st.pos++
			continue
		}
		if st.peekAt(1) == '\'' {
			st.pos += 2
			continue
		}
		st.pos++
		return nil
	}

	return st.fail(KindLexical, start, "unterminated quoted literal at: %q", st.input[start:])
}

// skipDoubleQuote consumes a double-quoted literal. Braces inside it are
// plain text.
func (st *parseState) skipDoubleQuote() error {
	start := st.pos
	st.pos++

	for !st.eof() {
		if st.peek() == '"' {
			st.pos++
			return nil
		}
		st.pos++
	}

	return st.fail(KindLexical, start, "token recognition error at: %q", st.input[start:])
}

// parseArgument parses "{name}", "{name, type[, style]}" or a complex
// argument, starting at the opening brace.
func (st *parseState) parseArgument() (*msgast.Node, error) {
	open := st.pos
	st.pos++
	st.skipSpace()

	nameStart := st.pos
	name := st.ident()
	if name == "" {
		return nil, st.fail(KindSyntax, nameStart, "expected argument name")
	}
	st.skipSpace()

	switch st.peek() {
	case '}':
		st.pos++
		node := msgast.NewNode(msgast.NodeNoneArg, msgast.Span{Start: open, Stop: st.pos - 1})
		node.Arg = &msgast.ArgAttrs{Name: name}
		return node, nil
	case ',':
		st.pos++
	default:
		return nil, st.fail(KindSyntax, st.pos, "expected ',' or '}' after argument name %q", name)
	}

	st.skipSpace()
	typeStart := st.pos
	argType := st.ident()
	if argType == "" {
		return nil, st.fail(KindSyntax, typeStart, "expected argument type")
	}

	if kind, ok := complexTypes[argType]; ok {
		return st.parseComplex(open, name, kind)
	}
	if !simpleTypes[argType] {
		return nil, st.fail(KindSyntax, typeStart, "unknown argument type %q", argType)
	}

	node := msgast.NewNode(msgast.NodeSimpleArg, msgast.Span{Start: open})
	node.Arg = &msgast.ArgAttrs{Name: name, Type: argType}

	st.skipSpace()
	switch st.peek() {
	case '}':
	case ',':
		st.pos++
		style, err := st.readStyle(open)
		if err != nil {
			return nil, err
		}
		node.Arg.Style = style
	default:
		return nil, st.fail(KindSyntax, st.pos, "expected ',' or '}' after argument type %q", argType)
	}

	st.pos++
	node.Span.Stop = st.pos - 1

	return node, nil
}

// readStyle reads a simple argument style up to, not including, the brace
// that closes the argument. Nested braces must balance.
func (st *parseState) readStyle(open int) (string, error) {
	st.skipSpace()
	start := st.pos
	depth := 0

	for !st.eof() {
		switch st.peek() {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return trimRightSpace(st.input[start:st.pos]), nil
			}
			depth--
		case '\'':
			if err := st.skipApostrophe(); err != nil {
				return "", err
			}
			continue
		}
		st.pos++
	}

	return "", st.fail(KindSyntax, open, "unterminated argument")
}

// parseComplex parses the remainder of a plural, select or selectordinal
// argument after its keyword.
func (st *parseState) parseComplex(open int, name string, kind msgast.ArgKind) (*msgast.Node, error) {
	node := msgast.NewComplexArg(msgast.Span{Start: open}, name, kind)

	st.skipSpace()
	if st.peek() != ',' {
		return nil, st.fail(KindSyntax, st.pos, "expected ',' after %q", kind.Keyword())
	}
	st.pos++
	st.skipSpace()

	if kind != msgast.ArgSelect && st.hasPrefix(offsetKeyword) {
		st.pos += len(offsetKeyword)
		st.skipSpace()
		offsetStart := st.pos
		node.Arg.Offset = st.number()
		if node.Arg.Offset == "" {
			return nil, st.fail(KindSyntax, offsetStart, "expected number after %q", offsetKeyword)
		}
	}

	for {
		st.skipSpace()
		if st.eof() {
			return nil, st.fail(KindSyntax, open, "unterminated %s argument", kind.Keyword())
		}
		if st.peek() == '}' {
			break
		}

		branch, err := st.parseBranch(kind)
		if err != nil {
			return nil, err
		}
		msgast.AppendChild(node, branch)
	}

	if !node.HasChildren() {
		return nil, st.fail(KindSyntax, st.pos, "%s argument %q has no selectors", kind.Keyword(), name)
	}

	node.Span.Stop = st.pos
	st.pos++

	return node, nil
}

// parseBranch parses "selector {message}".
func (st *parseState) parseBranch(kind msgast.ArgKind) (*msgast.Node, error) {
	selStart := st.pos

	var selector string
	if st.peek() == '=' && kind != msgast.ArgSelect {
		st.pos++
		num := st.number()
		if num == "" {
			return nil, st.fail(KindSyntax, selStart, "expected number after '='")
		}
		selector = "=" + num
	} else {
		selector = st.ident()
	}
	if selector == "" {
		return nil, st.fail(KindSyntax, selStart, "expected selector")
	}
	selSpan := msgast.Span{Start: selStart, Stop: st.pos - 1}

	st.skipSpace()
	if st.peek() != '{' {
		return nil, st.fail(KindSyntax, st.pos, "expected '{' after selector %q", selector)
	}
	st.pos++

	body, err := st.parseMessage(true)
	if err != nil {
		return nil, err
	}

	// parseMessage(true) only returns without error in front of '}'.
	closePos := st.pos
	st.pos++

	branch := msgast.NewBranch(msgast.Span{Start: selStart, Stop: closePos}, selector, selSpan)
	msgast.AppendChild(branch, body)

	return branch, nil
}

func trimRightSpace(s string) string {
	end := len(s)
	for end > 0 && (s[end-1] == ' ' || s[end-1] == '\t' || s[end-1] == '\n' || s[end-1] == '\r') {
		end--
	}
	return s[:end]
}
