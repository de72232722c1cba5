package icu

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanner is a cursor over the input with rune-aware helpers.
type scanner struct {
	input string
	pos   int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.input[s.pos]
}

func (s *scanner) peekAt(offset int) byte {
	if s.pos+offset >= len(s.input) {
		return 0
	}
	return s.input[s.pos+offset]
}

func (s *scanner) hasPrefix(prefix string) bool {
	return strings.HasPrefix(s.input[s.pos:], prefix)
}

// skipSpace advances over Unicode white space.
func (s *scanner) skipSpace() {
	for !s.eof() {
		r, size := utf8.DecodeRuneInString(s.input[s.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		s.pos += size
	}
}

// ident reads an argument name, type or selector keyword.
func (s *scanner) ident() string {
	start := s.pos
	for !s.eof() {
		r, size := utf8.DecodeRuneInString(s.input[s.pos:])
		if !isIdentRune(r) {
			break
		}
		s.pos += size
	}
	return s.input[start:s.pos]
}

// number reads an optionally signed decimal number.
func (s *scanner) number() string {
	start := s.pos
	if s.peek() == '-' || s.peek() == '+' {
		s.pos++
	}
	digits := s.pos
	for !s.eof() && (isDigit(s.peek()) || s.peek() == '.') {
		s.pos++
	}
	if s.pos == digits {
		s.pos = start
		return ""
	}
	return s.input[start:s.pos]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentRune(r rune) bool {
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return false
	}
	return !strings.ContainsRune("{}#,'\"=:|", r)
}
