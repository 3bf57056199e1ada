// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package wkt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/geocodec/pkg/geo/geopb"
)

// LexError is an error that occurs during lexing.
type LexError struct {
	expectedTokType string
	pos             int
	str             string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error: invalid %s at pos %d\n%s\n%s^",
		e.expectedTokType, e.pos, e.str, strings.Repeat(" ", e.pos))
}

// ParseError is an error that occurs during parsing, which happens after lexing.
type ParseError struct {
	problem string
	pos     int
	str     string
	hint    string
}

func (e *ParseError) Error() string {
	err := fmt.Sprintf("%s at pos %d\n%s\n%s^", e.problem, e.pos, e.str, strings.Repeat(" ", e.pos))
	if e.hint != "" {
		err += fmt.Sprintf("\nHINT: %s", e.hint)
	}
	return err
}

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenWord
	tokenNumber
	tokenSRID
	tokenChar
)

type token struct {
	kind tokenKind
	// text is the upper-cased text of the token.
	text string
	num  float64
	srid geopb.SRID
	pos  int
}

func (t token) String() string {
	switch t.kind {
	case tokenEOF:
		return "end of input"
	case tokenWord:
		return fmt.Sprintf("word %q", t.text)
	case tokenNumber:
		return fmt.Sprintf("number %s", t.text)
	case tokenSRID:
		return fmt.Sprintf("SRID prefix %q", t.text)
	default:
		return fmt.Sprintf("%q", t.text)
	}
}

const sridPrefix = "SRID="

// lex splits the input into tokens. Whitespace is dropped, words are
// upper-cased, and the SRID=<digits>; prefix is only recognized as the first
// token.
func lex(line string) ([]token, error) {
	var toks []token
	pos := 0
	for {
		for pos < len(line) {
			r, size := utf8.DecodeRuneInString(line[pos:])
			if !unicode.IsSpace(r) {
				break
			}
			pos += size
		}
		if pos == len(line) {
			return toks, nil
		}

		if len(toks) == 0 {
			if n := matchSRID(line[pos:]); n > 0 {
				srid, err := strconv.ParseInt(line[pos+len(sridPrefix):pos+n-1], 10, 32)
				if err != nil {
					return nil, &LexError{expectedTokType: "SRID", pos: pos, str: line}
				}
				toks = append(toks, token{kind: tokenSRID, text: strings.ToUpper(line[pos : pos+n]), srid: geopb.SRID(srid), pos: pos})
				pos += n
				continue
			}
		}

		if n := matchWord(line[pos:]); n > 0 {
			toks = append(toks, token{kind: tokenWord, text: strings.ToUpper(line[pos : pos+n]), pos: pos})
			pos += n
			continue
		}

		if n := matchNumber(line[pos:]); n > 0 {
			f, err := strconv.ParseFloat(line[pos:pos+n], 64)
			if err != nil {
				return nil, &LexError{expectedTokType: "number", pos: pos, str: line}
			}
			toks = append(toks, token{kind: tokenNumber, text: line[pos : pos+n], num: f, pos: pos})
			pos += n
			continue
		}

		_, size := utf8.DecodeRuneInString(line[pos:])
		toks = append(toks, token{kind: tokenChar, text: line[pos : pos+size], pos: pos})
		pos += size
	}
}

func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// matchWord returns the length of the [A-Za-z]+ run at the start of s.
func matchWord(s string) int {
	n := 0
	for n < len(s) && isLetter(s[n]) {
		n++
	}
	return n
}

// matchSRID returns the length of a SRID=<digits>; prefix at the start of s,
// or 0. The prefix is matched case-insensitively.
func matchSRID(s string) int {
	if len(s) < len(sridPrefix) || !strings.EqualFold(s[:len(sridPrefix)], sridPrefix) {
		return 0
	}
	n := len(sridPrefix)
	start := n
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n == start || n == len(s) || s[n] != ';' {
		return 0
	}
	return n + 1
}

// matchNumber returns the length of the signed decimal or scientific number
// at the start of s, or 0.
func matchNumber(s string) int {
	n := 0
	if n < len(s) && (s[n] == '-' || s[n] == '+') {
		n++
	}
	intStart := n
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	digits := n - intStart
	if n < len(s) && s[n] == '.' {
		n++
		fracStart := n
		for n < len(s) && isDigit(s[n]) {
			n++
		}
		digits += n - fracStart
	}
	if digits == 0 {
		return 0
	}
	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		m := n + 1
		if m < len(s) && (s[m] == '-' || s[m] == '+') {
			m++
		}
		expStart := m
		for m < len(s) && isDigit(s[m]) {
			m++
		}
		if m > expStart {
			n = m
		}
	}
	return n
}

// parser is a cursor over the tokens of one input. All positional state of a
// parse lives here.
type parser struct {
	line string
	toks []token
	idx  int
}

func newParser(line string) (*parser, error) {
	toks, err := lex(line)
	if err != nil {
		return nil, err
	}
	return &parser{line: line, toks: toks}, nil
}

func (p *parser) peek() token {
	if p.idx >= len(p.toks) {
		return token{kind: tokenEOF, pos: len(p.line)}
	}
	return p.toks[p.idx]
}

func (p *parser) next() token {
	t := p.peek()
	if t.kind != tokenEOF {
		p.idx++
	}
	return t
}

func (p *parser) atEOF() bool {
	return p.idx >= len(p.toks)
}

// peekWord returns the next token if it is a word, without consuming it.
func (p *parser) peekWord() (string, bool) {
	t := p.peek()
	if t.kind != tokenWord {
		return "", false
	}
	return t.text, true
}

func (p *parser) peekChar(c string) bool {
	t := p.peek()
	return t.kind == tokenChar && t.text == c
}

func (p *parser) nextWord() (string, error) {
	t := p.next()
	if t.kind != tokenWord {
		return "", p.unexpected(t, "word")
	}
	return t.text, nil
}

func (p *parser) nextNumber() (float64, error) {
	t := p.next()
	if t.kind != tokenNumber {
		return 0, p.unexpected(t, "number")
	}
	return t.num, nil
}

func (p *parser) matchChar(c string) error {
	t := p.next()
	if t.kind != tokenChar || t.text != c {
		return p.unexpected(t, fmt.Sprintf("%q", c))
	}
	return nil
}

func (p *parser) matchOpener() error { return p.matchChar("(") }

func (p *parser) matchCloser() error { return p.matchChar(")") }

// nextCloserOrComma consumes a ")" or a ",", returning true for ")".
func (p *parser) nextCloserOrComma() (bool, error) {
	t := p.next()
	if t.kind == tokenChar {
		switch t.text {
		case ")":
			return true, nil
		case ",":
			return false, nil
		}
	}
	return false, p.unexpected(t, `")" or ","`)
}

func (p *parser) unexpected(t token, expected string) error {
	if t.kind == tokenEOF {
		return p.errorAt(t, fmt.Sprintf("syntax error: unexpected end of input, expected %s", expected), "")
	}
	return p.errorAt(t, fmt.Sprintf("syntax error: expected %s, got %s", expected, t), "")
}

func (p *parser) errorAt(t token, problem string, hint string) error {
	return &ParseError{problem: problem, pos: t.pos, str: p.line, hint: hint}
}
