// Package lexer splits decoded GEDCOM text into structural lines.
//
// Each non-blank line has the grammar
//
//	level [@xref@] tag [value]
//
// A Lexer is single-pass: tokens are produced on demand by Next, the same
// way bufio.Scanner produces lines. To tokenize again, create a new Lexer
// over the same text.
package lexer

import (
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/joshuapare/gedkit/pkg/types"
)

// Token is one GEDCOM line.
type Token struct {
	Line  int    // 1-based input line number
	Level int    // 0..types.MaxLevel
	XRef  string // "@I1@" with delimiters, "" when absent
	Tag   string
	Value string // may itself be a pointer such as "@F1@"; "" when absent
}

// Lexer produces Tokens from text.
type Lexer struct {
	text string
	pos  int
	line int
	tok  Token
	err  error
}

// New returns a Lexer reading from text.
func New(text string) *Lexer {
	return &Lexer{text: text}
}

// Next advances to the next token. It returns false at the end of the
// input or after the first malformed line; Err distinguishes the two.
func (l *Lexer) Next() bool {
	if l.err != nil {
		return false
	}
	for l.pos < len(l.text) {
		raw := l.nextLine()
		l.line++
		if strings.TrimSpace(raw) == "" {
			continue
		}
		tok, err := parseLine(raw, l.line)
		if err != nil {
			l.err = err
			return false
		}
		l.tok = tok
		return true
	}
	return false
}

// Token returns the token produced by the last successful call to Next.
func (l *Lexer) Token() Token { return l.tok }

// Err returns the first StructureError encountered, or nil.
func (l *Lexer) Err() error { return l.err }

// Tokenize runs a Lexer to completion.
func Tokenize(text string) ([]Token, error) {
	l := New(text)
	var toks []Token
	for l.Next() {
		toks = append(toks, l.Token())
	}
	return toks, l.Err()
}

// nextLine returns the text up to the next CR, LF or CRLF and advances
// past the terminator.
func (l *Lexer) nextLine() string {
	rest := l.text[l.pos:]
	i := strings.IndexAny(rest, "\r\n")
	if i < 0 {
		l.pos = len(l.text)
		return rest
	}
	l.pos += i + 1
	if rest[i] == '\r' && i+1 < len(rest) && rest[i+1] == '\n' {
		l.pos++
	}
	return rest[:i]
}

func parseLine(raw string, line int) (Token, error) {
	tok := Token{Line: line}
	s := trimSpace(raw)

	// level
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n == 0 {
		return tok, types.StructureError(line, "missing level number in %q", raw)
	}
	if n < len(s) && !isSpace(s[n]) {
		return tok, types.StructureError(line, "level must be followed by whitespace in %q", raw)
	}
	level, err := parseLevel(s[:n])
	if err != nil {
		return tok, types.StructureError(line, "level %s: %v", s[:n], err)
	}
	tok.Level = level
	s = trimSpace(s[n:])

	// optional cross-reference id
	if strings.HasPrefix(s, "@") {
		field, rest := cutField(s)
		if !isXRef(field) {
			return tok, types.StructureError(line, "malformed cross-reference id %q", field)
		}
		tok.XRef = field
		s = trimSpace(rest)
	}

	// tag
	field, rest := cutField(s)
	if field == "" {
		return tok, types.StructureError(line, "missing tag")
	}
	if !isTag(field) {
		return tok, types.StructureError(line, "malformed tag %q", field)
	}
	tok.Tag = field

	// value: everything after the single delimiter
	if rest != "" {
		tok.Value = strings.TrimRight(rest[1:], " \t")
	}
	return tok, nil
}

func parseLevel(digits string) (int, error) {
	u, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, err
	}
	level, err := safecast.Conv[int](u)
	if err != nil {
		return 0, err
	}
	if level > types.MaxLevel {
		return 0, strconv.ErrRange
	}
	return level, nil
}

// cutField splits s at the first space or tab. rest keeps the delimiter.
func cutField(s string) (field, rest string) {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

func isXRef(s string) bool {
	if len(s) < 3 || len(s) > types.MaxXRefLen || s[0] != '@' || s[len(s)-1] != '@' {
		return false
	}
	// '#' opens an escape sequence, not an id
	return s[1] != '#' && !strings.Contains(s[1:len(s)-1], "@")
}

func isTag(s string) bool {
	if len(s) > types.MaxTagLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) && c != '_' && !('A' <= c && c <= 'Z') && !('a' <= c && c <= 'z') {
			return false
		}
	}
	return true
}

func trimSpace(s string) string { return strings.TrimLeft(s, " \t") }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' }
