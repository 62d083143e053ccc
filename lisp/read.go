package lisp

import (
	"errors"
	"io"
	"regexp"
	"strings"

	lisptype "github.com/ian-bird/ish/lisp_type"
)

// the same set unicode.IsSpace accepts; \s alone is ASCII only
const whitespace = `\s\v\x{85}\p{Z}`

// one capture per call: a paren, a string literal, a comment or a bare
// run of non-delimiters, followed by whatever is left of the line
var tokenPattern = regexp.MustCompile(`^[` + whitespace + `]*([()]|"(?:\\.|[^\\"])*"|;.*|[^` + whitespace + `('"` + "`" + `,;)]*)(.*)`)

// Token is one lexical unit of source text.
type Token struct {
	text string
	eof  bool
}

// EOFToken marks the end of the source. No input text produces it.
var EOFToken = Token{eof: true}

var (
	openParen  = Token{text: "("}
	closeParen = Token{text: ")"}
)

func (t Token) String() string {
	if t.eof {
		return "#<eof-object>"
	}
	return t.text
}

// Tokenizer hands out tokens one at a time, buffering a single line.
type Tokenizer struct {
	src  LineReader
	line string
}

func NewTokenizer(src LineReader) *Tokenizer {
	return &Tokenizer{src: src}
}

func NewStringTokenizer(s string) *Tokenizer {
	return NewTokenizer(NewLineReader(strings.NewReader(s)))
}

// Next returns the next token, pulling lines from the source as needed.
// Comments and blank lines are skipped.
func (t *Tokenizer) Next() (Token, error) {
	for {
		if strings.TrimSpace(t.line) == "" {
			line, err := t.src.ReadLine()
			if errors.Is(err, io.EOF) {
				t.line = ""
				return EOFToken, nil
			}
			if err != nil {
				t.line = ""
				return EOFToken, err
			}
			t.line = line
			continue
		}

		match := tokenPattern.FindStringSubmatch(t.line)
		text, rest := match[1], match[2]
		t.line = rest
		switch {
		case text == "":
			// the line starts with something no capture accepts
			if rest == "" {
				continue
			}
			if strings.HasPrefix(rest, `"`) {
				t.line = ""
				return EOFToken, lisptype.Errorf(lisptype.SyntaxError, "unterminated string literal")
			}
			t.line = rest[1:]
			return Token{text: rest[:1]}, nil
		case strings.HasPrefix(text, ";"):
			continue
		default:
			return Token{text: text}, nil
		}
	}
}

// Reset throws away whatever is left of the buffered line.
func (t *Tokenizer) Reset() {
	t.line = ""
}

// Pending reports whether the buffered line still holds tokens.
func (t *Tokenizer) Pending() bool {
	return strings.TrimSpace(t.line) != ""
}

// reads a list in and creates a new value for it.
// read list will call readAhead repeatedly as it traverses
// its contents, until it hits a closing paren.
func readList(t *Tokenizer) (lisptype.Value, error) {
	items := make([]lisptype.Value, 0)
	for {
		token, err := t.Next()
		if err != nil {
			return lisptype.Nil, err
		}
		if token == closeParen {
			return lisptype.NewList(items...), nil
		}
		item, err := readAhead(t, token)
		if err != nil {
			return lisptype.Nil, err
		}
		items = append(items, item)
	}
}

// turns a token that was already pulled into a value,
// reading further tokens if it opens a list
func readAhead(t *Tokenizer, token Token) (lisptype.Value, error) {
	switch token {
	case openParen:
		return readList(t)
	case closeParen:
		return lisptype.Nil, lisptype.Errorf(lisptype.SyntaxError, "unexpected close-paren")
	case EOFToken:
		return lisptype.Nil, lisptype.Errorf(lisptype.SyntaxError, "unexpected end of input inside list")
	default:
		return lisptype.Classify(token.text), nil
	}
}

// Read consumes one expression from t. Once the source is used up it
// returns lisptype.EOF rather than an error.
func Read(t *Tokenizer) (lisptype.Value, error) {
	token, err := t.Next()
	if err != nil {
		return lisptype.Nil, err
	}
	if token == EOFToken {
		return lisptype.EOF, nil
	}
	return readAhead(t, token)
}

// ReadString reads the first expression in s.
func ReadString(s string) (lisptype.Value, error) {
	return Read(NewStringTokenizer(s))
}
