package lisp

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// ErrInterrupted is returned when the user aborts a line with Ctrl-C.
var ErrInterrupted = errors.New("input interrupted")

// LineReader is where the tokenizer pulls its next line from.
// It returns io.EOF once there is nothing left.
type LineReader interface {
	ReadLine() (string, error)
}

// Prompter is implemented by line readers that draw their own prompt.
type Prompter interface {
	SetPrompt(prompt string)
}

type streamReader struct {
	r *bufio.Reader
}

// NewLineReader reads lines from any io.Reader.
func NewLineReader(r io.Reader) LineReader {
	return &streamReader{r: bufio.NewReader(r)}
}

func (s *streamReader) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	// a last line without a newline still counts
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return line, err
}

// LinerReader reads lines from an interactive terminal. The first line
// of each read gets the main prompt, any further lines get the
// continuation prompt.
type LinerReader struct {
	state        *liner.State
	prompt       string
	continuation string
	next         string
}

func NewLinerReader(state *liner.State, continuation string) *LinerReader {
	return &LinerReader{state: state, continuation: continuation}
}

func (l *LinerReader) SetPrompt(prompt string) {
	l.prompt = prompt
	l.next = prompt
}

func (l *LinerReader) ReadLine() (string, error) {
	line, err := l.state.Prompt(l.next)
	l.next = l.continuation
	if errors.Is(err, liner.ErrPromptAborted) {
		l.next = l.prompt
		return "", ErrInterrupted
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		l.state.AppendHistory(line)
	}
	return line, nil
}
