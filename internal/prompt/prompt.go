package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrCancelled is returned when the operator answers with a cancel word
var ErrCancelled = errors.New("cancelled by operator")

// cancelWords abort the run when given as a whole answer
var cancelWords = []string{"back", "exit", "quit", "stop"}

// Prompter asks questions on out and reads one line per answer from in
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	label *color.Color
}

// New creates a Prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		label: color.New(color.FgCyan),
	}
}

// Ask prints "label: " and returns the answer without its line ending
func (p *Prompter) Ask(label string) (string, error) {
	if _, err := p.label.Fprint(p.out, label+": "); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
		}
	}
	answer := strings.TrimRight(line, "\r\n")

	if isCancelWord(answer) {
		return "", ErrCancelled
	}
	return answer, nil
}

func isCancelWord(answer string) bool {
	answer = strings.TrimSpace(answer)
	for _, w := range cancelWords {
		if strings.EqualFold(answer, w) {
			return true
		}
	}
	return false
}
