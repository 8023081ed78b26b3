// Package prompt asks the user yes/no questions on the console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Prompter asks a yes/no question and reports the answer.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// LinePrompter reads answers line by line. It is used when stdin is not a
// terminal (pipes, CI) and in tests.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a LinePrompter reading from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Confirm accepts y, yes, n and no in any case and asks again on anything else.
// Running out of input before a valid answer is an error.
func (p *LinePrompter) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s [Y/N]: ", question)
		line, err := p.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if err != nil {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}
		fmt.Fprintln(p.out, "Please answer yes or no.")
	}
}

// FormPrompter shows an interactive confirm field.
type FormPrompter struct{}

// Confirm runs a huh confirm form. Aborting the form (Ctrl-C, Esc) counts as no.
func (FormPrompter) Confirm(question string) (bool, error) {
	var answer bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return answer, nil
}

// AssumeYes answers yes without asking.
type AssumeYes struct{}

func (AssumeYes) Confirm(string) (bool, error) { return true, nil }

// Default picks AssumeYes when yes is set, the interactive form on a
// terminal, and a line reader on stdin otherwise.
func Default(yes bool) Prompter {
	if yes {
		return AssumeYes{}
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return FormPrompter{}
	}
	return NewLinePrompter(os.Stdin, os.Stdout)
}
