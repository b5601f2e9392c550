// Package prompt asks the user for values, either through interactive survey widgets on a terminal
// or through plain numbered lines when stdin is a pipe.
package prompt

import (
	"context"
	"errors"
	"os"

	"github.com/bililink-cli/bililink/util"
)

var (
	// ErrInterrupted is returned when the user aborts a prompt with Ctrl-C.
	ErrInterrupted = errors.New("interrupted")

	// ErrClosed is returned when input ends before an acceptable answer was read.
	ErrClosed = errors.New("input closed")
)

// Question is a single value to ask for.
type Question struct {
	// Message is printed before the answer is read.
	Message string

	// Options turns the question into a menu. The answer is then the 1-based position of the chosen option.
	Options []string

	// Validate rejects an answer. Its error is shown and the question is asked again.
	Validate func(answer string) error

	// Suggest completes a partial free-text answer.
	Suggest func(partial string) []string
}

// Prompter asks questions until an acceptable answer is given.
// Only I/O failures and a done ctx end the loop.
type Prompter interface {
	Ask(ctx context.Context, q *Question) (string, error)
}

// Default returns the survey prompter when stdin and stdout are terminals and the line prompter otherwise.
func Default() Prompter {
	if util.IsTerminal(os.Stdin) && util.IsTerminal(os.Stdout) {
		return NewSurvey()
	}

	return NewLine(os.Stdin, os.Stdout)
}

func (q *Question) validate(answer string) error {
	if q.Validate == nil {
		return nil
	}

	return q.Validate(answer)
}
