package prompt

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Survey asks through interactive terminal widgets: a select list for menus and a text input otherwise.
type Survey struct {
	opts []survey.AskOpt
}

// NewSurvey creates a Survey prompter. opts are passed to every survey.AskOne call.
func NewSurvey(opts ...survey.AskOpt) *Survey {
	return &Survey{opts: opts}
}

// Ask runs the widget for q. The terminal is in raw mode meanwhile, so Ctrl-C
// reaches survey as a key press rather than as a signal.
func (s *Survey) Ask(ctx context.Context, q *Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	message := strings.TrimRight(strings.TrimSpace(q.Message), ":：")

	if len(q.Options) > 0 {
		var index int
		err := survey.AskOne(&survey.Select{
			Message: message,
			Options: q.Options,
		}, &index, s.opts...)
		if err != nil {
			return "", interrupted(err)
		}

		return strconv.Itoa(index + 1), nil
	}

	input := &survey.Input{
		Message: message,
		Suggest: q.Suggest,
	}

	opts := append([]survey.AskOpt{
		survey.WithValidator(func(ans any) error {
			answer, _ := ans.(string)
			return q.validate(strings.TrimSpace(answer))
		}),
	}, s.opts...)

	var answer string
	if err := survey.AskOne(input, &answer, opts...); err != nil {
		return "", interrupted(err)
	}

	return strings.TrimSpace(answer), nil
}

func interrupted(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}

	return err
}
