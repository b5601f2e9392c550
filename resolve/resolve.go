// Package resolve turns command-line values and prompt answers into a complete lookup request.
//
// Each value is taken from its flag when the flag is present and parses. Otherwise, including when
// the flag is present but malformed, the user is asked for it. The malformed value is only logged.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bililink-cli/bililink/history"
	"github.com/bililink-cli/bililink/live"
	"github.com/bililink-cli/bililink/locale"
	"github.com/bililink-cli/bililink/log"
	"github.com/bililink-cli/bililink/prompt"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Options holds the raw flag values. Absent flags are mo.None.
type Options struct {
	RoomID  mo.Option[string]
	Quality mo.Option[string]
	Format  mo.Option[string]
}

// Interactive reports whether no value was given on the command line.
func (o Options) Interactive() bool {
	return o.RoomID.IsAbsent() && o.Quality.IsAbsent() && o.Format.IsAbsent()
}

// Request is a fully resolved lookup.
type Request struct {
	RoomID  live.RoomID
	Quality live.Quality
	Format  live.Format
}

// Resolve fills the request in order room id, quality, format, asking p for every value the
// options do not provide. A done ctx interrupts the pending question.
func Resolve(ctx context.Context, p prompt.Prompter, opts Options) (*Request, error) {
	room, err := value(ctx, p, "room-id", opts.RoomID, live.ParseRoomID, nil, roomQuestion())
	if err != nil {
		return nil, err
	}

	quality, err := value(ctx, p, "quality", opts.Quality, live.ParseQuality, tokens(live.Qualities()), qualityQuestion())
	if err != nil {
		return nil, err
	}

	format, err := value(ctx, p, "format", opts.Format, live.ParseFormat, tokens(live.Formats()), formatQuestion())
	if err != nil {
		return nil, err
	}

	return &Request{
		RoomID:  room,
		Quality: quality,
		Format:  format,
	}, nil
}

func value[T any](
	ctx context.Context,
	p prompt.Prompter,
	flag string,
	raw mo.Option[string],
	parse func(string) (T, error),
	known []string,
	q *prompt.Question,
) (T, error) {
	if s, ok := raw.Get(); ok {
		v, err := parse(s)
		if err == nil {
			return v, nil
		}

		entry := log.WithField("flag", flag).WithField("value", s)
		if hint, ok := closest(s, known).Get(); ok {
			entry = entry.WithField("did_you_mean", hint)
		}
		entry.Warn("ignoring malformed flag value, asking instead")
	}

	var zero T

	answer, err := p.Ask(ctx, q)
	if err != nil {
		return zero, err
	}

	return parse(answer)
}

func roomQuestion() *prompt.Question {
	return &prompt.Question{
		Message: locale.T(locale.RoomPrompt),
		Validate: func(answer string) error {
			if _, err := live.ParseRoomID(answer); err != nil {
				return errors.New(locale.T(locale.BadRoom))
			}
			return nil
		},
		Suggest: history.SuggestMany,
	}
}

func qualityQuestion() *prompt.Question {
	return menu(locale.T(locale.QualityPrompt), lo.Map(live.Qualities(), func(q live.Quality, _ int) string {
		return locale.Quality(q)
	}), func(answer string) error {
		_, err := live.ParseQuality(answer)
		return err
	})
}

func formatQuestion() *prompt.Question {
	return menu(locale.T(locale.FormatPrompt), tokens(live.Formats()), func(answer string) error {
		_, err := live.ParseFormat(answer)
		return err
	})
}

func menu(message string, options []string, parse func(string) error) *prompt.Question {
	numbers := lo.Times(len(options), func(i int) string {
		return fmt.Sprint(i + 1)
	})

	return &prompt.Question{
		Message: message,
		Options: options,
		Validate: func(answer string) error {
			if parse(answer) != nil {
				return errors.New(locale.T(locale.BadChoice, strings.Join(numbers, ", ")))
			}
			return nil
		},
	}
}

func tokens[T fmt.Stringer](values []T) []string {
	return lo.Map(values, func(v T, _ int) string {
		return v.String()
	})
}

// closest finds the known token nearest to s, if any.
func closest(s string, known []string) mo.Option[string] {
	if len(known) == 0 {
		return mo.None[string]()
	}

	s = strings.ToLower(strings.TrimSpace(s))
	return mo.Some(lo.MinBy(known, func(a, b string) bool {
		return levenshtein.Distance(s, a) < levenshtein.Distance(s, b)
	}))
}
