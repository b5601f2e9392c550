package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Line reads answers line by line and prints menus as numbered entries.
//
// A single goroutine owns the reader, so an Ask abandoned through its context
// leaves no competing read behind.
type Line struct {
	in    *bufio.Reader
	out   io.Writer
	once  sync.Once
	lines chan read
}

type read struct {
	line string
	err  error
}

// NewLine creates a Line prompter over in and out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

func (l *Line) Ask(ctx context.Context, q *Question) (string, error) {
	for {
		if err := l.print(q); err != nil {
			return "", err
		}

		line, err := l.next(ctx)
		if err != nil {
			return "", err
		}

		answer := strings.TrimSpace(line)
		if verr := q.validate(answer); verr != nil {
			if _, err := fmt.Fprintln(l.out, verr); err != nil {
				return "", err
			}
			continue
		}

		return answer, nil
	}
}

// next waits for the following line or for ctx, whichever comes first.
// A final line without a newline is still returned. ErrClosed follows it.
func (l *Line) next(ctx context.Context) (string, error) {
	l.once.Do(func() {
		l.lines = make(chan read)
		go l.pump()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-l.lines:
		if !ok {
			return "", ErrClosed
		}
		return r.line, r.err
	}
}

func (l *Line) pump() {
	defer close(l.lines)

	for {
		line, err := l.in.ReadString('\n')
		switch {
		case err == nil:
			l.lines <- read{line: line}
		case errors.Is(err, io.EOF):
			if line != "" {
				l.lines <- read{line: line}
			}
			return
		default:
			l.lines <- read{err: err}
			return
		}
	}
}

func (l *Line) print(q *Question) error {
	var b strings.Builder

	b.WriteString(q.Message)
	b.WriteByte('\n')

	for i, option := range q.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, option)
	}

	_, err := io.WriteString(l.out, b.String())
	return err
}
