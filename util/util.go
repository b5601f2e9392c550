// Package util holds small helpers shared by the commands.
package util

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bililink-cli/bililink/filesystem"
	"golang.org/x/term"
)

// Quantify formats n with the singular or plural noun, e.g. "1 room" or "3 rooms".
func Quantify(n int, singular, plural string) string {
	noun := plural
	if n == 1 {
		noun = singular
	}

	return fmt.Sprintf("%d %s", n, noun)
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// ReGroups maps the named groups of pattern to what they matched in s.
// The map is empty when s does not match.
func ReGroups(pattern *regexp.Regexp, s string) map[string]string {
	match := pattern.FindStringSubmatch(s)
	groups := make(map[string]string, len(match))

	for i, name := range pattern.SubexpNames() {
		if name == "" || i >= len(match) {
			continue
		}
		groups[name] = match[i]
	}

	return groups
}

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PrintErasable shows msg on the current line of a terminal stdout.
// The returned func blanks it out again.
func PrintErasable(msg string) (erase func()) {
	if !IsTerminal(os.Stdout) {
		return func() {}
	}

	fmt.Print("\r" + msg)
	return func() {
		fmt.Print("\r" + strings.Repeat(" ", len(msg)) + "\r")
	}
}

// Pause writes msg to out and waits for a single byte on in, or for ctx to be done.
// A closed input counts as a key press.
func Pause(ctx context.Context, in io.Reader, out io.Writer, msg string) error {
	if _, err := io.WriteString(out, msg); err != nil {
		return err
	}

	pressed := make(chan error, 1)
	go func() {
		_, err := in.Read(make([]byte, 1))
		pressed <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-pressed:
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
}

// Ignore calls f and drops its error.
func Ignore(f func() error) {
	_ = f()
}

// Delete removes path, recursing into directories.
func Delete(path string) error {
	info, err := filesystem.API().Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return filesystem.API().Remove(path)
	}

	return filesystem.API().RemoveAll(path)
}
