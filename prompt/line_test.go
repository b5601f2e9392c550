package prompt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func onlyDigits(answer string) error {
	if answer == "" || strings.Trim(answer, "0123456789") != "" {
		return fmt.Errorf("%q is not a number", answer)
	}
	return nil
}

func TestLine(t *testing.T) {
	Convey("Given a free text question", t, func() {
		var out bytes.Buffer
		q := &Question{Message: "Room:", Validate: onlyDigits}

		Convey("When the first answer is valid", func() {
			answer, err := NewLine(strings.NewReader(" 732 \n"), &out).Ask(context.Background(), q)

			Convey("It should return the trimmed answer", func() {
				So(err, ShouldBeNil)
				So(answer, ShouldEqual, "732")
				So(out.String(), ShouldEqual, "Room:\n")
			})
		})

		Convey("When invalid answers come first", func() {
			answer, err := NewLine(strings.NewReader("abc\n\n21452505\n"), &out).Ask(context.Background(), q)

			Convey("It should repeat the question until one passes", func() {
				So(err, ShouldBeNil)
				So(answer, ShouldEqual, "21452505")
				So(strings.Count(out.String(), "Room:\n"), ShouldEqual, 3)
				So(out.String(), ShouldContainSubstring, `"abc" is not a number`)
			})
		})

		Convey("When the last line has no newline", func() {
			answer, err := NewLine(strings.NewReader("6"), &out).Ask(context.Background(), q)

			Convey("It should still be accepted", func() {
				So(err, ShouldBeNil)
				So(answer, ShouldEqual, "6")
			})
		})

		Convey("When input ends without a valid answer", func() {
			_, err := NewLine(strings.NewReader("abc\n"), &out).Ask(context.Background(), q)

			Convey("It should report closed input", func() {
				So(errors.Is(err, ErrClosed), ShouldBeTrue)
			})
		})
	})

	Convey("Given a menu", t, func() {
		var out bytes.Buffer
		q := &Question{
			Message: "Select format:",
			Options: []string{"m3u8", "flv"},
			Validate: func(answer string) error {
				if answer != "1" && answer != "2" {
					return errors.New("enter 1 or 2")
				}
				return nil
			},
		}

		answer, err := NewLine(strings.NewReader("3\n2\n"), &out).Ask(context.Background(), q)

		Convey("It should print numbered options and return the chosen number", func() {
			So(err, ShouldBeNil)
			So(answer, ShouldEqual, "2")
			So(out.String(), ShouldEqual, "Select format:\n1. m3u8\n2. flv\nenter 1 or 2\nSelect format:\n1. m3u8\n2. flv\n")
		})
	})

	Convey("Given a question without a validator", t, func() {
		answer, err := NewLine(strings.NewReader("anything\n"), &bytes.Buffer{}).Ask(context.Background(), &Question{Message: "?"})

		Convey("Any answer should pass", func() {
			So(err, ShouldBeNil)
			So(answer, ShouldEqual, "anything")
		})
	})
}

func TestLineCancel(t *testing.T) {
	Convey("Given input that never arrives", t, func() {
		in, w := io.Pipe()
		defer w.Close()

		var out bytes.Buffer
		line := NewLine(in, &out)

		Convey("Cancelling the context should end the wait", func() {
			ctx, cancel := context.WithCancel(context.Background())
			time.AfterFunc(20*time.Millisecond, cancel)

			_, err := line.Ask(ctx, &Question{Message: "Room:"})

			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(out.String(), ShouldEqual, "Room:\n")
		})

		Convey("A later question should still get the next line", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := line.Ask(ctx, &Question{Message: "Room:"})
			So(errors.Is(err, context.Canceled), ShouldBeTrue)

			go func() { _, _ = io.WriteString(w, "6\n") }()

			answer, err := line.Ask(context.Background(), &Question{Message: "Room:"})
			So(err, ShouldBeNil)
			So(answer, ShouldEqual, "6")
		})
	})
}
