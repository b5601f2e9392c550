package tree

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/bililink-cli/bililink/live"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func decode(s string) any {
	var v any
	lo.Must0(json.Unmarshal([]byte(s), &v))
	return v
}

func TestNode(t *testing.T) {
	Convey("Given a decoded document", t, func() {
		root := Root(decode(`{"a": {"b": [1, "two", null]}, "n": null, "s": "x"}`), "$")

		Convey("Field should follow nested objects", func() {
			items, err := root.Field("a").Field("b").Array()
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 3)
		})

		Convey("A missing field should report its path", func() {
			_, err := root.Field("a").Field("c").Field("d").Number()
			So(errors.Is(err, live.ErrResponseFormat), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "$.a.c is missing")
		})

		Convey("A null field counts as missing", func() {
			_, ok := root.Optional("n")
			So(ok, ShouldBeFalse)
		})

		Convey("Optional should find present fields", func() {
			n, ok := root.Optional("s")
			So(ok, ShouldBeTrue)
			So(lo.Must(n.Text()), ShouldEqual, "x")
		})

		Convey("Type mismatches should be reported", func() {
			_, err := root.Field("s").Array()
			So(err.Error(), ShouldContainSubstring, "$.s is not an array")

			_, err = root.Field("s").Field("x").Text()
			So(err.Error(), ShouldContainSubstring, "$.s is not an object")
		})

		Convey("Each should index elements in order", func() {
			var paths []string
			err := root.Field("a").Field("b").Each(func(n Node) error {
				paths = append(paths, n.Path())
				return nil
			})
			So(err, ShouldBeNil)
			So(paths, ShouldResemble, []string{"$.a.b[0]", "$.a.b[1]", "$.a.b[2]"})
		})

		Convey("Each should stop at the first error", func() {
			var visited int
			err := root.Field("a").Field("b").Each(func(n Node) error {
				visited++
				_, err := n.Number()
				return err
			})
			So(visited, ShouldEqual, 2)
			So(err.Error(), ShouldContainSubstring, "$.a.b[1] is not a number")
		})
	})
}
