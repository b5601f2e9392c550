package live

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuality(t *testing.T) {
	Convey("ParseQuality", t, func() {
		Convey("Accepts menu numbers", func() {
			q, err := ParseQuality("1")
			So(err, ShouldBeNil)
			So(q, ShouldEqual, QualityLow)

			q, err = ParseQuality("2")
			So(err, ShouldBeNil)
			So(q, ShouldEqual, QualityHigh)
		})

		Convey("Accepts flag tokens", func() {
			q, err := ParseQuality("high")
			So(err, ShouldBeNil)
			So(q, ShouldEqual, QualityHigh)
		})

		Convey("Rejects anything else", func() {
			for _, in := range []string{"", "0", "3", "medium", "10000"} {
				_, err := ParseQuality(in)
				So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
			}
		})

		Convey("Is the inverse of String", func() {
			for _, q := range Qualities() {
				parsed, err := ParseQuality(q.String())
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, q)
			}
		})

		Convey("Maps to the qn parameter", func() {
			So(QualityLow.Qn(), ShouldEqual, 0)
			So(QualityHigh.Qn(), ShouldEqual, 10000)
		})
	})
}

func TestFormat(t *testing.T) {
	Convey("ParseFormat", t, func() {
		Convey("Accepts menu numbers", func() {
			f, err := ParseFormat("1")
			So(err, ShouldBeNil)
			So(f, ShouldEqual, FormatM3U8)

			f, err = ParseFormat("2")
			So(err, ShouldBeNil)
			So(f, ShouldEqual, FormatFLV)
		})

		Convey("Rejects anything else", func() {
			for _, in := range []string{"", "3", "mp4", "hls"} {
				_, err := ParseFormat(in)
				So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
			}
		})

		Convey("Tokens", func() {
			So(FormatM3U8.String(), ShouldEqual, "m3u8")
			So(FormatFLV.String(), ShouldEqual, "flv")
		})

		Convey("Is the inverse of String", func() {
			for _, f := range Formats() {
				parsed, err := ParseFormat(f.String())
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, f)
			}
		})
	})
}

func TestAPIError(t *testing.T) {
	Convey("APIError matches ErrAPI", t, func() {
		err := error(&APIError{Code: 19002000, Message: "房间不存在"})
		So(errors.Is(err, ErrAPI), ShouldBeTrue)
		So(errors.Is(err, ErrNotLive), ShouldBeFalse)
		So(err.Error(), ShouldContainSubstring, "19002000")
	})
}
