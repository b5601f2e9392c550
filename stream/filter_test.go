package stream

import (
	"testing"

	"github.com/bililink-cli/bililink/live"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFilter(t *testing.T) {
	Convey("Given candidates of mixed formats", t, func() {
		candidates := []*Candidate{
			{URL: "https://a.com/live/index.m3u8?x=1"},
			{URL: "https://b.com/live_1.flv?x=2"},
			{URL: "https://c.com/live/index.m3u8?x=3"},
		}

		Convey("It should keep only m3u8 urls in order", func() {
			So(URLs(Filter(candidates, live.FormatM3U8)), ShouldResemble, []string{
				"https://a.com/live/index.m3u8?x=1",
				"https://c.com/live/index.m3u8?x=3",
			})
		})

		Convey("It should keep only flv urls", func() {
			So(URLs(Filter(candidates, live.FormatFLV)), ShouldResemble, []string{
				"https://b.com/live_1.flv?x=2",
			})
		})

		Convey("Every kept url should contain the token", func() {
			for _, f := range live.Formats() {
				for _, c := range Filter(candidates, f) {
					So(c.URL, ShouldContainSubstring, f.String())
				}
			}
		})
	})

	Convey("Given no candidates", t, func() {
		Convey("The result should be empty", func() {
			So(Filter(nil, live.FormatFLV), ShouldBeEmpty)
			So(FilterURLs([]string{}, live.FormatM3U8), ShouldBeEmpty)
		})
	})

	Convey("Given plain urls", t, func() {
		urls := []string{"https://a.com/live", "https://a.com/live.m3u8"}

		Convey("It should filter by substring", func() {
			So(FilterURLs(urls, live.FormatM3U8), ShouldResemble, []string{"https://a.com/live.m3u8"})
			So(FilterURLs(urls, live.FormatFLV), ShouldBeEmpty)
		})
	})
}
