package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bililink-cli/bililink/live"
	"github.com/bililink-cli/bililink/stream"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWrite(t *testing.T) {
	Convey("Given a lookup with one m3u8 stream", t, func() {
		candidates := []*stream.Candidate{
			{URL: "https://a.com/live.m3u8?x=1", Protocol: "http_hls", Format: "ts", Codec: "avc", Qn: 10000},
		}
		o := New(21452505, live.QualityHigh, live.FormatM3U8, candidates)

		Convey("Plain mode should print the url on its own line", func() {
			var out bytes.Buffer
			So(Write(&out, o, false), ShouldBeNil)
			So(out.String(), ShouldEqual, "https://a.com/live.m3u8?x=1\n")
		})

		Convey("JSON mode should encode tokens and metadata", func() {
			var out bytes.Buffer
			So(Write(&out, o, true), ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(out.Bytes(), &decoded), ShouldBeNil)
			So(decoded["room_id"], ShouldEqual, float64(21452505))
			So(decoded["quality"], ShouldEqual, "high")
			So(decoded["format"], ShouldEqual, "m3u8")
			So(out.String(), ShouldContainSubstring, `"url":"https://a.com/live.m3u8?x=1"`)
			So(out.String(), ShouldContainSubstring, `"codec":"avc"`)
		})
	})

	Convey("Given no matching streams", t, func() {
		o := New(6, live.QualityLow, live.FormatFLV, nil)

		Convey("Plain mode should print nothing", func() {
			var out bytes.Buffer
			So(Write(&out, o, false), ShouldBeNil)
			So(out.Len(), ShouldEqual, 0)
		})

		Convey("JSON mode should print an empty array", func() {
			var out bytes.Buffer
			So(Write(&out, o, true), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, `"streams":[]`)
		})
	})

	Convey("Given a quoted url", t, func() {
		var out bytes.Buffer
		So(Write(&out, New(1, live.QualityLow, live.FormatFLV, []*stream.Candidate{{URL: `"https://b.com/x.flv"`}}), false), ShouldBeNil)
		So(out.String(), ShouldEqual, "https://b.com/x.flv\n")
	})
}

func TestSchema(t *testing.T) {
	Convey("The schema should describe the document", t, func() {
		data, err := json.Marshal(Schema())
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "room_id")
		So(string(data), ShouldContainSubstring, "streams")
		So(string(data), ShouldContainSubstring, `"m3u8"`)
	})
}
