package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bililink-cli/bililink/constant"
	"github.com/bililink-cli/bililink/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"0.3.0", "0.3.0", 0},
			{"v1.0.0", "0.9.9", 1},
			{"0.2.9", "0.3.0", -1},
			{"0.10.0", "0.9.0", 1},
			{"1.2.3-rc1", "1.2.3", 0},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}

		Convey("Rejects malformed versions", func() {
			_, err := Compare("latest", "0.1.0")
			So(err, ShouldNotBeNil)

			_, err = Compare("1.2", "1.2.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a release api", t, func() {
		var hits int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			if r.URL.Path != "/repos/"+constant.Repository+"/releases/latest" {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"tag_name":"v9.1.2"}`))
		}))
		defer server.Close()

		previous := GitHubAPI
		GitHubAPI = server.URL
		defer func() { GitHubAPI = previous }()

		So(versionCacher.Set(""), ShouldBeNil)

		Convey("It should strip the v prefix and cache the answer", func() {
			ver, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "9.1.2")

			ver, err = Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "9.1.2")
			So(hits, ShouldEqual, 1)
		})
	})

	Convey("Given a failing release api", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		previous := GitHubAPI
		GitHubAPI = server.URL
		defer func() { GitHubAPI = previous }()

		So(versionCacher.Set(""), ShouldBeNil)

		Convey("It should return an error", func() {
			_, err := Latest(context.Background())
			So(err, ShouldNotBeNil)
		})
	})
}
