package network

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bililink-cli/bililink/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	Convey("Given a test server echoing the user agent", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.UserAgent()))
		}))
		defer server.Close()

		viper.Set(key.NetworkUserAgent, "bililink-test")
		viper.Set(key.NetworkTimeout, 5)
		viper.Set(key.NetworkFingerprint, false)

		Convey("The client should send the configured user agent", func() {
			resp, err := New().R().Get(server.URL)
			So(err, ShouldBeNil)
			So(resp.String(), ShouldEqual, "bililink-test")
		})

		Convey("The fingerprint transport should serve plain http through its h1 transport", func() {
			viper.Set(key.NetworkFingerprint, true)
			defer viper.Set(key.NetworkFingerprint, false)

			resp, err := New().R().Get(server.URL)
			So(err, ShouldBeNil)
			So(resp.String(), ShouldEqual, "bililink-test")
		})
	})
}

func TestTimeout(t *testing.T) {
	Convey("Timeout", t, func() {
		Convey("Should convert seconds", func() {
			viper.Set(key.NetworkTimeout, 12)
			So(Timeout(), ShouldEqual, 12*time.Second)
		})

		Convey("Should be disabled for non-positive values", func() {
			viper.Set(key.NetworkTimeout, 0)
			So(Timeout(), ShouldEqual, 0)
		})

		Convey("Should make slow requests fail", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(1500 * time.Millisecond)
			}))
			defer server.Close()

			viper.Set(key.NetworkTimeout, 1)
			_, err := New().R().Get(server.URL)
			So(err, ShouldNotBeNil)
		})
	})
}
