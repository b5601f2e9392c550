// Package network builds the HTTP clients used to talk to remote APIs.
package network

import (
	"net/http"
	"time"

	"github.com/bililink-cli/bililink/key"
	"github.com/bililink-cli/bililink/log"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/viper"
)

// transport is shared by every client so connections are pooled across calls.
var transport = newTransport()

// New returns a resty client using the configured timeout, user agent and transport.
func New() *resty.Client {
	c := resty.NewWithClient(&http.Client{Transport: roundTripper()})
	c.SetTimeout(Timeout())
	c.SetHeader("User-Agent", viper.GetString(key.NetworkUserAgent))
	c.SetLogger(log.Resty())
	return c
}

// Timeout returns the configured request timeout. Non-positive values disable it.
func Timeout() time.Duration {
	seconds := viper.GetInt(key.NetworkTimeout)
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func roundTripper() http.RoundTripper {
	if viper.GetBool(key.NetworkFingerprint) {
		return fingerprint
	}
	return transport
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
