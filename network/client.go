// Package network provides the HTTP client shared by outbound requests.
package network

import (
	"net/http"
	"time"

	"github.com/touchmpv/touchmpv/constant"
)

// UserAgent identifies touchmpv to remote APIs.
var UserAgent = constant.App + "/" + constant.Version

// Client is used for every outbound request. The timeout is short because
// nothing touchmpv fetches is worth holding up the terminal for.
var Client = &http.Client{
	Timeout:   5 * time.Second,
	Transport: &userAgentTransport{base: newTransport()},
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 5 * time.Second
	return t
}

type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}
	return t.base.RoundTrip(req)
}
