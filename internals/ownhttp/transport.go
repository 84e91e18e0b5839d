package ownhttp

import (
	"fmt"
	"net/http"
	"runtime"

	"golang.org/x/time/rate"
)

// UserAgent identifies us against the Microsoft & Minecraft APIs
var UserAgent = fmt.Sprintf("thunderclient (%s; %s)", runtime.GOOS, runtime.GOARCH)

// New returns a http.Client that always sends our User-Agent
func New() *http.Client {
	return &http.Client{Transport: NewAddHeaderTransport(nil)}
}

type AddHeaderTransport struct {
	T http.RoundTripper
}

func (t *AddHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", UserAgent)
	}
	return t.T.RoundTrip(req)
}

func NewAddHeaderTransport(T http.RoundTripper) *AddHeaderTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &AddHeaderTransport{T}
}

// ThrottleTransport paces outgoing requests. The identity and Minecraft
// services rate-limit aggressively, so we wait for a token before every call.
type ThrottleTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

func (tt *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := tt.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return tt.next.RoundTrip(req)
}

func NewThrottleTransport(next http.RoundTripper, limiter *rate.Limiter) *ThrottleTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &ThrottleTransport{next: next, limiter: limiter}
}
