// Package testutil holds small helpers shared by tests.
package testutil

import (
	"io"
	"net/http"
	"strings"
)

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// StaticClient returns an *http.Client that answers every request with the
// given status and body.
func StaticClient(status int, body string) *http.Client {
	return &http.Client{Transport: RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return Response(status, body), nil
	})}
}

// Response builds an *http.Response with a string body.
func Response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}
