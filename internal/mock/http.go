package mock

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// RoundTripper fakes http.RoundTripper.
type RoundTripper struct {
	Statuses []int
	Bodies   [][]byte
	Headers  []http.Header

	RoundTripFunc func(*http.Request) (*http.Response, error)

	m sync.Mutex
	i int
}

// RoundTrip fakes executing http request.
func (rt *RoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	rt.m.Lock()
	i := rt.i
	rt.i++
	rt.m.Unlock()

	if rt.RoundTripFunc != nil {
		return rt.RoundTripFunc(r)
	}

	status := http.StatusOK
	if len(rt.Statuses) > 0 {
		status = rt.Statuses[i%len(rt.Statuses)]
	}
	var data []byte
	if len(rt.Bodies) > 0 {
		data = rt.Bodies[i%len(rt.Bodies)]
	}
	header := http.Header{}
	if len(rt.Headers) > 0 {
		header = rt.Headers[i%len(rt.Headers)]
	}

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(data)),
		Header:     header,
		Request:    r,
	}, nil
}

// Calls returns RoundTrip call count.
func (rt *RoundTripper) Calls() int {
	rt.m.Lock()
	defer rt.m.Unlock()

	return rt.i
}
