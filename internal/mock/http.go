package mock

import (
	"bytes"
	"io"
	"net/http"
)

// HTTPDoer mocks http.Client.
type HTTPDoer struct {
	Statuses []int
	Bodies   [][]byte
	Headers  []http.Header

	DoFunc   func(*http.Request) (*http.Response, error)
	Requests []*http.Request

	i int
}

// Do fakes executing http request. Scripted responses cycle in order.
func (d *HTTPDoer) Do(r *http.Request) (*http.Response, error) {
	defer func() {
		d.i++
	}()
	d.Requests = append(d.Requests, r)

	if d.DoFunc != nil {
		return d.DoFunc(r)
	}

	status := http.StatusOK
	if len(d.Statuses) > 0 {
		status = d.Statuses[d.i%len(d.Statuses)]
	}
	var data []byte
	if len(d.Bodies) > 0 {
		data = d.Bodies[d.i%len(d.Bodies)]
	}
	body := io.NopCloser(bytes.NewBuffer(data))

	header := http.Header{}
	if len(d.Headers) > 0 {
		header = d.Headers[d.i%len(d.Headers)]
	}

	return &http.Response{
		StatusCode: status,
		Body:       body,
		Header:     header,
		Request:    r,
	}, nil
}

// Calls returns number of executed requests.
func (d *HTTPDoer) Calls() int {
	return d.i
}
