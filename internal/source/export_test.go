package source

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"resty.dev/v3"
)

// FilenameFromURL exports filenameFromURL for testing.
//
//nolint:gochecknoglobals // Test-only exports
var FilenameFromURL = filenameFromURL

// NewReaderWithClient creates a Reader that downloads through client.
func NewReaderWithClient(parallel int, client *resty.Client) *Reader {
	r := NewReader(parallel)
	r.client = client
	return r
}

// RoundTripFunc adapts a function to http.RoundTripper for URL test mocking.
type RoundTripFunc func(*http.Request) *http.Response

// RoundTrip implements http.RoundTripper.
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

// NewMockRestyClient creates a resty client with a custom round-trip handler.
func NewMockRestyClient(handler RoundTripFunc) *resty.Client {
	client := resty.New()
	client.SetTransport(handler)

	return client
}

// NewHTTPResponse creates a mock HTTP response for tests.
func NewHTTPResponse(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Header:        make(http.Header),
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
