package httpd

import (
	"bytes"
	"fmt"
	"strconv"
)

// Response is an outbound HTTP/1.1 response. Handlers build one per
// dispatched request; it is serialized once and discarded.
//
// Header keys are exact strings with no case normalization, so
// "content-type" and "Content-Type" are distinct entries.
// Content-Length is computed once from the body given at
// construction and is never recomputed.
type Response struct {
	StatusCode int
	StatusText string
	Header     map[string]string
	Body       []byte
}

// statusText maps the supported status codes to their reason
// phrases. Codes outside the table fall back to "OK"; callers rely
// on that literal fallback, so do not widen the table casually.
func statusText(code int) string {
	switch code {
	case 200:
		return "OK"
	case 201:
		return "Created"
	case 204:
		return "No Content"
	case 400:
		return "Bad Request"
	case 401:
		return "Unauthorized"
	case 403:
		return "Forbidden"
	case 404:
		return "Not Found"
	case 500:
		return "Internal Server Error"
	default:
		return "OK"
	}
}

// NewResponse builds a Response with the given status code and body.
//
// Default headers:
//   - Content-Type: text/plain; charset=utf-8
//   - Connection: close
//   - Content-Length: len(body)
func NewResponse(status int, body []byte) *Response {
	return &Response{
		StatusCode: status,
		StatusText: statusText(status),
		Header: map[string]string{
			"Content-Type":   "text/plain; charset=utf-8",
			"Connection":     "close",
			"Content-Length": strconv.Itoa(len(body)),
		},
		Body: body,
	}
}

// Text builds a 200 OK plain-text response.
func Text(s string) *Response {
	return NewResponse(200, []byte(s))
}

// HTML builds a 200 OK response with Content-Type
// "text/html; charset=utf-8".
func HTML(body string) *Response {
	return NewResponse(200, []byte(body)).WithHeader("Content-Type", "text/html; charset=utf-8")
}

// NotFound builds the canonical 404 response the router returns when
// no route matches.
func NotFound() *Response {
	return NewResponse(404, []byte("Not Found"))
}

// WithHeader inserts or overwrites a header by exact key match and
// returns the same response for chaining:
//
//	httpd.Text("OK").
//	    WithHeader("X-Custom", "value").
//	    WithHeader("Cache-Control", "no-cache")
func (r *Response) WithHeader(key, value string) *Response {
	r.Header[key] = value
	return r
}

// Bytes serializes the response to wire format: status line, header
// lines in unspecified order, a blank line, then the raw body.
func (r *Response) Bytes() []byte {
	var b bytes.Buffer
	b.Grow(len(r.Body) + 128)
	r.writeHead(&b)
	b.Write(r.Body)
	return b.Bytes()
}

// HeadBytes serializes status line and headers only, for responses
// to HEAD requests. All headers are emitted unchanged, including the
// Content-Length computed from the full body that is never sent.
func (r *Response) HeadBytes() []byte {
	var b bytes.Buffer
	r.writeHead(&b)
	return b.Bytes()
}

func (r *Response) writeHead(b *bytes.Buffer) {
	fmt.Fprintf(b, "HTTP/1.1 %d %s\r\n", r.StatusCode, r.StatusText)
	for k, v := range r.Header {
		fmt.Fprintf(b, "%s: %s\r\n", k, v)
	}
	b.WriteString("\r\n")
}
