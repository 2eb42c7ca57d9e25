package httpd

import (
	"lumen.dev/go/lumen/httpd/internal/http1"
)

// Request is one parsed inbound request. It is built once per
// accepted connection from a single buffered read and handed to
// exactly one handler; treat it as immutable.
//
// Headers are parsed on the wire but intentionally not retained
// here. Body is whatever followed the header block in the buffered
// read, so a request larger than the read buffer arrives truncated.
type Request struct {
	Method Method
	Path   string
	Body   []byte
}

// ParseRequest parses raw decoded request text into a Request.
// ok=false is the sole failure signal: an empty request line, a
// missing target token, or a method outside the supported set all
// report it identically.
func ParseRequest(raw string) (*Request, bool) {
	pr, ok := http1.ParseRequest(raw)
	if !ok {
		return nil, false
	}
	m, ok := ParseMethod(pr.Method)
	if !ok {
		return nil, false
	}
	return &Request{Method: m, Path: pr.Target, Body: pr.Body}, true
}
