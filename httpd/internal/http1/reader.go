// Package http1 holds the wire-level request parsing for httpd.
//
// The model is deliberately simple: one buffered read is decoded to
// text and split into lines, and the message is reassembled from
// those lines. Anything the buffer truncated stays truncated.
package http1

import (
	"strings"
	"unicode/utf8"
)

// ParsedRequest is the wire-level view of one buffered read:
// request-line tokens plus the transient header map. The header map
// never leaves this package's callers; the public request type does
// not expose headers.
type ParsedRequest struct {
	Method string
	Target string
	Header map[string]string
	Body   []byte
}

// DecodeLossy decodes raw socket bytes as UTF-8, replacing each
// invalid maximal subpart with one U+FFFD: a truncated multibyte
// prefix becomes a single replacement, every stray byte its own. It
// never fails; replacement characters propagate into the parsed
// target and body instead.
func DecodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b) + 2)
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r != utf8.RuneError || size > 1 {
			sb.Write(b[i : i+size])
			i += size
			continue
		}
		i += invalidLen(b[i:])
		sb.WriteRune(utf8.RuneError)
	}
	return sb.String()
}

// invalidLen reports how many bytes form the invalid maximal subpart
// at the start of s: the longest prefix of a well-formed sequence,
// or a single byte when s[0] can start none.
func invalidLen(s []byte) int {
	b0 := s[0]
	var need int
	var lo, hi byte = 0x80, 0xbf
	switch {
	case b0 >= 0xc2 && b0 <= 0xdf:
		need = 1
	case b0 >= 0xe0 && b0 <= 0xef:
		need = 2
		if b0 == 0xe0 {
			lo = 0xa0
		} else if b0 == 0xed {
			hi = 0x9f
		}
	case b0 >= 0xf0 && b0 <= 0xf4:
		need = 3
		if b0 == 0xf0 {
			lo = 0x90
		} else if b0 == 0xf4 {
			hi = 0x8f
		}
	default:
		// Stray continuation byte, overlong lead, or out of range.
		return 1
	}
	n := 1
	for ; n <= need && n < len(s); n++ {
		c := s[n]
		if c < lo || c > hi {
			return n
		}
		lo, hi = 0x80, 0xbf
	}
	return n
}

// ParseRequest parses one decoded read into a ParsedRequest.
//
// The first line must carry at least a method token and a target
// token separated by whitespace; a trailing version token is
// accepted and ignored. Header lines follow until the first empty
// line: split at the first colon, both sides trimmed, last duplicate
// wins, lines without a colon skipped. Everything after the empty
// line is rejoined with a single '\n' to form the body.
//
// ok=false is the sole failure signal; no detail is reported.
func ParseRequest(raw string) (pr *ParsedRequest, ok bool) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil, false
	}

	parts := strings.Fields(lines[0])
	if len(parts) < 2 {
		return nil, false
	}
	method, target := parts[0], parts[1]

	header := make(map[string]string)
	rest := lines[1:]
	for len(rest) > 0 {
		line := rest[0]
		rest = rest[1:]
		if line == "" {
			break
		}
		k, v, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		header[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	return &ParsedRequest{
		Method: method,
		Target: target,
		Header: header,
		Body:   []byte(strings.Join(rest, "\n")),
	}, true
}

// splitLines splits raw text on '\n', stripping a '\r' that
// immediately precedes each '\n'. A final line terminator is
// optional and yields no empty trailing line; a '\r' not followed by
// '\n' is kept as data.
func splitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	last := len(lines) - 1
	for i := 0; i < last; i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if lines[last] == "" {
		lines = lines[:last]
	}
	return lines
}
