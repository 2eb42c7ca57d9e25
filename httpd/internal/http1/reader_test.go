package http1

import (
	"testing"
)

func parseReq(t *testing.T, raw string) *ParsedRequest {
	t.Helper()
	pr, ok := ParseRequest(raw)
	if !ok {
		t.Fatalf("ParseRequest(%q) failed", raw)
	}
	return pr
}

func TestParseRequest_HeaderTrimmed(t *testing.T) {
	pr := parseReq(t, "GET / HTTP/1.1\r\nX-Foo:   bar  \r\n\r\n")
	if got := pr.Header["X-Foo"]; got != "bar" {
		t.Fatalf("X-Foo=%q, want %q", got, "bar")
	}
}

func TestParseRequest_DuplicateHeaderLastWins(t *testing.T) {
	pr := parseReq(t, "GET / HTTP/1.1\r\nX-Foo: a\r\nX-Foo: b\r\n\r\n")
	if got := pr.Header["X-Foo"]; got != "b" {
		t.Fatalf("X-Foo=%q, want %q", got, "b")
	}
	if len(pr.Header) != 1 {
		t.Fatalf("header count=%d, want 1", len(pr.Header))
	}
}

func TestParseRequest_HeaderLineWithoutColonSkipped(t *testing.T) {
	pr := parseReq(t, "GET / HTTP/1.1\r\nnot a header\r\nHost: x\r\n\r\n")
	if len(pr.Header) != 1 || pr.Header["Host"] != "x" {
		t.Fatalf("header=%v, want only Host=x", pr.Header)
	}
}

func TestParseRequest_BodyJoinedWithNewline(t *testing.T) {
	pr := parseReq(t, "POST /submit HTTP/1.1\r\nHost: x\r\n\r\nline one\r\nline two\r\nline three")
	if got := string(pr.Body); got != "line one\nline two\nline three" {
		t.Fatalf("body=%q", got)
	}
}

func TestParseRequest_NoBlankLineMeansEmptyBody(t *testing.T) {
	pr := parseReq(t, "GET / HTTP/1.1\r\nHost: x")
	if len(pr.Body) != 0 {
		t.Fatalf("body=%q, want empty", pr.Body)
	}
}

func TestParseRequest_VersionOptional(t *testing.T) {
	pr := parseReq(t, "GET /p\r\n\r\n")
	if pr.Method != "GET" || pr.Target != "/p" {
		t.Fatalf("method=%q target=%q", pr.Method, pr.Target)
	}
}

func TestParseRequest_Malformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"\r\n",
		"GET\r\n\r\n",
		"   \r\n\r\n",
	} {
		if _, ok := ParseRequest(raw); ok {
			t.Errorf("ParseRequest(%q) = ok, want failure", raw)
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"a\r\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r", []string{"a\r"}}, // bare CR is data, not a line ending
		{"\r\n\r\n", []string{"", ""}},
	}
	for _, tt := range tests {
		got := splitLines(tt.raw)
		if len(got) != len(tt.want) {
			t.Errorf("splitLines(%q) = %q, want %q", tt.raw, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitLines(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
			}
		}
	}
}

func TestDecodeLossy(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", []byte("plain ascii"), "plain ascii"},
		{"multibyte passthrough", []byte("caf\xc3\xa9 \xe2\x82\xac"), "café €"},
		{"stray byte per replacement", []byte{'G', 0xff, 0xfe, 'T'}, "G��T"},
		{"truncated tail is one subpart", []byte("caf\xc3"), "caf�"},
		{"truncated three-byte prefix is one subpart", []byte{0xe2, 0x82, 'A'}, "�A"},
		{"out-of-range continuation splits subparts", []byte{0xe0, 0x80, 'A'}, "��A"},
		{"replacement char in input survives", []byte("a�b"), "a�b"},
	}
	for _, tt := range tests {
		if got := DecodeLossy(tt.in); got != tt.want {
			t.Errorf("%s: DecodeLossy(% x) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}
