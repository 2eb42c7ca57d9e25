package httpd

// Method is an HTTP request method. Only the closed set below is
// recognized; request lines carrying any other token do not parse.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodOptions Method = "OPTIONS"
	MethodHead    Method = "HEAD"
)

// ParseMethod maps an exact uppercase token to a Method.
// Lowercase or unknown tokens report ok=false.
func ParseMethod(tok string) (Method, bool) {
	switch tok {
	case "GET":
		return MethodGet, true
	case "POST":
		return MethodPost, true
	case "PUT":
		return MethodPut, true
	case "PATCH":
		return MethodPatch, true
	case "DELETE":
		return MethodDelete, true
	case "OPTIONS":
		return MethodOptions, true
	case "HEAD":
		return MethodHead, true
	}
	return "", false
}
