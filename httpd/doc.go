// Package httpd provides a small, hand-rolled HTTP/1.1 server
// aimed at learning, control, and embeddability in tools.
//
// Highlights
//   - Exact-match method+path router with a fluent, chainable
//     registration API.
//   - Response builder with default headers (Content-Type,
//     Connection: close, Content-Length) and convenience
//     constructors for text, HTML, and 404 responses.
//   - One goroutine per accepted connection; the route table is
//     frozen before serving and shared read-only across all of
//     them.
//   - HEAD responses carry the same headers as GET but no body.
//   - Logging and metrics hooks via internal/obs interfaces.
//
// Each connection is served from a single buffered read; there is
// no keep-alive, chunked transfer, or TLS. Every response carries
// Connection: close and the connection is closed after the write.
//
// Quick start:
//
//	r := httpd.NewRouter()
//	r.Get("/", func(_ *httpd.Request) *httpd.Response {
//	    return httpd.HTML("<h1>Home</h1>")
//	}).Get("/health", func(_ *httpd.Request) *httpd.Response {
//	    return httpd.Text("OK")
//	})
//	s := &httpd.Server{Addr: ":8080", Router: r}
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
package httpd
