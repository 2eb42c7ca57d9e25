package httpd

import (
	"context"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"lumen.dev/go/lumen/httpd/internal/http1"
	"lumen.dev/go/lumen/internal/obs"
)

// readBufferSize is the fixed per-connection read buffer. A request
// larger than this arrives truncated; there is no second read.
const readBufferSize = 4096

// Server accepts TCP connections and serves one request per
// connection against a shared, read-only Router.
//
// Each accepted connection gets its own goroutine with no pooling
// and no upper bound. The read and the write carry no deadlines, so
// a stalled peer holds its goroutine for the life of the connection.
type Server struct {
	Addr   string  // bind address, host:port; defaults to ":8080"
	Router *Router // frozen route table; must not change once serving starts

	// Logger receives accept and write failures. Nil discards.
	Logger obs.Logger
	// Meter receives connection and response counters. Nil discards.
	Meter obs.Meter

	inShutdown atomic.Bool
	mu         sync.Mutex
	ln         net.Listener
}

// ListenAndServe binds the configured address and serves until the
// listener fails or Shutdown is called. A bind failure is returned
// immediately; callers treat it as fatal, there is no retry.
func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = ":8080"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve runs the accept loop on l. Accept failures are logged and
// the loop continues; only a Shutdown ends it, returning
// ErrServerClosed.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	closed := s.inShutdown.Load()
	if !closed {
		s.ln = l
	}
	s.mu.Unlock()
	defer l.Close()
	// A Shutdown that ran before the listener was stored could not
	// close it; honor it here instead of accepting forever.
	if closed {
		return ErrServerClosed
	}
	for {
		c, err := l.Accept()
		if err != nil {
			if s.inShutdown.Load() {
				return ErrServerClosed
			}
			s.logf(obs.Warn, "accept: %v", err)
			continue
		}
		s.meter().Counter("server_conns_accepted", 1)
		go s.serveConn(c)
	}
}

// Shutdown closes the listener so Serve returns. In-flight
// connections are not drained; their goroutines run to completion on
// their own.
func (s *Server) Shutdown(_ context.Context) error {
	s.inShutdown.Store(true)
	s.mu.Lock()
	ln := s.ln
	s.ln = nil
	s.mu.Unlock()
	if ln != nil {
		return ln.Close()
	}
	return nil
}

// serveConn handles one connection: a single buffered read, parse,
// dispatch, one write, close. Every failure degrades to a log line
// or a canned response; nothing is retried.
func (s *Server) serveConn(c net.Conn) {
	defer c.Close()
	id := uuid.NewString()

	buf := make([]byte, readBufferSize)
	n, err := c.Read(buf)
	if err != nil || n == 0 {
		// Empty or broken connection: drop without writing a byte.
		s.logf(obs.Debug, "conn %s: dropped before a request arrived", id)
		return
	}

	raw := http1.DecodeLossy(buf[:n])
	req, ok := ParseRequest(raw)
	if !ok {
		s.meter().Counter("server_parse_failures", 1)
		if _, err := c.Write(NewResponse(400, []byte("Bad Request")).Bytes()); err != nil {
			s.logf(obs.Error, "conn %s: write 400: %v", id, err)
		}
		return
	}

	start := time.Now()
	res := s.dispatch(req)

	var wire []byte
	if req.Method == MethodHead {
		wire = res.HeadBytes()
	} else {
		wire = res.Bytes()
	}
	if _, err := c.Write(wire); err != nil {
		s.logf(obs.Error, "conn %s: write response: %v", id, err)
		return
	}
	s.meter().Counter("server_responses", 1,
		obs.Label{Key: "status", Value: strconv.Itoa(res.StatusCode)})
	s.meter().Histogram("server_handle_seconds", time.Since(start).Seconds())
}

func (s *Server) dispatch(req *Request) *Response {
	if s.Router == nil {
		return NotFound()
	}
	return s.Router.Dispatch(req)
}

func (s *Server) logf(level obs.Level, format string, args ...interface{}) {
	s.logger().Logf(level, format, args...)
}

func (s *Server) logger() obs.Logger {
	if s.Logger == nil {
		return obs.NopLogger{}
	}
	return s.Logger
}

func (s *Server) meter() obs.Meter {
	if s.Meter == nil {
		return obs.NopMeter{}
	}
	return s.Meter
}
