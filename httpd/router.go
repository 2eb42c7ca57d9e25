package httpd

// Handler responds to a dispatched request. Implementations must be
// safe for concurrent use: the same handler may be invoked from many
// connection goroutines at once.
type Handler interface {
	Serve(*Request) *Response
}

// HandlerFunc adapts an ordinary function to a Handler.
type HandlerFunc func(*Request) *Response

func (f HandlerFunc) Serve(r *Request) *Response {
	return f(r)
}

// Route is one registered method+path binding.
type Route struct {
	Method  Method
	Path    string
	Handler Handler
}

// Router holds an ordered, append-only route table and dispatches
// requests to the first exact method+path match.
//
// Registration is not synchronized: build the full table first, then
// hand the router to a Server. Once serving starts the table is
// shared read-only across connection goroutines and must not change.
type Router struct {
	routes []Route
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Handle appends a route and returns the router for chaining.
// Registration order is the dispatch tie-break: a later route for an
// already-registered method+path is unreachable.
func (rt *Router) Handle(method Method, path string, h Handler) *Router {
	rt.routes = append(rt.routes, Route{Method: method, Path: path, Handler: h})
	return rt
}

// Get registers a GET route.
func (rt *Router) Get(path string, h HandlerFunc) *Router {
	return rt.Handle(MethodGet, path, h)
}

// Post registers a POST route.
func (rt *Router) Post(path string, h HandlerFunc) *Router {
	return rt.Handle(MethodPost, path, h)
}

// Put registers a PUT route.
func (rt *Router) Put(path string, h HandlerFunc) *Router {
	return rt.Handle(MethodPut, path, h)
}

// Patch registers a PATCH route.
func (rt *Router) Patch(path string, h HandlerFunc) *Router {
	return rt.Handle(MethodPatch, path, h)
}

// Delete registers a DELETE route.
func (rt *Router) Delete(path string, h HandlerFunc) *Router {
	return rt.Handle(MethodDelete, path, h)
}

// Options registers an OPTIONS route.
func (rt *Router) Options(path string, h HandlerFunc) *Router {
	return rt.Handle(MethodOptions, path, h)
}

// Head registers a HEAD route. The server strips the body from the
// handler's response before writing; register the same logic as the
// matching GET and let the stripping happen at write time.
func (rt *Router) Head(path string, h HandlerFunc) *Router {
	return rt.Handle(MethodHead, path, h)
}

// Dispatch scans routes in registration order and invokes the first
// whose method and path both equal the request's. No match returns
// the canonical NotFound response; that is a normal outcome, not an
// error. Matching is exact string equality only.
func (rt *Router) Dispatch(req *Request) *Response {
	for i := range rt.routes {
		r := &rt.routes[i]
		if r.Method == req.Method && r.Path == req.Path {
			return r.Handler.Serve(req)
		}
	}
	return NotFound()
}
