package httpd

import "errors"

// ErrServerClosed is returned by Serve and ListenAndServe after a
// call to Shutdown closes the listener.
var ErrServerClosed = errors.New("httpd: server closed")
