package middleware

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-address-selector/internal/adapters/http/dto"
)

// Timeout returns middleware that enforces a request deadline. If the handler
// does not complete within the given duration, an RFC 9457 504 Gateway Timeout
// response is written. The context passed to the handler carries the deadline so that
// downstream I/O operations can respect it.
//
// The handler runs in a separate goroutine. The shared writer mutex ensures
// that exactly one of the handler or the timeout path writes the response.
// Once the deadline fires, further handler writes fail with
// http.ErrHandlerTimeout and are discarded. A handler panic is re-raised on the serving goroutine with its original
// stack, so an outer Recovery still handles it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{w: w}
			done := make(chan struct{})
			panicked := make(chan *handlerPanic, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- &handlerPanic{value: v, stack: debug.Stack()}
						return
					}
					close(done)
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
			}()

			select {
			case hp := <-panicked:
				// Re-raised on the serving goroutine so Recovery sees it.
				panic(hp)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flush()
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				// A canceled parent means the client is gone; nobody reads a 504.
				if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
					return
				}
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", timeout, context.DeadlineExceeded))
			}
		})
	}
}

// timeoutWriter buffers the handler's response until it completes. The
// mutex is shared between the handler goroutine and the timeout select.
type timeoutWriter struct {
	w           http.ResponseWriter
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	statusCode  int
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.header == nil {
		tw.header = make(http.Header)
	}
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.statusCode = http.StatusOK
		tw.wroteHeader = true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.statusCode = code
	tw.wroteHeader = true
}

// flush copies the buffered response to the underlying writer. Must be
// called with tw.mu held.
func (tw *timeoutWriter) flush() {
	if tw.header != nil {
		maps.Copy(tw.w.Header(), tw.header)
	}
	if tw.wroteHeader {
		tw.w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = tw.w.Write(tw.buf)
	}
}
