package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffeemaker-service/internal/domain/dto"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout is the maximum duration for request processing.
	Timeout time.Duration
	// ErrorMessage is the message to return when a timeout occurs.
	ErrorMessage string
}

// DefaultTimeoutConfig returns the default timeout configuration.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout answers 504 as soon as a request outlives cfg.Timeout. The writer is
// marked expired before the handler's context is cancelled, so nothing the
// handler writes afterwards reaches the client. The middleware still waits for
// the handler to return before releasing the gin context, and only the handler
// goroutine touches the context until then.
// A panic in the handler is re-raised so Recovery can handle it.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		requestID := GetRequestID(c)
		original := c.Writer
		tw := newTimeoutWriter(original)
		c.Writer = tw
		c.Request = c.Request.WithContext(ctx)
		defer func() { c.Writer = original }()

		timer := time.NewTimer(cfg.Timeout)
		defer timer.Stop()

		done := make(chan struct{})
		var panicked any
		go func() {
			defer close(done)
			defer func() { panicked = recover() }()
			c.Next()
		}()

		select {
		case <-done:
			tw.finish()
		case <-timer.C:
			if tw.expire() {
				resp := dto.NewError(dto.ErrCodeTimeout, cfg.ErrorMessage).WithRequestID(requestID)
				tw.writeExpired(http.StatusGatewayTimeout, resp)
			}
			cancel()
			<-done
		}

		if panicked != nil {
			panic(panicked)
		}
	}
}

// TimeoutWithDuration creates timeout middleware with a specific duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}

// timeoutWriter drops handler output once the request has timed out. The
// handler sets headers on its own map, which is copied to the real response
// only while the writer is still live.
type timeoutWriter struct {
	gin.ResponseWriter

	mu       sync.Mutex
	header   http.Header
	timedOut bool
}

func newTimeoutWriter(w gin.ResponseWriter) *timeoutWriter {
	return &timeoutWriter{ResponseWriter: w, header: w.Header().Clone()}
}

func (w *timeoutWriter) Header() http.Header {
	return w.header
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	w.syncHeaderLocked()
	return w.ResponseWriter.Write(b)
}

func (w *timeoutWriter) WriteString(s string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	w.syncHeaderLocked()
	return w.ResponseWriter.WriteString(s)
}

func (w *timeoutWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.timedOut {
		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *timeoutWriter) WriteHeaderNow() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.timedOut {
		w.syncHeaderLocked()
		w.ResponseWriter.WriteHeaderNow()
	}
}

func (w *timeoutWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.timedOut {
		w.syncHeaderLocked()
		w.ResponseWriter.Flush()
	}
}

// syncHeaderLocked requires w.mu to be held.
func (w *timeoutWriter) syncHeaderLocked() {
	dst := w.ResponseWriter.Header()
	for k, v := range w.header {
		dst[k] = v
	}
}

// finish copies headers set by a handler that never wrote a body.
func (w *timeoutWriter) finish() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.timedOut {
		w.syncHeaderLocked()
	}
}

// expire marks the writer timed out. It returns false if the handler has
// already started its response, which is then left to complete.
func (w *timeoutWriter) expire() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ResponseWriter.Written() {
		return false
	}
	w.timedOut = true
	return true
}

func (w *timeoutWriter) writeExpired(status int, body any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ResponseWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.ResponseWriter.WriteHeader(status)
	_ = json.NewEncoder(w.ResponseWriter).Encode(body)
	w.ResponseWriter.Flush()
}
