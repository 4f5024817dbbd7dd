package http

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Middleware wraps handlerfunc with additional behaviour.
type Middleware func(http.HandlerFunc) http.HandlerFunc

// NewTimeoutMiddleware creates middleware that cancels requests context after given time.
// Zero timeout disables it.
func NewTimeoutMiddleware(timeout time.Duration) Middleware {
	return func(h http.HandlerFunc) http.HandlerFunc {
		if timeout <= 0 {
			return h
		}

		return func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			h(w, r.WithContext(ctx))
		}
	}
}

// NewLoggingMiddleware creates middleware logging every handled request with its status and duration.
func NewLoggingMiddleware(l logrus.FieldLogger) Middleware {
	return func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			h(sw, r)

			l.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   sw.status,
				"duration": time.Since(start),
			}).Debug("request handled")
		}
	}
}

// chain applies middlewares so the first one is the outermost.
func chain(h http.HandlerFunc, mws ...Middleware) http.HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	return h
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
