package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/riyaaaa19/shecare/internal/logging"
)

// statusWriter captures the status code and byte count of a response as it
// is written.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

// userIDHolder lets the auth middleware, which runs deeper in the chain,
// report the resolved account back to the logger wrapping it. Context values
// only flow inward, so the logger plants a mutable cell instead.
type userIDHolder struct {
	id string
}

type userIDHolderKey struct{}

func recordUserID(ctx context.Context, id string) {
	if h, ok := ctx.Value(userIDHolderKey{}).(*userIDHolder); ok {
		h.id = id
	}
}

// RequestLogger emits one structured log line per request.
type RequestLogger struct {
	logger *logging.Logger
}

func NewRequestLogger(logger *logging.Logger) *RequestLogger {
	if logger == nil {
		logger = logging.Default
	}
	return &RequestLogger{logger: logger}
}

// Apply wraps next so every request is logged with method, path, status,
// response size and latency. 4xx responses log at warn, 5xx at error.
func (l *RequestLogger) Apply(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		holder := &userIDHolder{}
		r = r.WithContext(context.WithValue(r.Context(), userIDHolderKey{}, holder))

		start := time.Now()
		next.ServeHTTP(sw, r)

		fields := map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      sw.status,
			"size":        sw.written,
			"duration_ms": time.Since(start).Milliseconds(),
			"remote_addr": r.RemoteAddr,
			"user_agent":  r.UserAgent(),
		}
		if r.URL.RawQuery != "" {
			fields["query"] = r.URL.RawQuery
		}
		if holder.id != "" {
			fields["user_id"] = holder.id
		}

		switch {
		case sw.status >= http.StatusInternalServerError:
			l.logger.Error("request", fields)
		case sw.status >= http.StatusBadRequest:
			l.logger.Warn("request", fields)
		default:
			l.logger.Info("request", fields)
		}
	})
}
