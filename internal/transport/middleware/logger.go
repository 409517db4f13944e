package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// requestLog collects attributes discovered by inner middleware. Auth runs
// inside Logger, so the identity it resolves is not on Logger's context.
type requestLog struct {
	identity *ctxutil.Identity
}

type requestLogKey struct{}

// noteIdentity records id on the enclosing Logger's entry, if any.
func noteIdentity(ctx context.Context, id ctxutil.Identity) {
	if rl, ok := ctx.Value(requestLogKey{}).(*requestLog); ok {
		rl.identity = &id
	}
}

// Logger returns middleware that logs each HTTP request with method, path,
// status code, response size, duration and the request id. Authenticated
// requests also carry company_domain and user_id.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			entry := &requestLog{}
			r = r.WithContext(context.WithValue(r.Context(), requestLogKey{}, entry))

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if id, ok := ctxutil.IdentityFromCtx(r.Context()); ok {
				entry.identity = &id
			}
			if entry.identity != nil {
				attrs = append(attrs,
					slog.String("company_domain", entry.identity.CompanyDomain),
					slog.String("user_id", entry.identity.UserID.String()),
				)
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code and the
// number of body bytes written.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
