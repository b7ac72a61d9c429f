package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	dErrors "medcalc/pkg/domain-errors"
	"medcalc/pkg/platform/httputil"
	"medcalc/pkg/requestcontext"
)

// Recover turns handler panics into the opaque internal error envelope
// instead of tearing down the connection.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					ctx := r.Context()
					logger.ErrorContext(ctx, "handler panicked",
						"request_id", requestcontext.RequestID(ctx),
						"path", r.URL.Path,
						"panic", rec,
						"stack", string(debug.Stack()),
					)
					httputil.WriteError(w, dErrors.Newf(dErrors.CodeInternal, "panic: %v", rec))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
