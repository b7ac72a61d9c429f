package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"medcalc/pkg/requestcontext"
)

// RequestIDHeader is the header a caller-supplied request id arrives on and
// the response echoes it back on.
const RequestIDHeader = "X-Request-Id"

// RequestID tags each request with an id and a request-scoped time. A valid
// caller-supplied id is honored so traces correlate across services.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, time.Now().UTC())

		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
