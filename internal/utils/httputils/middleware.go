package httputils

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wgomg/rudefinder/internal/utils"
)

type ctxKey string

const reqIDKey ctxKey = "reqid"

const RequestIDHeader = "X-Request-Id"

// WithRequestID tags every request with an id, taken from the X-Request-Id
// header when the caller sent one, and logs the request once it is served.
func WithRequestID(logger *utils.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, reqID)
		start := time.Now()

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), reqIDKey, reqID)))

		logger.Debug(&reqID, "%s %s served in %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(reqIDKey).(string)
	return reqID
}
