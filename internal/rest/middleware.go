package rest

import (
	"net/http"
	"time"

	"github.com/muhammadchandra19/stock-data/pkg/logger"
	"github.com/muhammadchandra19/stock-data/pkg/util"
)

// RequestID propagates the X-Request-ID header into the request context,
// generating one when the client sent none, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := util.WithRequestID(r.Context(), r.Header.Get(util.RequestIDHeader))
		w.Header().Set(util.RequestIDHeader, util.GetRequestID(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// AccessLog writes one structured entry per request.
func AccessLog(log logger.Interface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.InfoContext(r.Context(), "http request",
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("status", rec.status),
				logger.NewField("remote_addr", r.RemoteAddr),
				logger.NewField("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}
