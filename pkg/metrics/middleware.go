package metrics

import (
	"net/http"
	"strconv"
	"time"
)

// Middleware records request metrics for one named handler.
func Middleware(handler string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(recorder.status)
			HTTPRequestDuration.WithLabelValues(handler, r.Method, status).Observe(duration)
			HTTPRequestsTotal.WithLabelValues(handler, r.Method, status).Inc()
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
