package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-Id"

// LoggingHandler logs one line per request. Server errors are logged as
// warnings. Every response carries a request ID header, taken from the
// request when the client sent one.
func LoggingHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		rw.Header().Set(RequestIDHeader, requestID)

		m := httpsnoop.CaptureMetrics(h, rw, r)

		entry := log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.RequestURI,
			"remote":     r.RemoteAddr,
			"user-agent": r.UserAgent(),
			"status":     m.Code,
			"size":       m.Written,
			"duration":   float64(m.Duration.Microseconds()) / float64(1000),
		})

		if m.Code >= http.StatusInternalServerError {
			entry.Warn("HTTP request")
			return
		}

		entry.Info("HTTP request")
	})
}
