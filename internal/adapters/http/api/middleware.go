package api

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/okian/draftsensei/pkg/metrics"
)

var errHijackUnsupported = errors.New("response writer does not support hijacking")

// MetricsMiddleware records request count, latency and, for 4xx/5xx
// responses, the error families for endpoint.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		ms := float64(time.Since(start).Microseconds()) / 1000
		code := strconv.Itoa(rw.statusCode)
		metrics.RecordHTTPRequest(endpoint, r.Method, code)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, code, ms)

		if class, ok := classify(rw.statusCode); ok {
			metrics.RecordErrorByEndpoint(endpoint, r.Method, class.kind)
			metrics.RecordErrorByType(class.kind, class.severity)
			metrics.RecordErrorByComponent("http", class.kind)
			metrics.RecordErrorLatency("http", class.kind, ms)
		}
	}
}

// RateLimitMiddleware rejects requests with 429 when limiter has no token.
func RateLimitMiddleware(next http.HandlerFunc, limiter *rate.Limiter) http.HandlerFunc {
	const op = "api.rate_limit"
	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			metrics.RecordRateLimited()
			w.Header().Set("Retry-After", "1")
			fail(w, NewKind(op, ErrRateLimited))
			return
		}
		next(w, r)
	}
}

type errorClass struct {
	kind     string
	severity string
}

// classify labels an error status for the error metrics. ok is false below 400.
func classify(status int) (errorClass, bool) {
	switch {
	case status >= http.StatusInternalServerError:
		return errorClass{"server_error", "high"}, true
	case status == http.StatusTooManyRequests:
		return errorClass{"rate_limit", "medium"}, true
	case status == http.StatusNotFound:
		return errorClass{"not_found", "medium"}, true
	case status == http.StatusRequestEntityTooLarge:
		return errorClass{"too_large", "medium"}, true
	case status >= http.StatusBadRequest:
		return errorClass{"client_error", "medium"}, true
	}
	return errorClass{}, false
}

// responseWriter keeps the first status written so metrics see what the
// client saw.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	n, err := rw.ResponseWriter.Write(b)
	if err != nil {
		return n, fmt.Errorf("write response: %w", err)
	}
	return n, nil
}

// Hijack lets the websocket upgrade take over the connection.
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errHijackUnsupported
	}
	rw.statusCode = http.StatusSwitchingProtocols
	rw.wroteHeader = true
	return h.Hijack()
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
