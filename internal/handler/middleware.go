package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"phone-extractor/internal/domain"
	"phone-extractor/internal/metrics"
	apperrors "phone-extractor/pkg/errors"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID propagates the caller's X-Request-ID or assigns a new UUID
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Recoverer turns panics into a generic 500 response
type Recoverer struct {
	logger domain.Logger
}

// NewRecoverer creates a new panic-recovery middleware
func NewRecoverer(logger domain.Logger) *Recoverer {
	return &Recoverer{logger: logger}
}

// Middleware returns the recovery middleware function
func (m *Recoverer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := metrics.NewStatusRecorder(w)
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			requestID, _ := GetRequestIDFromContext(r)
			m.logger.Error("Unhandled panic", fmt.Errorf("panic: %v", rec),
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)

			if !rw.WroteHeader() {
				writeAppError(rw, apperrors.NewInternalError(nil))
			}
		}()

		next.ServeHTTP(rw, r)
	})
}

// AccessLog logs one line per request
type AccessLog struct {
	logger domain.Logger
}

// NewAccessLog creates a new request logging middleware
func NewAccessLog(logger domain.Logger) *AccessLog {
	return &AccessLog{logger: logger}
}

// Middleware returns the access-log middleware function
func (m *AccessLog) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := metrics.NewStatusRecorder(w)

		next.ServeHTTP(rw, r)

		requestID, _ := GetRequestIDFromContext(r)
		m.logger.Info("HTTP request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.Status(),
			"duration", time.Since(start).String(),
		)
	})
}
