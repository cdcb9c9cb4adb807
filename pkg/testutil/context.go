package testutil

import (
	"net/http"
	"time"

	"esaj/pkg/requestcontext"
)

// WithRequestTime pins the request-scoped clock, as the requesttime middleware would.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}

// WithRequestID sets the request ID header so the RequestID middleware reuses it.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	req.Header.Set("X-Request-ID", requestID)
	return req
}

// WithOrigin marks the request as cross-origin.
func WithOrigin(req *http.Request, origin string) *http.Request {
	req.Header.Set("Origin", origin)
	return req
}
