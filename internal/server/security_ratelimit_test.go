package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuspiciousActivityDetector_RateLimit(t *testing.T) {
	detector := NewSuspiciousActivityDetector()

	// First 1000 requests from an IP pass
	for i := 0; i < RateLimitWindowRequests; i++ {
		assert.True(t, detector.RecordRequest("10.0.0.1"))
	}

	// Request 1001 is blocked
	assert.False(t, detector.RecordRequest("10.0.0.1"))

	// A different IP is unaffected
	assert.True(t, detector.RecordRequest("10.0.0.2"))
}

func TestRateLimitMiddleware_BlocksOverLimit(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(nil, detector)(inner)

	req := httptest.NewRequest("GET", "/api/v1/sessions", nil)
	req.RemoteAddr = "10.0.0.1:54321"

	for i := 0; i < RateLimitWindowRequests; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		expected       string
	}{
		{
			name:       "direct connection",
			remoteAddr: "192.168.1.5:12345",
			expected:   "192.168.1.5",
		},
		{
			name:           "forwarded header ignored from untrusted source",
			remoteAddr:     "192.168.1.5:12345",
			forwardedFor:   "1.2.3.4",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "192.168.1.5",
		},
		{
			name:           "forwarded header honored from trusted proxy",
			remoteAddr:     "10.0.0.1:443",
			forwardedFor:   "1.2.3.4",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "1.2.3.4",
		},
		{
			name:           "rightmost forwarded IP wins",
			remoteAddr:     "10.0.0.1:443",
			forwardedFor:   "1.2.3.4, 5.6.7.8",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "5.6.7.8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}

			assert.Equal(t, tt.expected, extractIP(req, tt.trustedProxies))
		})
	}
}
