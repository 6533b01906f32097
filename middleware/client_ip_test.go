package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{"forwarded-for single", "203.0.113.7", "", "10.0.0.1:4711", "203.0.113.7"},
		{"forwarded-for chain takes first", "203.0.113.7, 70.41.3.18", "", "10.0.0.1:4711", "203.0.113.7"},
		{"real-ip when no forwarded-for", "", "198.51.100.2", "10.0.0.1:4711", "198.51.100.2"},
		{"remote addr port stripped", "", "", "192.0.2.9:52044", "192.0.2.9"},
		{"remote addr without port", "", "", "192.0.2.9", "192.0.2.9"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			c.Request.RemoteAddr = tc.remoteAddr
			if tc.xff != "" {
				c.Request.Header.Set("X-Forwarded-For", tc.xff)
			}
			if tc.xri != "" {
				c.Request.Header.Set("X-Real-IP", tc.xri)
			}

			if got := clientIP(c); got != tc.want {
				t.Errorf("clientIP() = %q, want %q", got, tc.want)
			}
		})
	}
}
