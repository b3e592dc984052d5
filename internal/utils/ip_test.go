package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func makeContext(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/contact", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetClientIPRealIPHeader(t *testing.T) {
	c := makeContext(t, "10.0.0.1:1234", map[string]string{"X-Real-IP": "203.0.113.7"})
	assert.Equal(t, "203.0.113.7", GetClientIP(c, true))
}

func TestGetClientIPForwardedForFirstHop(t *testing.T) {
	c := makeContext(t, "10.0.0.1:1234", map[string]string{
		"X-Forwarded-For": "198.51.100.4, 10.0.0.2, 10.0.0.3",
	})
	assert.Equal(t, "198.51.100.4", GetClientIP(c, true))
}

func TestGetClientIPIgnoresHeadersWithoutTrust(t *testing.T) {
	c := makeContext(t, "10.0.0.1:1234", map[string]string{
		"X-Forwarded-For": "198.51.100.4",
		"X-Real-IP":       "203.0.113.7",
	})
	assert.Equal(t, "10.0.0.1", GetClientIP(c, false))
}

func TestGetClientIPFallsBackToSocketAddr(t *testing.T) {
	c := makeContext(t, "192.0.2.9:5678", nil)
	assert.Equal(t, "192.0.2.9", GetClientIP(c, true))
}
