package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseDeviceType(t *testing.T) {
	assert.Equal(t, "mobile", parseDeviceType("Mozilla/5.0 (Linux; Android 14) Mobile Safari"))
	assert.Equal(t, "tablet", parseDeviceType("Mozilla/5.0 (iPad; CPU OS 17_0)"))
	assert.Equal(t, "desktop", parseDeviceType("Mozilla/5.0 (Windows NT 10.0; Win64; x64)"))
}

func TestParseBrowser(t *testing.T) {
	assert.Equal(t, "Edge", parseBrowser("Mozilla/5.0 Chrome/120.0 Edg/120.0"))
	assert.Equal(t, "Chrome", parseBrowser("Mozilla/5.0 Chrome/120.0 Safari/537.36"))
	assert.Equal(t, "Firefox", parseBrowser("Mozilla/5.0 Gecko/20100101 Firefox/121.0"))
	assert.Equal(t, "Safari", parseBrowser("Mozilla/5.0 Version/17.0 Safari/605.1.15"))
	assert.Equal(t, "Other", parseBrowser("curl/8.4.0"))
}

func TestParseOS(t *testing.T) {
	assert.Equal(t, "Windows", parseOS("Mozilla/5.0 (Windows NT 10.0)"))
	assert.Equal(t, "macOS", parseOS("Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0)"))
	assert.Equal(t, "Linux", parseOS("Mozilla/5.0 (X11; Linux x86_64)"))
	assert.Equal(t, "Android", parseOS("Mozilla/5.0 (Android 14; Mobile)"))
	assert.Equal(t, "iOS", parseOS("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)"))
	assert.Equal(t, "Other", parseOS("curl/8.4.0"))
}

func clientIPContext(t *testing.T, headers map[string]string) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.9:52000"
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetClientIP(t *testing.T) {
	t.Run("prefers first forwarded hop", func(t *testing.T) {
		c := clientIPContext(t, map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"})
		assert.Equal(t, "203.0.113.7", GetClientIP(c))
	})

	t.Run("ignores malformed forwarded value", func(t *testing.T) {
		c := clientIPContext(t, map[string]string{
			"X-Forwarded-For": "not-an-ip",
			"X-Real-IP":       "198.51.100.4",
		})
		assert.Equal(t, "198.51.100.4", GetClientIP(c))
	})

	t.Run("falls back to remote addr", func(t *testing.T) {
		c := clientIPContext(t, nil)
		assert.Equal(t, "10.0.0.9", GetClientIP(c))
	})
}
