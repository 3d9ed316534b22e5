package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethoz1970/congress-directory/services"
)

func adminProbe() *gin.Engine {
	router := gin.New()
	router.POST("/admin/cache/clear", AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": c.GetString("adminEmail")})
	})
	return router
}

func adminRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/cache/clear", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "admin_token", Value: token})
	}
	return req
}

func TestAdminAuthMiddlewareAcceptsConfiguredAdmin(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	require.NoError(t, services.InitJWTService("admin-test-secret"))

	token, err := services.GenerateAdminJWT("ops@example.com")
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	adminProbe().ServeHTTP(recorder, adminRequest(token))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ops@example.com")
}

func TestAdminAuthMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	require.NoError(t, services.InitJWTService("admin-test-secret"))

	recorder := httptest.NewRecorder()
	adminProbe().ServeHTTP(recorder, adminRequest(""))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAdminAuthMiddlewareRejectsStaleAccount(t *testing.T) {
	// A token minted for the previous operator address stops working once
	// ADMIN_EMAIL changes.
	require.NoError(t, services.InitJWTService("admin-test-secret"))
	token, err := services.GenerateAdminJWT("old-ops@example.com")
	require.NoError(t, err)

	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	recorder := httptest.NewRecorder()
	adminProbe().ServeHTTP(recorder, adminRequest(token))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
