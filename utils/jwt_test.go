package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	token, err := GenerateJWT(userID, "ada@example.com", "Ada Vance")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada Vance", claims.Name)
	assert.Equal(t, "congress-directory", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateJWT(uuid.New(), "ada@example.com", "Ada Vance")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateJWT(uuid.New(), "ada@example.com", "Ada Vance")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"missing prefix", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"prefix only", "Bearer ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func optionalUserContext(t *testing.T, configure func(r *http.Request)) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/legislators", nil)
	if configure != nil {
		configure(c.Request)
	}
	return c
}

func TestOptionalUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateJWT(uuid.New(), "ada@example.com", "Ada Vance")
	require.NoError(t, err)

	t.Run("anonymous is nil, not an error", func(t *testing.T) {
		c := optionalUserContext(t, nil)
		assert.Nil(t, OptionalUser(c))
	})

	t.Run("bad token is nil", func(t *testing.T) {
		c := optionalUserContext(t, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer not-a-token")
		})
		assert.Nil(t, OptionalUser(c))
	})

	t.Run("cookie session", func(t *testing.T) {
		c := optionalUserContext(t, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
		})
		claims := OptionalUser(c)
		require.NotNil(t, claims)
		assert.Equal(t, "ada@example.com", claims.Email)
	})

	t.Run("authorization header fallback", func(t *testing.T) {
		c := optionalUserContext(t, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		})
		claims := OptionalUser(c)
		require.NotNil(t, claims)
		assert.Equal(t, "Ada Vance", claims.Name)
	})
}
