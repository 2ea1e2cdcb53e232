package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mainbersama/venue-booking/internal/config"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{JWTSecret: testSecret}
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func runAuth(t *testing.T, authHeader string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	AuthMiddleware(testConfig())(c)
	return c, w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	c, w := runAuth(t, "")
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	c, w := runAuth(t, "Token abc")
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	c, w := runAuth(t, "Bearer not-a-token")
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":  float64(7),
		"role": "user",
		"exp":  time.Now().Add(-time.Hour).Unix(),
		"iat":  time.Now().Add(-13 * time.Hour).Unix(),
	})

	c, w := runAuth(t, "Bearer "+token)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":  float64(7),
		"role": "owner",
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	c, w := runAuth(t, "Bearer "+token)
	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, uint(7), c.MustGet(ContextUserID))
	assert.Equal(t, "owner", c.MustGet(ContextUserRole))
}

func TestAuthMiddlewareMissingRoleClaim(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": float64(7),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	c, w := runAuth(t, "Bearer "+token)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		has     string
		wants   string
		aborted bool
	}{
		{name: "matching role passes", has: "owner", wants: "owner", aborted: false},
		{name: "mismatching role blocked", has: "user", wants: "owner", aborted: true},
		{name: "empty role blocked", has: "", wants: "user", aborted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/venues", nil)
			if tt.has != "" {
				c.Set(ContextUserRole, tt.has)
			}

			RequireRole(tt.wants)(c)

			assert.Equal(t, tt.aborted, c.IsAborted())
			if tt.aborted {
				assert.Equal(t, http.StatusUnauthorized, w.Code)
			}
		})
	}
}
