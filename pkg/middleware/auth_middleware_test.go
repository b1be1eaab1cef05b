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
)

const testSecret = "test-jwt-secret"

func signedToken(t *testing.T, secret string, subject string, expiry time.Duration) string {
	t.Helper()
	claims := sessionClaims{
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

type capturedIdentity struct {
	userID string
	email  string
}

func protectedRouter() (*gin.Engine, *capturedIdentity) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	captured := &capturedIdentity{}
	engine.GET("/protected", AuthMiddleware(testSecret), func(c *gin.Context) {
		captured.userID = c.GetString("user_id")
		captured.email = c.GetString("user_email")
		c.Status(http.StatusOK)
	})
	return engine, captured
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	engine, captured := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, "user-7", time.Hour))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-7", captured.userID)
	assert.Equal(t, "user@example.com", captured.email)
}

func TestAuthMiddlewareAcceptsQueryToken(t *testing.T) {
	engine, captured := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+signedToken(t, testSecret, "user-8", time.Hour), nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-8", captured.userID)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	engine, _ := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	engine, _ := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", "user-9", time.Hour))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	engine, _ := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, "user-10", -time.Minute))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsTokenWithoutSubject(t *testing.T) {
	engine, _ := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, "", time.Hour))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
