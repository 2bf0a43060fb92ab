package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/pkg/auth"
)

func newAuthTestHandler(t *testing.T) (http.Handler, *auth.JWTService) {
	t.Helper()
	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret: "test-secret-for-unit-tests",
		Issuer: "pha-inspection-system",
		TTL:    time.Hour,
	})
	require.NoError(t, err)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.GetUserFromContext(r.Context())
		require.NoError(t, err)
		w.Header().Set("X-Inspector", user.InspectorID)
		w.WriteHeader(http.StatusOK)
	})
	return Authenticate(jwtService, zap.NewNop())(inner), jwtService
}

func TestAuthenticate_ValidToken(t *testing.T) {
	handler, jwtService := newAuthTestHandler(t)

	token, err := jwtService.GenerateToken("INS001", "Maria Santos")
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/api/v1/inspections", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "INS001", w.Header().Get("X-Inspector"))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	handler, _ := newAuthTestHandler(t)

	r := httptest.NewRequest("GET", "/api/v1/inspections", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing authorization header")
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	handler, _ := newAuthTestHandler(t)

	r := httptest.NewRequest("GET", "/api/v1/inspections", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_BadToken(t *testing.T) {
	handler, _ := newAuthTestHandler(t)

	r := httptest.NewRequest("GET", "/api/v1/inspections", nil)
	r.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}
