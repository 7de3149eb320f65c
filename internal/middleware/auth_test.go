package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func guarded(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var principal string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal = Principal(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(testSecret)(next), &principal
}

func do(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, _ := body["error"].(string)
	return msg
}

func TestRequireAuthMissingHeader(t *testing.T) {
	h, _ := guarded(t)

	rec := do(h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authorization header required", errorMessage(t, rec))
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	h, _ := guarded(t)

	for _, header := range []string{"Basic abc", "Bearer", "token-without-scheme"} {
		rec := do(h, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

// Expired, wrong-key, and garbage tokens all produce the same message: the
// response never reveals which aspect of the credential failed.
func TestRequireAuthVerificationFailuresCollapse(t *testing.T) {
	h, _ := guarded(t)

	expired := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	for _, token := range []string{expired, wrongKey, "not.a.jwt"} {
		rec := do(h, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid credentials", errorMessage(t, rec))
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	h, principal := guarded(t)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-42",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec := do(h, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", *principal)
}

func TestRequireAuthMissingSubject(t *testing.T) {
	h, _ := guarded(t)

	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec := do(h, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
