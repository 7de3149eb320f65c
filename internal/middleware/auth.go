package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/recette/api/internal/response"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

// PrincipalKey is the context key for the authenticated caller's ID.
const PrincipalKey contextKey = "principal"

// Principal returns the authenticated caller's ID from the request context,
// or "" when the request was not authenticated.
func Principal(ctx context.Context) string {
	id, _ := ctx.Value(PrincipalKey).(string)
	return id
}

// RequireAuth returns middleware that validates a Bearer JWT and injects the
// caller's principal ID into the request context. Every verification failure
// (bad signature, expired, malformed claims) maps to the same message so the
// response never reveals which aspect of the credential failed.
func RequireAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "authorization header required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.Unauthorized(w, "authorization header required")
				return
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				response.Unauthorized(w, "invalid credentials")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				response.Unauthorized(w, "invalid credentials")
				return
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				response.Unauthorized(w, "invalid credentials")
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
