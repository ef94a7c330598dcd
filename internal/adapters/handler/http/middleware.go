package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const principalContextKey contextKey = "principal"

// Principal is the JWT-derived caller identity. Tokens are issued by the
// identity provider; this service only verifies them.
type Principal struct {
	EmployeeID uuid.UUID
	Email      string
	Admin      bool
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(Principal)
	return p, ok
}

// AuthMiddleware verifies the access token (cookie or bearer header) and
// stores the principal in the request context.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := tokenFromRequest(r)
			if tokenStr == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized", "missing access token")
				return
			}

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				writeError(w, http.StatusUnauthorized, "Unauthorized", "invalid access token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeError(w, http.StatusUnauthorized, "Unauthorized", "invalid token claims")
				return
			}

			sub, err := claims.GetSubject()
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized", "missing subject claim")
				return
			}
			employeeID, err := uuid.Parse(sub)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized", "invalid subject claim")
				return
			}

			email, _ := claims["email"].(string)
			admin, _ := claims["admin"].(bool)

			principal := Principal{
				EmployeeID: employeeID,
				Email:      email,
				Admin:      admin,
			}
			ctx := context.WithValue(r.Context(), principalContextKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin guards catalog mutations. Reads are open to any employee.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized", "missing user context")
			return
		}
		if !principal.Admin {
			writeError(w, http.StatusForbidden, "Forbidden", "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
