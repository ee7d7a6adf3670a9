package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionCookie is the cookie carrying the session token for browser clients.
// API clients may send the same token as a bearer Authorization header.
const SessionCookie = "memoboard_session"

// LoginPath is where unauthenticated requests are redirected. The guard
// redirects instead of erroring: it runs before any entity lookup, so a
// missing login never reaches an ownership check or leaks note contents.
const LoginPath = "/login/"

// SessionChecker reports whether the session behind a token ID is still live.
type SessionChecker interface {
	Exists(ctx context.Context, jti string) (bool, error)
}

// Auth validates the session token and injects the username and token ID
// into the echo context. Missing, invalid, expired, or revoked tokens all
// 302-redirect to the login flow.
func Auth(jwtSecret string, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return c.Redirect(http.StatusFound, LoginPath)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return c.Redirect(http.StatusFound, LoginPath)
			}

			username, _ := claims["username"].(string)
			jti, _ := claims["jti"].(string)
			if username == "" || jti == "" {
				return c.Redirect(http.StatusFound, LoginPath)
			}

			live, err := sessions.Exists(c.Request().Context(), jti)
			if err != nil || !live {
				return c.Redirect(http.StatusFound, LoginPath)
			}

			c.Set("username", username)
			c.Set("jti", jti)

			return next(c)
		}
	}
}

// extractToken reads the session token from the Authorization header or,
// failing that, the session cookie.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
