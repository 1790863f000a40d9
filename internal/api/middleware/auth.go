package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/taskdeck/project-system/internal/core/domain"
)

// PrincipalKey is the context key the resolved principal is stored under.
const PrincipalKey = "principal"

// Auth validates the JWT and injects the resolved Principal into context.
// The role claim is normalized here; a token carrying an unrecognized role
// is rejected outright (fail closed) rather than admitted with no grants.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, _ := claims["user_id"].(string)
			rawRole, _ := claims["role"].(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
			}
			role, ok := domain.NormalizeRole(rawRole)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unrecognized role")
			}

			c.Set(PrincipalKey, &domain.Principal{ID: userID, Role: role})
			c.Set("username", claims["username"])

			return next(c)
		}
	}
}

// Principal extracts the principal placed in context by Auth. Nil when the
// request is unauthenticated.
func Principal(c echo.Context) *domain.Principal {
	p, _ := c.Get(PrincipalKey).(*domain.Principal)
	return p
}
