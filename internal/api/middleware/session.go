package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/doctorconnect/booking-system/internal/api/metrics"
	"github.com/doctorconnect/booking-system/internal/core/domain"
	"github.com/doctorconnect/booking-system/internal/core/ports"
)

// CookieName is the session cookie carrying the JWT.
const CookieName = "jwt"

// principalKey is the echo context key the session principal is stored
// under. It lives for the request only; nothing is cached across requests.
const principalKey = "principal"

// Session validates the session token and injects the principal into the
// request context. The token is read from the session cookie, falling back
// to an Authorization: Bearer header for non-browser clients. Requests
// without a valid token are rejected with 401.
func Session(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(principalKey, domain.PrincipalFromClaims(claims))
			return next(c)
		}
	}
}

// Principal returns the authenticated principal set by Session. The second
// return is false when the middleware did not run or rejected the request.
func Principal(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
