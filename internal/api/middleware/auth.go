package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
	"github.com/pulsefeed/feedback-analytics/internal/core/ports"
)

// IdentityKey is the context key under which Auth stores the authenticated
// identity.
const IdentityKey = "identity"

// Auth extracts the bearer token and runs the full guard: signature check
// plus a live credential store re-read. A token whose subject no longer
// exists is rejected even though its signature verifies.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
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

			identity, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					return domain.ErrUnauthorized
				}
				return err
			}

			c.Set(IdentityKey, identity)

			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored by Auth, or nil when the
// middleware did not run.
func IdentityFrom(c echo.Context) *domain.Identity {
	identity, _ := c.Get(IdentityKey).(*domain.Identity)
	return identity
}
