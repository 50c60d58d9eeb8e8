package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/pulsefeed/feedback-analytics/internal/core/service"
)

// RequireRole enforces a strict role match on the authenticated identity.
// No hierarchy: the two roles are disjoint.
func RequireRole(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := service.RequireRole(IdentityFrom(c), required); err != nil {
				return err
			}
			return next(c)
		}
	}
}
