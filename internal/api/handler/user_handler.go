package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsefeed/feedback-analytics/internal/api/middleware"
	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
)

// UserHandler serves the identity endpoints. It has no service dependency:
// everything it needs was already derived by the auth middleware.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me returns the caller's identity as the credential store currently sees it.
//
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return domain.ErrUnauthorized
	}
	return c.JSON(http.StatusOK, userResponse{
		Username: identity.Username,
		Role:     identity.Role,
	})
}

// Admin is the admin-only greeting endpoint.
//
// @Summary      Admin-only endpoint
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin [get]
func (h *UserHandler) Admin(c echo.Context) error {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return domain.ErrUnauthorized
	}
	return c.JSON(http.StatusOK, adminResponse{
		Message:  "Welcome, admin!",
		Username: identity.Username,
	})
}
