package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsefeed/feedback-analytics/internal/api/metrics"
	"github.com/pulsefeed/feedback-analytics/internal/api/middleware"
	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
	"github.com/pulsefeed/feedback-analytics/internal/core/ports"
)

type FeedbackHandler struct {
	service ports.FeedbackService
}

func NewFeedbackHandler(service ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Submit appends one feedback record for the authenticated caller.
//
// @Summary      Submit feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitFeedbackRequest  true  "Feedback text"
// @Success      201   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req submitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return domain.ErrUnauthorized
	}

	if err := h.service.Submit(c.Request().Context(), identity.Username, req.Feedback, req.Timestamp); err != nil {
		return err
	}

	metrics.SubmissionsTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Feedback submitted successfully"})
}

// List returns the windowed feedback view: everything inside the rolling
// window plus the ten most recent older records.
//
// @Summary      List recent and historical feedback
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  feedbackWindowResponse
// @Failure      401  {object}  errorResponse
// @Router       /feedback [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	window, err := h.service.Window(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, feedbackWindowResponse{
		Current:    toFeedbackItems(window.Recent),
		Historical: toFeedbackItems(window.Historical),
	})
}

func toFeedbackItems(records []domain.FeedbackRecord) []feedbackItem {
	items := make([]feedbackItem, 0, len(records))
	for _, r := range records {
		items = append(items, feedbackItem{Feedback: r.Text, Timestamp: r.SubmittedAt})
	}
	return items
}
