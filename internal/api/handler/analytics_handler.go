package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pulsefeed/feedback-analytics/internal/api/metrics"
	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
	"github.com/pulsefeed/feedback-analytics/internal/core/ports"
)

type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Get runs the analytics extraction over the full feedback corpus.
//
// @Summary      Get aggregated feedback analytics
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  analyticsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /analytics [get]
func (h *AnalyticsHandler) Get(c echo.Context) error {
	start := time.Now()
	result, err := h.service.Analyze(c.Request().Context())
	metrics.AnalyticsDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoFeedback):
			metrics.AnalyticsRequestsTotal.WithLabelValues("no_data").Inc()
		case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrUnparsableAnalysis):
			metrics.AnalyticsRequestsTotal.WithLabelValues("upstream_error").Inc()
		}
		return err
	}

	metrics.AnalyticsRequestsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, analyticsResponse{
		Topics:    result.Topics,
		Sentiment: result.Sentiment,
		Trends:    result.Trends,
	})
}
