package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
	"github.com/samartharora25/SafeRove-Final/module/core/service"
)

const defaultAlertHistoryLimit = 50

type analyticsService interface {
	DashboardMetrics(ctx context.Context) (service.DashboardMetrics, error)
}

type alertLister interface {
	ListAlertsByTourist(ctx context.Context, touristID string, limit int) ([]domain.Alert, error)
}

// DashboardHandler serves the operational dashboard and per-tourist alert
// history.
type DashboardHandler struct {
	analytics analyticsService
	alerts    alertLister
}

func NewDashboardHandler(analytics analyticsService, alerts alertLister) *DashboardHandler {
	return &DashboardHandler{analytics: analytics, alerts: alerts}
}

func (h *DashboardHandler) Register(r *gin.RouterGroup) {
	r.GET("/dashboard/metrics", h.Metrics)
	r.GET("/tourists/:tourist_id/alerts", h.TouristAlerts)
}

func (h *DashboardHandler) Metrics(c *gin.Context) {
	m, err := h.analytics.DashboardMetrics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute dashboard metrics"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *DashboardHandler) TouristAlerts(c *gin.Context) {
	limit := defaultAlertHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
			return
		}
		limit = parsed
	}

	alerts, err := h.alerts.ListAlertsByTourist(c.Request.Context(), c.Param("tourist_id"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch alerts"})
		return
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}
	c.JSON(http.StatusOK, alerts)
}
