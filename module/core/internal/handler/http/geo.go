package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
)

// manualAlertThreshold gates the operator-triggered alert endpoint; lower
// than the pipeline's breach threshold on purpose, matching the original
// operator workflow.
const manualAlertThreshold = 5

type zoneService interface {
	AddZone(ctx context.Context, id string, polygon []domain.LatLng, riskLevel int) error
	SetActive(ctx context.Context, id string, active bool) (bool, error)
	CheckRisk(lat, lng float64) int
	List() []domain.RiskZone
}

type alertEmitter interface {
	Emit(ctx context.Context, alert *domain.Alert)
}

type riskZoneRequest struct {
	ZoneID      string      `json:"zone_id" binding:"required"`
	Coordinates [][]float64 `json:"coordinates" binding:"required"`
	RiskLevel   int         `json:"risk_level" binding:"required"`
}

type zoneActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type locationCheckRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// GeoHandler serves zone registration and geofence lookups.
type GeoHandler struct {
	zones   zoneService
	emitter alertEmitter
}

func NewGeoHandler(zones zoneService, emitter alertEmitter) *GeoHandler {
	return &GeoHandler{zones: zones, emitter: emitter}
}

func (h *GeoHandler) Register(r *gin.RouterGroup) {
	r.POST("/geo/risk-zone", h.AddRiskZone)
	r.PUT("/geo/risk-zone/:zone_id/active", h.SetZoneActive)
	r.GET("/geo/risk-zones", h.ListRiskZones)
	r.POST("/geo/check-location", h.CheckLocation)
	r.POST("/geo/alert/:tourist_id", h.TriggerAlert)
}

func (h *GeoHandler) AddRiskZone(c *gin.Context) {
	var req riskZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Coordinates) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates must have at least 3 points"})
		return
	}

	polygon := make([]domain.LatLng, len(req.Coordinates))
	for i, pair := range req.Coordinates {
		if len(pair) != 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates must be [lat, lng] pairs"})
			return
		}
		polygon[i] = domain.LatLng{Lat: pair[0], Lng: pair[1]}
	}

	if err := h.zones.AddZone(c.Request.Context(), req.ZoneID, polygon, req.RiskLevel); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist risk zone"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Risk zone " + req.ZoneID + " added successfully"})
}

func (h *GeoHandler) SetZoneActive(c *gin.Context) {
	var req zoneActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	known, err := h.zones.SetActive(c.Request.Context(), c.Param("zone_id"), *req.Active)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist zone state"})
		return
	}
	if !known {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown zone"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *GeoHandler) ListRiskZones(c *gin.Context) {
	c.JSON(http.StatusOK, h.zones.List())
}

func (h *GeoHandler) CheckLocation(c *gin.Context) {
	var req locationCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	risk := h.zones.CheckRisk(*req.Latitude, *req.Longitude)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "risk_level": risk})
}

// TriggerAlert lets an operator force an alert check for a known location.
func (h *GeoHandler) TriggerAlert(c *gin.Context) {
	var req locationCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	risk := h.zones.CheckRisk(*req.Latitude, *req.Longitude)
	if risk <= manualAlertThreshold {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "No alert generated, risk level too low"})
		return
	}

	alert := domain.Alert{
		ID:        uuid.NewString(),
		TouristID: c.Param("tourist_id"),
		Timestamp: time.Now(),
		Location:  domain.LatLng{Lat: *req.Latitude, Lng: *req.Longitude},
		RiskLevel: risk,
		AlertType: domain.AlertGeofenceBreach,
	}
	h.emitter.Emit(c.Request.Context(), &alert)

	c.JSON(http.StatusOK, gin.H{"status": "ok", "alert": alert})
}
