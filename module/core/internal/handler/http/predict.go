package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samartharora25/SafeRove-Final/module/core/service"
)

type flowScorer interface {
	Predict(features []float64) int
}

type incidentScorer interface {
	Predict(features []float64) float64
}

type flowPredictionRequest struct {
	LocationID *int    `json:"location_id" binding:"required"`
	Timestamp  *string `json:"timestamp"`
}

type incidentLocationData struct {
	RiskScore      *float64 `json:"risk_score"`
	TouristDensity *float64 `json:"tourist_density"`
}

type incidentTouristData struct {
	SafetyScore          *float64 `json:"safety_score"`
	ExperienceLevelScore *float64 `json:"experience_level_score"`
}

type incidentEnvironmentalData struct {
	WeatherScore    *float64 `json:"weather_score"`
	TimeOfDayRisk   *float64 `json:"time_of_day_risk"`
	VisibilityScore *float64 `json:"visibility_score"`
}

type incidentPredictionRequest struct {
	LocationData      incidentLocationData      `json:"location_data"`
	TouristData       incidentTouristData       `json:"tourist_data"`
	EnvironmentalData incidentEnvironmentalData `json:"environmental_data"`
}

// PredictHandler serves the standalone flow and incident prediction
// endpoints.
type PredictHandler struct {
	flow     flowScorer
	incident incidentScorer
}

func NewPredictHandler(flow flowScorer, incident incidentScorer) *PredictHandler {
	return &PredictHandler{flow: flow, incident: incident}
}

func (h *PredictHandler) Register(r *gin.RouterGroup) {
	r.POST("/predict/tourist-flow", h.PredictFlow)
	r.POST("/predict/incident-probability", h.PredictIncident)
}

func (h *PredictHandler) PredictFlow(c *gin.Context) {
	var req flowPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ts := time.Now()
	if req.Timestamp != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timestamp, want RFC3339"})
			return
		}
		ts = parsed
	}

	flow := h.flow.Predict(service.FlowFeatures(*req.LocationID, ts))
	c.JSON(http.StatusOK, gin.H{
		"status":                 "ok",
		"location_id":            *req.LocationID,
		"timestamp":              ts.Format(time.RFC3339),
		"predicted_tourist_flow": flow,
	})
}

func (h *PredictHandler) PredictIncident(c *gin.Context) {
	var req incidentPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	prob := h.incident.Predict(service.IncidentFeatures(service.IncidentInput{
		LocationRisk:    req.LocationData.RiskScore,
		TouristDensity:  req.LocationData.TouristDensity,
		SafetyScore:     req.TouristData.SafetyScore,
		ExperienceScore: req.TouristData.ExperienceLevelScore,
		WeatherScore:    req.EnvironmentalData.WeatherScore,
		TimeOfDayRisk:   req.EnvironmentalData.TimeOfDayRisk,
		VisibilityScore: req.EnvironmentalData.VisibilityScore,
	}))

	band := "low"
	switch {
	case prob > 0.7:
		band = "high"
	case prob > 0.3:
		band = "medium"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":               "ok",
		"incident_probability": prob,
		"risk_level":           band,
	})
}
