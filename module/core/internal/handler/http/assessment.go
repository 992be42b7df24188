package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
	"github.com/samartharora25/SafeRove-Final/module/core/service"
)

type assessmentService interface {
	Assess(ctx context.Context, snap domain.TouristSnapshot) domain.RiskAssessment
}

type safetyScorer interface {
	Predict(features []float64) int
	Train(x [][]float64, y []float64) error
}

// profileFields are the optional tourist profile inputs shared by the
// process and scoring endpoints. Absent fields take the documented
// defaults.
type profileFields struct {
	LocationRisk    *float64 `json:"location_risk"`
	GroupSize       *int     `json:"group_size"`
	ExperienceLevel *string  `json:"experience_level"`
	HasItinerary    *bool    `json:"has_itinerary"`
	Age             *float64 `json:"age"`
	HealthScore     *float64 `json:"health_score"`
}

func (p *profileFields) toProfile() domain.Profile {
	profile := domain.DefaultProfile()
	if p.LocationRisk != nil {
		profile.LocationRisk = *p.LocationRisk
	}
	if p.GroupSize != nil {
		profile.GroupSize = *p.GroupSize
	}
	if p.ExperienceLevel != nil {
		profile.ExperienceLevel = *p.ExperienceLevel
	}
	if p.HasItinerary != nil {
		profile.HasItinerary = *p.HasItinerary
	}
	if p.Age != nil {
		profile.Age = *p.Age
	}
	if p.HealthScore != nil {
		profile.HealthScore = *p.HealthScore
	}
	return profile
}

type processRequest struct {
	profileFields
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	LocationID      *int     `json:"location_id"`
	Timestamp       *string  `json:"timestamp"`
	WeatherScore    *float64 `json:"weather_score"`
	VisibilityScore *float64 `json:"visibility_score"`
}

type safetyScoreRequest struct {
	TouristData profileFields `json:"tourist_data"`
}

type trainingRecord struct {
	profileFields
	SafetyScore *float64 `json:"safety_score"`
}

type trainRequest struct {
	TrainingData []trainingRecord `json:"training_data"`
}

// AssessmentHandler serves the per-tourist processing pipeline plus the
// safety scoring and training endpoints.
type AssessmentHandler struct {
	assessor assessmentService
	safety   safetyScorer
}

func NewAssessmentHandler(assessor assessmentService, safety safetyScorer) *AssessmentHandler {
	return &AssessmentHandler{assessor: assessor, safety: safety}
}

func (h *AssessmentHandler) Register(r *gin.RouterGroup) {
	r.POST("/tourists/:tourist_id/process", h.ProcessUpdate)
	r.POST("/safety/score", h.SafetyScore)
	r.POST("/safety/train", h.TrainSafetyModel)
}

func (h *AssessmentHandler) ProcessUpdate(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snap := domain.TouristSnapshot{
		TouristID:  c.Param("tourist_id"),
		LocationID: req.LocationID,
		Profile:    req.toProfile(),
		Environment: domain.Environment{
			WeatherScore:    req.WeatherScore,
			VisibilityScore: req.VisibilityScore,
		},
	}
	if req.Latitude != nil && req.Longitude != nil {
		snap.Location = &domain.LatLng{Lat: *req.Latitude, Lng: *req.Longitude}
	}
	if req.Timestamp != nil {
		ts, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timestamp, want RFC3339"})
			return
		}
		snap.Timestamp = ts
	}

	c.JSON(http.StatusOK, h.assessor.Assess(c.Request.Context(), snap))
}

func (h *AssessmentHandler) SafetyScore(c *gin.Context) {
	var req safetyScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	score := h.safety.Predict(service.SafetyFeatures(req.TouristData.toProfile(), time.Now()))
	c.JSON(http.StatusOK, gin.H{"status": "ok", "safety_score": score})
}

func (h *AssessmentHandler) TrainSafetyModel(c *gin.Context) {
	var req trainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.TrainingData) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "training_data is required"})
		return
	}

	now := time.Now()
	features := make([][]float64, 0, len(req.TrainingData))
	labels := make([]float64, 0, len(req.TrainingData))
	for i, rec := range req.TrainingData {
		if rec.SafetyScore == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "safety_score missing in training_data", "index": i})
			return
		}
		features = append(features, service.SafetyFeatures(rec.toProfile(), now))
		labels = append(labels, *rec.SafetyScore)
	}

	if err := h.safety.Train(features, labels); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "training failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Model trained successfully"})
}
