package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
	"github.com/samartharora25/SafeRove-Final/module/core/service"
)

type emergencyProcessor interface {
	ProcessText(ctx context.Context, text, language string) domain.EmergencyAnalysis
}

type efirService interface {
	Create(ctx context.Context, rep domain.IncidentReport) (domain.EFIR, error)
}

type emergencyTextRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
}

type emergencySMSRequest struct {
	FromNumber   string         `json:"from_number" binding:"required"`
	Message      string         `json:"message" binding:"required"`
	Timestamp    *string        `json:"timestamp"`
	LocationData *domain.LatLng `json:"location_data"`
}

type efirCreateRequest struct {
	IncidentData domain.IncidentReport `json:"incident_data" binding:"required"`
}

// EmergencyHandler triages inbound emergency texts and SMS and registers
// E-FIRs. High-urgency texts auto-register an E-FIR; a failed registration
// is logged and reported in the response, never a request failure.
type EmergencyHandler struct {
	processor emergencyProcessor
	efirs     efirService
	log       zerolog.Logger
}

func NewEmergencyHandler(processor emergencyProcessor, efirs efirService, log zerolog.Logger) *EmergencyHandler {
	return &EmergencyHandler{processor: processor, efirs: efirs, log: log}
}

func (h *EmergencyHandler) Register(r *gin.RouterGroup) {
	r.POST("/emergency/process-text", h.ProcessText)
	r.POST("/emergency/sms", h.ProcessSMS)
	r.POST("/efir/create", h.CreateEFIR)
}

func (h *EmergencyHandler) ProcessText(c *gin.Context) {
	var req emergencyTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	analysis := h.processor.ProcessText(c.Request.Context(), req.Text, req.Language)

	response := gin.H{
		"status":             "ok",
		"emergency_analysis": analysis,
		"efir_generated":     false,
	}

	if analysis.RequiresImmediateResponse {
		efir, err := h.efirs.Create(c.Request.Context(), domain.IncidentReport{
			IncidentType:  domain.IncidentEmergencyAlert,
			Severity:      severityForLevel(analysis.EmergencyLevel),
			Circumstances: "Emergency text received: " + req.Text,
		})
		if err != nil {
			h.log.Error().Err(err).Msg("auto efir registration failed")
		} else {
			response["efir_generated"] = true
			response["efir_number"] = efir.ComplaintNumber
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *EmergencyHandler) ProcessSMS(c *gin.Context) {
	var req emergencySMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	analysis := h.processor.ProcessText(c.Request.Context(), req.Message, service.LanguageAuto)

	response := gin.H{
		"status":                      "ok",
		"from_number":                 req.FromNumber,
		"emergency_level":             analysis.EmergencyLevel,
		"language_detected":           analysis.Language,
		"requires_immediate_response": analysis.RequiresImmediateResponse,
		"extracted_info":              analysis.ExtractedInfo,
		"efir_generated":              false,
	}

	if analysis.RequiresImmediateResponse {
		efir, err := h.efirs.Create(c.Request.Context(), domain.IncidentReport{
			IncidentType:  domain.IncidentSMSEmergency,
			Severity:      severityForLevel(analysis.EmergencyLevel),
			Circumstances: "Emergency SMS received: " + req.Message,
			ContactNumber: req.FromNumber,
			LastActivity:  "Unknown",
			LastLocation:  req.LocationData,
		})
		if err != nil {
			h.log.Error().Err(err).Str("from_number", req.FromNumber).Msg("auto efir registration failed")
		} else {
			response["efir_generated"] = true
			response["efir_number"] = efir.ComplaintNumber
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *EmergencyHandler) CreateEFIR(c *gin.Context) {
	var req efirCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	efir, err := h.efirs.Create(c.Request.Context(), req.IncidentData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register efir"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "efir_number": efir.ComplaintNumber})
}

func severityForLevel(level int) string {
	if level >= 8 {
		return domain.SeverityHigh
	}
	return domain.SeverityMedium
}
