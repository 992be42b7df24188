package domain

import "time"

type AlertType string

const (
	AlertGeofenceBreach AlertType = "geo_fence_breach"
)

// Alert is generated when a tourist's location resolves to a risk level
// above the breach threshold. It references the triggering zone's risk
// level only; zone identity is not propagated.
type Alert struct {
	ID        string    `json:"id"`
	TouristID string    `json:"tourist_id"`
	Timestamp time.Time `json:"timestamp"`
	Location  LatLng    `json:"location"`
	RiskLevel int       `json:"risk_level"`
	AlertType AlertType `json:"alert_type"`
}

// RiskAssessment is the aggregated output of one pipeline run. TouristFlow
// and IncidentProbability are present only when the snapshot carried a
// location_id. Immutable once assembled.
type RiskAssessment struct {
	TouristID           string    `json:"tourist_id"`
	Timestamp           time.Time `json:"timestamp"`
	SafetyScore         int       `json:"safety_score"`
	Alerts              []Alert   `json:"alerts_generated"`
	TouristFlow         *int      `json:"tourist_flow"`
	IncidentProbability *float64  `json:"incident_probability"`
	Recommendations     []string  `json:"recommendations"`
}
