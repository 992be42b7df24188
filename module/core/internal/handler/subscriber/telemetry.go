package subscriber

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
)

const topicPattern = "/tourists/+/location"

type assessmentService interface {
	Assess(ctx context.Context, snap domain.TouristSnapshot) domain.RiskAssessment
}

type telemetryMessage struct {
	TouristID  string  `json:"tourist_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	LocationID *int    `json:"location_id"`
	Timestamp  int64   `json:"timestamp"`
}

// TelemetrySubscriber feeds live tourist position updates into the
// assessment pipeline. Malformed messages are logged and dropped; the
// subscription itself stays up.
type TelemetrySubscriber struct {
	client   mqtt.Client
	assessor assessmentService
	log      zerolog.Logger
}

func NewTelemetrySubscriber(client mqtt.Client, assessor assessmentService, log zerolog.Logger) *TelemetrySubscriber {
	return &TelemetrySubscriber{client: client, assessor: assessor, log: log}
}

func (s *TelemetrySubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *TelemetrySubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw telemetryMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		s.log.Warn().Err(err).Str("topic", msg.Topic()).Msg("invalid telemetry message")
		return
	}

	if err := validateTelemetry(&raw); err != nil {
		s.log.Warn().Err(err).Str("topic", msg.Topic()).Msg("telemetry validation failed")
		return
	}

	snap := domain.TouristSnapshot{
		TouristID:  raw.TouristID,
		Location:   &domain.LatLng{Lat: raw.Latitude, Lng: raw.Longitude},
		LocationID: raw.LocationID,
		Timestamp:  time.Unix(raw.Timestamp, 0),
		Profile:    domain.DefaultProfile(),
	}

	res := s.assessor.Assess(context.Background(), snap)
	if len(res.Alerts) > 0 {
		s.log.Info().
			Str("tourist_id", res.TouristID).
			Int("safety_score", res.SafetyScore).
			Int("alerts", len(res.Alerts)).
			Msg("telemetry update triggered alerts")
	}
}

func validateTelemetry(msg *telemetryMessage) error {
	if msg.TouristID == "" {
		return fmt.Errorf("tourist_id: required")
	}
	if msg.Latitude < -90 || msg.Latitude > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90")
	}
	if msg.Longitude < -180 || msg.Longitude > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180")
	}
	if msg.Timestamp <= 0 {
		return fmt.Errorf("timestamp: must be positive")
	}
	return nil
}
