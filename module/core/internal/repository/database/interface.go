package database

import (
	"context"
	"time"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
)

// ZoneRepository is the durable mirror of the in-memory zone index: zones
// are written through on registration and loaded back at startup.
type ZoneRepository interface {
	Upsert(ctx context.Context, zone *domain.RiskZone) error
	SetActive(ctx context.Context, zoneID string, active bool) error
	List(ctx context.Context) ([]domain.RiskZone, error)
}

// AssessmentRepository records pipeline outputs and answers the dashboard
// aggregate queries.
type AssessmentRepository interface {
	InsertAssessment(ctx context.Context, a *domain.RiskAssessment) error
	InsertAlert(ctx context.Context, alert *domain.Alert) error
	ListAlertsByTourist(ctx context.Context, touristID string, limit int) ([]domain.Alert, error)
	CountActiveTourists(ctx context.Context, since time.Time) (int, error)
	CountRecentAlerts(ctx context.Context, since time.Time) (int, error)
	CountHighRiskTourists(ctx context.Context, maxScore int) (int, error)
}

type EFIRRepository interface {
	Insert(ctx context.Context, efir *domain.EFIR) error
}
