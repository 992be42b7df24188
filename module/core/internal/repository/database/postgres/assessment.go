package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
	"github.com/samartharora25/SafeRove-Final/module/core/internal/repository/database"
)

var _ database.AssessmentRepository = (*AssessmentRepo)(nil)

type AssessmentRepo struct {
	db *sql.DB
}

func NewAssessmentRepo(db *sql.DB) *AssessmentRepo {
	return &AssessmentRepo{db: db}
}

func (r *AssessmentRepo) InsertAssessment(ctx context.Context, a *domain.RiskAssessment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assessments (tourist_id, safety_score, tourist_flow, incident_probability, created_at) VALUES ($1, $2, $3, $4, $5)`,
		a.TouristID, a.SafetyScore, a.TouristFlow, a.IncidentProbability, a.Timestamp,
	)
	return err
}

func (r *AssessmentRepo) InsertAlert(ctx context.Context, alert *domain.Alert) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO alerts (id, tourist_id, latitude, longitude, risk_level, alert_type, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		alert.ID, alert.TouristID, alert.Location.Lat, alert.Location.Lng, alert.RiskLevel, string(alert.AlertType), alert.Timestamp,
	)
	return err
}

func (r *AssessmentRepo) ListAlertsByTourist(ctx context.Context, touristID string, limit int) ([]domain.Alert, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, tourist_id, latitude, longitude, risk_level, alert_type, created_at FROM alerts WHERE tourist_id = $1 ORDER BY created_at DESC LIMIT $2`,
		touristID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		var alertType string
		if err := rows.Scan(&a.ID, &a.TouristID, &a.Location.Lat, &a.Location.Lng, &a.RiskLevel, &alertType, &a.Timestamp); err != nil {
			return nil, err
		}
		a.AlertType = domain.AlertType(alertType)
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (r *AssessmentRepo) CountActiveTourists(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT tourist_id) FROM assessments WHERE created_at >= $1`,
		since,
	).Scan(&n)
	return n, err
}

func (r *AssessmentRepo) CountRecentAlerts(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM alerts WHERE created_at >= $1`,
		since,
	).Scan(&n)
	return n, err
}

// CountHighRiskTourists counts tourists whose most recent safety score is at
// or below maxScore.
func (r *AssessmentRepo) CountHighRiskTourists(ctx context.Context, maxScore int) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM (
			SELECT DISTINCT ON (tourist_id) safety_score FROM assessments ORDER BY tourist_id, created_at DESC
		 ) latest WHERE safety_score <= $1`,
		maxScore,
	).Scan(&n)
	return n, err
}
