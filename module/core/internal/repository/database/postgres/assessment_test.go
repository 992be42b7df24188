package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
)

func TestInsertAssessment_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	flow := 120
	prob := 0.42
	mock.ExpectExec(`INSERT INTO assessments`).
		WithArgs("T-1", 6, flow, prob, ts).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewAssessmentRepo(db)
	err = repo.InsertAssessment(context.Background(), &domain.RiskAssessment{
		TouristID:           "T-1",
		Timestamp:           ts,
		SafetyScore:         6,
		TouristFlow:         &flow,
		IncidentProbability: &prob,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestInsertAssessment_NullOptionals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	mock.ExpectExec(`INSERT INTO assessments`).
		WithArgs("T-2", 5, nil, nil, ts).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewAssessmentRepo(db)
	err = repo.InsertAssessment(context.Background(), &domain.RiskAssessment{
		TouristID:   "T-2",
		Timestamp:   ts,
		SafetyScore: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestInsertAlert_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	mock.ExpectExec(`INSERT INTO alerts`).
		WithArgs("a-1", "T-1", 26.1665, 91.7047, 9, "geo_fence_breach", ts).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewAssessmentRepo(db)
	err = repo.InsertAlert(context.Background(), &domain.Alert{
		ID:        "a-1",
		TouristID: "T-1",
		Timestamp: ts,
		Location:  domain.LatLng{Lat: 26.1665, Lng: 91.7047},
		RiskLevel: 9,
		AlertType: domain.AlertGeofenceBreach,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestInsertAlert_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`INSERT INTO alerts`).
		WillReturnError(sqlmock.ErrCancelled)

	repo := NewAssessmentRepo(db)
	err = repo.InsertAlert(context.Background(), &domain.Alert{ID: "a-2", TouristID: "T-1"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestListAlertsByTourist_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts1 := time.Unix(1715005000, 0)
	ts2 := time.Unix(1715000000, 0)
	rows := sqlmock.NewRows([]string{"id", "tourist_id", "latitude", "longitude", "risk_level", "alert_type", "created_at"}).
		AddRow("a-1", "T-1", 26.1, 91.7, 9, "geo_fence_breach", ts1).
		AddRow("a-2", "T-1", 26.2, 91.8, 8, "geo_fence_breach", ts2)

	mock.ExpectQuery(`SELECT id, tourist_id, latitude, longitude, risk_level, alert_type, created_at FROM alerts`).
		WithArgs("T-1", 50).
		WillReturnRows(rows)

	repo := NewAssessmentRepo(db)
	alerts, err := repo.ListAlertsByTourist(context.Background(), "T-1", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
	if alerts[0].ID != "a-1" || alerts[0].RiskLevel != 9 {
		t.Errorf("unexpected first alert: %+v", alerts[0])
	}
	if alerts[0].AlertType != domain.AlertGeofenceBreach {
		t.Errorf("expected alert type %s, got %s", domain.AlertGeofenceBreach, alerts[0].AlertType)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListAlertsByTourist_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"id", "tourist_id", "latitude", "longitude", "risk_level", "alert_type", "created_at"})
	mock.ExpectQuery(`SELECT id, tourist_id, latitude, longitude, risk_level, alert_type, created_at FROM alerts`).
		WithArgs("T-9", 10).
		WillReturnRows(rows)

	repo := NewAssessmentRepo(db)
	alerts, err := repo.ListAlertsByTourist(context.Background(), "T-9", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts) != 0 {
		t.Fatalf("expected 0 alerts, got %d", len(alerts))
	}
}

func TestCountActiveTourists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	since := time.Unix(1715000000, 0)
	rows := sqlmock.NewRows([]string{"count"}).AddRow(17)
	mock.ExpectQuery(`SELECT COUNT\(DISTINCT tourist_id\) FROM assessments`).
		WithArgs(since).
		WillReturnRows(rows)

	repo := NewAssessmentRepo(db)
	n, err := repo.CountActiveTourists(context.Background(), since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 17 {
		t.Errorf("expected 17, got %d", n)
	}
}

func TestCountRecentAlerts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	since := time.Unix(1715000000, 0)
	rows := sqlmock.NewRows([]string{"count"}).AddRow(4)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM alerts`).
		WithArgs(since).
		WillReturnRows(rows)

	repo := NewAssessmentRepo(db)
	n, err := repo.CountRecentAlerts(context.Background(), since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4, got %d", n)
	}
}

func TestCountHighRiskTourists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(2)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM \(`).
		WithArgs(3).
		WillReturnRows(rows)

	repo := NewAssessmentRepo(db)
	n, err := repo.CountHighRiskTourists(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
}
