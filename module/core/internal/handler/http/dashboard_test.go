package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
	"github.com/samartharora25/SafeRove-Final/module/core/service"
)

type mockAnalytics struct {
	metricsFn func(ctx context.Context) (service.DashboardMetrics, error)
}

func (m *mockAnalytics) DashboardMetrics(ctx context.Context) (service.DashboardMetrics, error) {
	return m.metricsFn(ctx)
}

type mockAlertLister struct {
	listFn func(ctx context.Context, touristID string, limit int) ([]domain.Alert, error)
}

func (m *mockAlertLister) ListAlertsByTourist(ctx context.Context, touristID string, limit int) ([]domain.Alert, error) {
	return m.listFn(ctx, touristID, limit)
}

func setupDashboardRouter(analytics analyticsService, alerts alertLister) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDashboardHandler(analytics, alerts)
	h.Register(r.Group(""))
	return r
}

func TestDashboardMetrics_Success(t *testing.T) {
	analytics := &mockAnalytics{
		metricsFn: func(context.Context) (service.DashboardMetrics, error) {
			return service.DashboardMetrics{
				ActiveTourists:   12,
				RecentAlerts:     3,
				HighRiskTourists: 1,
				SystemStatus:     "operational",
				LastUpdated:      time.Unix(1715003456, 0),
			}, nil
		},
	}

	r := setupDashboardRouter(analytics, &mockAlertLister{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/dashboard/metrics", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp service.DashboardMetrics
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ActiveTourists != 12 || resp.RecentAlerts != 3 || resp.HighRiskTourists != 1 {
		t.Errorf("unexpected metrics: %+v", resp)
	}
}

func TestDashboardMetrics_Error(t *testing.T) {
	analytics := &mockAnalytics{
		metricsFn: func(context.Context) (service.DashboardMetrics, error) {
			return service.DashboardMetrics{}, errors.New("db down")
		},
	}

	r := setupDashboardRouter(analytics, &mockAlertLister{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/dashboard/metrics", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestTouristAlerts_DefaultLimit(t *testing.T) {
	alerts := &mockAlertLister{
		listFn: func(_ context.Context, touristID string, limit int) ([]domain.Alert, error) {
			if touristID != "T-1" {
				t.Fatalf("unexpected tourist id: %s", touristID)
			}
			if limit != 50 {
				t.Fatalf("expected default limit 50, got %d", limit)
			}
			return []domain.Alert{{ID: "a-1", TouristID: "T-1", RiskLevel: 9}}, nil
		},
	}

	r := setupDashboardRouter(&mockAnalytics{}, alerts)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tourists/T-1/alerts", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []domain.Alert
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "a-1" {
		t.Errorf("unexpected alerts: %+v", resp)
	}
}

func TestTouristAlerts_CustomLimit(t *testing.T) {
	alerts := &mockAlertLister{
		listFn: func(_ context.Context, _ string, limit int) ([]domain.Alert, error) {
			if limit != 5 {
				t.Fatalf("expected limit 5, got %d", limit)
			}
			return nil, nil
		},
	}

	r := setupDashboardRouter(&mockAnalytics{}, alerts)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tourists/T-1/alerts?limit=5", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// A nil repository result serializes as an empty array, not null.
	if body := w.Body.String(); body != "[]" {
		t.Errorf("expected empty array, got %s", body)
	}
}

func TestTouristAlerts_InvalidLimit(t *testing.T) {
	r := setupDashboardRouter(&mockAnalytics{}, &mockAlertLister{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tourists/T-1/alerts?limit=zero", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTouristAlerts_RepositoryError(t *testing.T) {
	alerts := &mockAlertLister{
		listFn: func(context.Context, string, int) ([]domain.Alert, error) {
			return nil, errors.New("db down")
		},
	}

	r := setupDashboardRouter(&mockAnalytics{}, alerts)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tourists/T-1/alerts", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
