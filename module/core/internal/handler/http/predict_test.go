package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockFlowScorer struct {
	predictFn func(features []float64) int
}

func (m *mockFlowScorer) Predict(features []float64) int {
	return m.predictFn(features)
}

type mockIncidentScorer struct {
	predictFn func(features []float64) float64
}

func (m *mockIncidentScorer) Predict(features []float64) float64 {
	return m.predictFn(features)
}

func setupPredictRouter(flow flowScorer, incident incidentScorer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPredictHandler(flow, incident)
	h.Register(r.Group(""))
	return r
}

func TestPredictFlow_Success(t *testing.T) {
	flow := &mockFlowScorer{
		predictFn: func(features []float64) int {
			if len(features) != 9 {
				t.Fatalf("expected 9 features, got %d", len(features))
			}
			// location_id rides in position 6.
			if features[6] != 3 {
				t.Fatalf("expected location id 3, got %v", features[6])
			}
			return 180
		},
	}

	r := setupPredictRouter(flow, &mockIncidentScorer{})
	w := httptest.NewRecorder()
	body := `{"location_id": 3, "timestamp": "2024-05-06T14:30:00Z"}`
	req, _ := http.NewRequest("POST", "/predict/tourist-flow", bytes.NewBufferString(body))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		LocationID           int    `json:"location_id"`
		Timestamp            string `json:"timestamp"`
		PredictedTouristFlow int    `json:"predicted_tourist_flow"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.PredictedTouristFlow != 180 {
		t.Errorf("expected 180, got %d", resp.PredictedTouristFlow)
	}
	if resp.LocationID != 3 {
		t.Errorf("expected location id 3, got %d", resp.LocationID)
	}
	if resp.Timestamp != "2024-05-06T14:30:00Z" {
		t.Errorf("unexpected timestamp: %s", resp.Timestamp)
	}
}

func TestPredictFlow_MissingLocationID(t *testing.T) {
	r := setupPredictRouter(&mockFlowScorer{}, &mockIncidentScorer{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/predict/tourist-flow", bytes.NewBufferString(`{}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPredictFlow_InvalidTimestamp(t *testing.T) {
	r := setupPredictRouter(&mockFlowScorer{}, &mockIncidentScorer{})
	w := httptest.NewRecorder()
	body := `{"location_id": 3, "timestamp": "tomorrow"}`
	req, _ := http.NewRequest("POST", "/predict/tourist-flow", bytes.NewBufferString(body))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPredictIncident_Bands(t *testing.T) {
	cases := []struct {
		prob float64
		band string
	}{
		{0.85, "high"},
		{0.5, "medium"},
		{0.1, "low"},
	}
	for _, tc := range cases {
		incident := &mockIncidentScorer{
			predictFn: func([]float64) float64 { return tc.prob },
		}

		r := setupPredictRouter(&mockFlowScorer{}, incident)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/predict/incident-probability", bytes.NewBufferString(`{}`))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			IncidentProbability float64 `json:"incident_probability"`
			RiskLevel           string  `json:"risk_level"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.RiskLevel != tc.band {
			t.Errorf("prob %v: expected band %s, got %s", tc.prob, tc.band, resp.RiskLevel)
		}
		if resp.IncidentProbability != tc.prob {
			t.Errorf("expected probability %v, got %v", tc.prob, resp.IncidentProbability)
		}
	}
}

func TestPredictIncident_PassesNestedInputs(t *testing.T) {
	incident := &mockIncidentScorer{
		predictFn: func(features []float64) float64 {
			want := []float64{9, 120, 3, 8, 2, 8, 4}
			for i, v := range want {
				if features[i] != v {
					t.Fatalf("feature %d: expected %v, got %v", i, v, features[i])
				}
			}
			return 0.4
		},
	}

	r := setupPredictRouter(&mockFlowScorer{}, incident)
	w := httptest.NewRecorder()
	body := `{
		"location_data": {"risk_score": 9, "tourist_density": 120},
		"tourist_data": {"safety_score": 3, "experience_level_score": 8},
		"environmental_data": {"weather_score": 2, "time_of_day_risk": 8, "visibility_score": 4}
	}`
	req, _ := http.NewRequest("POST", "/predict/incident-probability", bytes.NewBufferString(body))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
