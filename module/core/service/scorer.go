package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/samartharora25/SafeRove-Final/module/core/internal/repository/artifact"
	"github.com/samartharora25/SafeRove-Final/module/core/metrics"
)

// Documented fallback outputs when no trained artifact is available.
const (
	DefaultSafetyScore         = 5
	DefaultFlowEstimate        = 50
	DefaultIncidentProbability = 0.25
)

// Artifact names within the store.
const (
	safetyArtifact   = "safety_model.json"
	flowArtifact     = "flow_model.json"
	incidentArtifact = "incident_model.json"
)

const (
	kindLinear   = "linear"
	kindLogistic = "logistic"
)

// Training hyperparameters. Deterministic: zero init, fixed schedule.
const (
	trainEpochs       = 500
	trainLearningRate = 0.05
)

// Scaler holds a learned per-feature standardization transform.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

func (s *Scaler) transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - s.Mean[i]) / s.Std[i]
	}
	return out
}

// ModelArtifact is the persisted form of a trained model: weights and bias,
// plus the scaler when the scorer standardizes its input. Model and scaler
// are persisted jointly so they can never go out of sync.
type ModelArtifact struct {
	Kind    string    `json:"kind"`
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
	Scaler  *Scaler   `json:"scaler,omitempty"`
}

// predictor is the shared load/train/infer core behind the three scorers.
// The model pointer is immutable once set; Load and Train swap it whole.
type predictor struct {
	mu    sync.RWMutex
	store artifact.Store
	name  string
	kind  string
	scale bool
	log   zerolog.Logger
	model *ModelArtifact
}

// Load reads the named artifact once at process start. A failed load leaves
// the predictor in the defaulted state; scoring never fails a request.
func (p *predictor) Load() error {
	data, err := p.store.Read(p.name)
	if err != nil {
		return fmt.Errorf("load %s: %w", p.name, err)
	}
	var m ModelArtifact
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("load %s: %w", p.name, err)
	}
	if len(m.Weights) == 0 {
		return fmt.Errorf("load %s: artifact has no weights", p.name)
	}
	p.mu.Lock()
	p.model = &m
	p.mu.Unlock()
	return nil
}

// raw evaluates the model on the feature vector. The second return is false
// when no usable model is loaded and the caller must serve its default.
func (p *predictor) raw(features []float64) (float64, bool) {
	p.mu.RLock()
	m := p.model
	p.mu.RUnlock()

	if m == nil || len(m.Weights) != len(features) {
		metrics.ScorerFallbacksTotal.WithLabelValues(p.name).Inc()
		return 0, false
	}

	x := features
	if m.Scaler != nil && len(m.Scaler.Mean) == len(x) {
		x = m.Scaler.transform(x)
	}

	v := m.Bias
	for i, w := range m.Weights {
		v += w * x[i]
	}
	if m.Kind == kindLogistic {
		v = sigmoid(v)
	}
	return v, true
}

// Train fits the scaler and model jointly on the labeled vectors and
// persists the result through the artifact store. Synchronous and blocking;
// a persistence failure fails only this call, leaving the previous model in
// place.
func (p *predictor) Train(x [][]float64, y []float64) error {
	if len(x) == 0 || len(x) != len(y) {
		return errors.New("training data: need equal, non-zero feature and label counts")
	}

	m := ModelArtifact{Kind: p.kind}
	samples := x
	if p.scale {
		m.Scaler = fitScaler(x)
		samples = make([][]float64, len(x))
		for i, row := range x {
			samples[i] = m.Scaler.transform(row)
		}
	}

	m.Weights, m.Bias = fit(p.kind, samples, y)

	data, err := json.Marshal(&m)
	if err != nil {
		return fmt.Errorf("train %s: %w", p.name, err)
	}
	if err := p.store.Write(p.name, data); err != nil {
		return fmt.Errorf("train %s: %w", p.name, err)
	}

	p.mu.Lock()
	p.model = &m
	p.mu.Unlock()

	p.log.Info().Str("artifact", p.name).Int("samples", len(x)).Msg("model trained")
	return nil
}

func fitScaler(x [][]float64) *Scaler {
	cols := len(x[0])
	mean := make([]float64, cols)
	std := make([]float64, cols)

	for _, row := range x {
		for i, v := range row {
			mean[i] += v
		}
	}
	n := float64(len(x))
	for i := range mean {
		mean[i] /= n
	}
	for _, row := range x {
		for i, v := range row {
			d := v - mean[i]
			std[i] += d * d
		}
	}
	for i := range std {
		std[i] = math.Sqrt(std[i] / n)
		if std[i] == 0 {
			std[i] = 1
		}
	}
	return &Scaler{Mean: mean, Std: std}
}

// fit runs batch gradient descent from a zero start. Least squares for
// linear models, cross-entropy for logistic.
func fit(kind string, x [][]float64, y []float64) ([]float64, float64) {
	cols := len(x[0])
	w := make([]float64, cols)
	b := 0.0
	n := float64(len(x))

	for epoch := 0; epoch < trainEpochs; epoch++ {
		gradW := make([]float64, cols)
		gradB := 0.0
		for i, row := range x {
			pred := b
			for j, wj := range w {
				pred += wj * row[j]
			}
			if kind == kindLogistic {
				pred = sigmoid(pred)
			}
			err := pred - y[i]
			for j, v := range row {
				gradW[j] += err * v
			}
			gradB += err
		}
		for j := range w {
			w[j] -= trainLearningRate * gradW[j] / n
		}
		b -= trainLearningRate * gradB / n
	}
	return w, b
}

func sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}

// SafetyScorer predicts a tourist safety score on the 1-10 scale from the
// SafetyFeatures vector. Standardizes input; defaults to 5.
type SafetyScorer struct {
	predictor
}

func NewSafetyScorer(store artifact.Store, log zerolog.Logger) *SafetyScorer {
	return &SafetyScorer{predictor{
		store: store,
		name:  safetyArtifact,
		kind:  kindLinear,
		scale: true,
		log:   log,
	}}
}

func (s *SafetyScorer) Predict(features []float64) int {
	v, ok := s.raw(features)
	if !ok {
		return DefaultSafetyScore
	}
	score := int(v)
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}

// FlowScorer predicts expected tourist volume at a location from the
// FlowFeatures vector. Standardizes input; defaults to 50.
type FlowScorer struct {
	predictor
}

func NewFlowScorer(store artifact.Store, log zerolog.Logger) *FlowScorer {
	return &FlowScorer{predictor{
		store: store,
		name:  flowArtifact,
		kind:  kindLinear,
		scale: true,
		log:   log,
	}}
}

func (s *FlowScorer) Predict(features []float64) int {
	v, ok := s.raw(features)
	if !ok {
		return DefaultFlowEstimate
	}
	flow := int(v)
	if flow < 0 {
		flow = 0
	}
	return flow
}

// IncidentScorer predicts the positive-class incident probability from the
// IncidentFeatures vector. No standardization; defaults to 0.25.
type IncidentScorer struct {
	predictor
}

func NewIncidentScorer(store artifact.Store, log zerolog.Logger) *IncidentScorer {
	return &IncidentScorer{predictor{
		store: store,
		name:  incidentArtifact,
		kind:  kindLogistic,
		scale: false,
		log:   log,
	}}
}

func (s *IncidentScorer) Predict(features []float64) float64 {
	v, ok := s.raw(features)
	if !ok {
		return DefaultIncidentProbability
	}
	return v
}
