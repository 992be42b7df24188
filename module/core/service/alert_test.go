package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
)

func TestEmit_MessageFormat(t *testing.T) {
	notifier := &mockNotifier{}
	e := NewAlertEmitter(notifier, zerolog.Nop())

	e.Emit(context.Background(), &domain.Alert{
		ID:        "a-1",
		TouristID: "T-42",
		Timestamp: time.Now(),
		Location:  domain.LatLng{Lat: 26.1, Lng: 91.7},
		RiskLevel: 8,
		AlertType: domain.AlertGeofenceBreach,
	})

	if len(notifier.messages) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.messages))
	}
	want := "ALERT: Tourist T-42 entered high-risk zone (Risk: 8/10)"
	if notifier.messages[0] != want {
		t.Errorf("expected %q, got %q", want, notifier.messages[0])
	}
}

func TestEmit_NotifyFailureIsSwallowed(t *testing.T) {
	notifier := &mockNotifier{err: errors.New("channel closed")}
	e := NewAlertEmitter(notifier, zerolog.Nop())

	// Must not panic or propagate: delivery is best effort.
	e.Emit(context.Background(), &domain.Alert{
		ID:        "a-2",
		TouristID: "T-43",
		RiskLevel: 9,
		AlertType: domain.AlertGeofenceBreach,
	})

	if len(notifier.messages) != 1 {
		t.Errorf("expected notify to have been attempted once, got %d", len(notifier.messages))
	}
}
