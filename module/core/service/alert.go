package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
	"github.com/samartharora25/SafeRove-Final/module/core/internal/repository/publisher"
	"github.com/samartharora25/SafeRove-Final/module/core/metrics"
)

// AlertEmitter forwards geofence alerts through the notification channel.
// Delivery is best effort by policy: a failed notification is logged and
// counted, and the alert still appears in the returned assessment.
type AlertEmitter struct {
	notifier publisher.Notifier
	log      zerolog.Logger
}

func NewAlertEmitter(notifier publisher.Notifier, log zerolog.Logger) *AlertEmitter {
	return &AlertEmitter{notifier: notifier, log: log}
}

func (e *AlertEmitter) Emit(ctx context.Context, alert *domain.Alert) {
	msg := fmt.Sprintf("ALERT: Tourist %s entered high-risk zone (Risk: %d/10)",
		alert.TouristID, alert.RiskLevel)

	if err := e.notifier.Notify(ctx, msg); err != nil {
		metrics.NotifyFailuresTotal.Inc()
		e.log.Error().
			Err(err).
			Str("tourist_id", alert.TouristID).
			Int("risk_level", alert.RiskLevel).
			Msg("alert notification failed")
		return
	}
	metrics.AlertsEmittedTotal.Inc()
}
