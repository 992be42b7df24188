package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/samartharora25/SafeRove-Final/module/core/internal/repository/publisher"
)

var _ publisher.Notifier = (*AlertNotifier)(nil)

const (
	exchangeName = "saferove.events"
	queueName    = "geofence_alerts"
)

// AlertNotifier publishes alert messages on a durable fanout exchange so
// emergency contacts, police dashboards, and the event listener all receive
// them.
type AlertNotifier struct {
	ch *amqp.Channel
}

func NewAlertNotifier(conn *amqp.Connection) (*AlertNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &AlertNotifier{ch: ch}, nil
}

type notifyMessage struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

func (n *AlertNotifier) Notify(ctx context.Context, message string) error {
	body, err := json.Marshal(notifyMessage{
		Message:   message,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	return n.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
