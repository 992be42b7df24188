package publisher

import "context"

// Notifier is the outbound alert channel. Delivery is best effort; callers
// log failures and never propagate them into the assessment result.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
