package interfaces

import "context"

// INotifier delivers a user-facing notification for a state transition.
// Delivery is best effort: usecases log failures and never let a notification
// error fail the transition that triggered it.

type INotifier interface {
	Notify(ctx context.Context, userID, template string, payload map[string]any) error
}
