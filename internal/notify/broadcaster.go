// Package notify carries the cache-invalidation signal between
// portfolio views. Signals have no payload: a receiver reacts by
// re-fetching the authoritative record, so delivery is idempotent and
// duplicates or drops are harmless.
package notify

import "context"

// Broadcaster is the invalidation channel between a writer and every
// other live view of the portfolio record.
type Broadcaster interface {
	// Publish signals that the portfolio record changed.
	Publish(ctx context.Context) error

	// Subscribe returns a channel that receives a tick per published
	// signal (coalescing allowed) and a stop function releasing the
	// subscription.
	Subscribe(ctx context.Context) (<-chan struct{}, func())
}
