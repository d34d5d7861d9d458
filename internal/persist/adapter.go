// Package persist maps user identities to durable planner-state slots.
// The adapter only serializes and deserializes snapshots; it never retains
// a reference to the live aggregate.
package persist

import (
	"context"
	"errors"

	"github.com/chayilhub/chayil/internal/domain"
)

// ErrNotFound signals an absent slot. Callers treat it as first-run and
// seed canonical defaults rather than failing.
var ErrNotFound = errors.New("planner state not found")

// namespace prefixes every storage key so distinct users on the same store
// never see each other's data. The value matches the original front-end's
// localStorage namespace, keeping old payloads loadable.
const namespace = "chayil_v3_data"

// StorageKey derives the slot key for a user identity.
func StorageKey(userID string) string {
	return namespace + "_" + userID
}

// Adapter loads and saves the full aggregate as an opaque serialized blob,
// keyed per user.
type Adapter interface {
	// Load returns the stored aggregate for the user, or ErrNotFound when
	// the slot is absent or its payload cannot be decoded.
	Load(ctx context.Context, userID string) (*domain.PlannerState, error)

	// Save overwrites the user's slot with the given aggregate.
	Save(ctx context.Context, userID string, state domain.PlannerState) error
}
