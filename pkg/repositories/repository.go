// Package repositories persists the serialized game behind a single
// flat save slot: saving overwrites the slot, loading returns the most
// recently saved snapshot.
package repositories

import (
	"context"
)

type Repository interface {
	Close(ctx context.Context) error
	// SaveState overwrites the save slot with the encoded game state.
	SaveState(ctx context.Context, encoded string) error
	// LoadState returns the encoded game state in the save slot, or
	// ErrNotFound when the slot is empty.
	LoadState(ctx context.Context) (string, error)
	// ClearState empties the save slot. Clearing an empty slot is
	// not an error.
	ClearState(ctx context.Context) error
}
