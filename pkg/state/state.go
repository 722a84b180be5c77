package state

import (
	"context"

	"github.com/cbodonnell/reversi/pkg/game"
)

// StateManager provides shared access to the current game state.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns a copy of the current game state.
	Get(ctx context.Context) (*game.GameState, error)
	// Set replaces the current game state.
	Set(ctx context.Context, gameState *game.GameState) error
}
