package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/reversi/pkg/game"
)

type InMemoryStateManager struct {
	lock      sync.RWMutex
	gameState *game.GameState
}

func NewInMemoryStateManager(gameState *game.GameState) *InMemoryStateManager {
	return &InMemoryStateManager{
		gameState: gameState,
	}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (*game.GameState, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if m.gameState == nil {
		return nil, fmt.Errorf("no game state has been set")
	}

	return m.gameState.Copy(), nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, gameState *game.GameState) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if gameState == nil {
		return fmt.Errorf("game state is nil")
	}

	m.gameState = gameState
	return nil
}
