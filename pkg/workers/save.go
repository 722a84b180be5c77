package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/reversi/pkg/log"
	"github.com/cbodonnell/reversi/pkg/repositories"
	"github.com/cbodonnell/reversi/pkg/serialize"
	"github.com/cbodonnell/reversi/pkg/state"
)

type SaveStateWorker struct {
	repository    repositories.Repository
	saveStateChan <-chan SaveStateRequest
	stateManager  state.StateManager
	interval      time.Duration
}

type NewSaveStateWorkerOptions struct {
	Repository    repositories.Repository
	SaveStateChan <-chan SaveStateRequest
	StateManager  state.StateManager
	Interval      time.Duration
}

type SaveStateRequest struct {
	Encoded string
}

// NewSaveStateWorker creates a new SaveStateWorker. The worker
// persists committed snapshots sent by the driver and periodically
// flushes the current game state to the repository. Persistence
// failures are logged, not retried.
func NewSaveStateWorker(opts NewSaveStateWorkerOptions) *SaveStateWorker {
	return &SaveStateWorker{
		repository:    opts.Repository,
		saveStateChan: opts.SaveStateChan,
		stateManager:  opts.StateManager,
		interval:      opts.Interval,
	}
}

func (w *SaveStateWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case saveRequest := <-w.saveStateChan:
			w.saveState(ctx, saveRequest.Encoded)
		case <-ticker.C:
			gameState, err := w.stateManager.Get(ctx)
			if err != nil {
				log.Error("Failed to get current game state: %v", err)
				continue
			}
			w.saveState(ctx, serialize.Encode(gameState))
		}
	}
}

func (w *SaveStateWorker) saveState(ctx context.Context, encoded string) {
	if err := w.repository.SaveState(ctx, encoded); err != nil {
		log.Error("Failed to save game state: %v", err)
	}
}
