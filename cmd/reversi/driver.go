package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cbodonnell/reversi/pkg/agents"
	"github.com/cbodonnell/reversi/pkg/game"
	"github.com/cbodonnell/reversi/pkg/log"
	"github.com/cbodonnell/reversi/pkg/queue"
	"github.com/cbodonnell/reversi/pkg/serialize"
	"github.com/cbodonnell/reversi/pkg/state"
	"github.com/cbodonnell/reversi/pkg/workers"
)

// Driver owns the game loop: it requests a move from the active
// player's agent, applies it through the rules engine, commits the
// resulting state, publishes events for rendering and hands the
// committed snapshot to the save worker. All access to the game state
// is serialized through the state manager.
type Driver struct {
	stateManager   state.StateManager
	eventQueue     queue.Queue
	saveStateChan  chan<- workers.SaveStateRequest
	manualAgent    agents.PlayerAgent
	automaticAgent agents.PlayerAgent
	autoDelay      time.Duration
	out            io.Writer
}

type NewDriverOptions struct {
	StateManager   state.StateManager
	EventQueue     queue.Queue
	SaveStateChan  chan<- workers.SaveStateRequest
	ManualAgent    agents.PlayerAgent
	AutomaticAgent agents.PlayerAgent
	AutoDelay      time.Duration
	Out            io.Writer
}

func NewDriver(opts NewDriverOptions) *Driver {
	return &Driver{
		stateManager:   opts.StateManager,
		eventQueue:     opts.EventQueue,
		saveStateChan:  opts.SaveStateChan,
		manualAgent:    opts.ManualAgent,
		automaticAgent: opts.AutomaticAgent,
		autoDelay:      opts.AutoDelay,
		out:            opts.Out,
	}
}

// Run plays the game to completion. It returns nil when the game ends
// or manual input is exhausted, and the context error when cancelled.
func (d *Driver) Run(ctx context.Context) error {
	for {
		gameState, err := d.stateManager.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to get game state: %v", err)
		}

		fmt.Fprintln(d.out, renderBoard(gameState))
		if gameState.Turn == nil {
			d.announceResult(gameState)
			return nil
		}
		side := *gameState.Turn
		mode := gameState.ModeFor(side)

		if mode == game.PlayerModeAutomatic && d.autoDelay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.autoDelay):
			}
		}

		agent := agents.ForMode(mode, d.manualAgent, d.automaticAgent)
		move, err := agent.ChooseMove(ctx, gameState, side)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Warn("Failed to choose a move for %s: %v", side, err)
			continue
		}

		next, flipped, err := gameState.ApplyMove(side, move.X, move.Y)
		if err != nil {
			if game.IsIllegalMove(err) {
				log.Warn("Rejected move by %s: %v", side, err)
				continue
			}
			return fmt.Errorf("failed to apply move: %v", err)
		}
		turnEvent := next.AdvanceTurn()

		if err := d.stateManager.Set(ctx, next); err != nil {
			return fmt.Errorf("failed to commit game state: %v", err)
		}

		d.publish(MovePlayedEvent{Side: side, X: move.X, Y: move.Y, Flipped: flipped})
		switch turnEvent {
		case game.TurnPassed:
			d.publish(TurnPassedEvent{Side: side.Flipped()})
		case game.TurnGameOver:
			event := GameOverEvent{}
			if winner, ok := next.SideWithMoreDisks(); ok {
				event.Winner = &winner
			}
			d.publish(event)
		}

		d.saveStateChan <- workers.SaveStateRequest{Encoded: serialize.Encode(next)}

		d.drainEvents()
	}
}

func (d *Driver) publish(event interface{}) {
	if err := d.eventQueue.Enqueue(event); err != nil {
		log.Warn("Failed to enqueue event: %v", err)
	}
}

// drainEvents renders every event committed since the last drain.
func (d *Driver) drainEvents() {
	events, err := d.eventQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read events: %v", err)
		return
	}
	for _, item := range events {
		switch event := item.(type) {
		case MovePlayedEvent:
			log.Debug("%s played (%d, %d) flipping %d disks", event.Side, event.X, event.Y, len(event.Flipped))
		case TurnPassedEvent:
			fmt.Fprintf(d.out, "%s has no legal move and passes\n", event.Side)
		case GameOverEvent:
			fmt.Fprintln(d.out, "no legal moves remain")
		default:
			log.Warn("Unknown event type: %T", event)
		}
	}
}

func (d *Driver) announceResult(gameState *game.GameState) {
	if winner, ok := gameState.SideWithMoreDisks(); ok {
		fmt.Fprintf(d.out, "%s wins %d to %d\n", winner,
			gameState.CountDisks(winner), gameState.CountDisks(winner.Flipped()))
		return
	}
	fmt.Fprintln(d.out, "the game is a tie")
}
