// Package agents provides the player agents that choose moves for each
// side of a game.
package agents

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/cbodonnell/reversi/pkg/game"
)

// PlayerAgent chooses a move for a side. Implementations must return a
// coordinate drawn from the side's valid moves.
type PlayerAgent interface {
	ChooseMove(ctx context.Context, s *game.GameState, side game.Disk) (game.Coordinate, error)
}

// ForMode returns the agent that should act for the given player mode.
func ForMode(mode game.PlayerMode, manual, automatic PlayerAgent) PlayerAgent {
	if mode == game.PlayerModeAutomatic {
		return automatic
	}
	return manual
}

// RandomAgent chooses uniformly at random among the legal moves.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed int64) *RandomAgent {
	return &RandomAgent{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (a *RandomAgent) ChooseMove(ctx context.Context, s *game.GameState, side game.Disk) (game.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return game.Coordinate{}, err
	}
	moves := s.ValidMoves(side)
	if len(moves) == 0 {
		return game.Coordinate{}, fmt.Errorf("no valid moves for %s", side)
	}
	return moves[a.rng.Intn(len(moves))], nil
}

// ChooseFunc supplies a move from an external input source, such as a
// terminal prompt.
type ChooseFunc func(ctx context.Context, s *game.GameState, side game.Disk) (game.Coordinate, error)

// ManualAgent defers move selection to a ChooseFunc provided by the
// driver.
type ManualAgent struct {
	choose ChooseFunc
}

func NewManualAgent(choose ChooseFunc) *ManualAgent {
	return &ManualAgent{
		choose: choose,
	}
}

func (a *ManualAgent) ChooseMove(ctx context.Context, s *game.GameState, side game.Disk) (game.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return game.Coordinate{}, err
	}
	return a.choose(ctx, s, side)
}
