package main

import "github.com/cbodonnell/reversi/pkg/game"

// MovePlayedEvent is published after a move has been committed.
// Flipped preserves the engine's flip order for rendering.
type MovePlayedEvent struct {
	Side    game.Disk
	X       int
	Y       int
	Flipped []game.Coordinate
}

// TurnPassedEvent is published when a side has no legal move and the
// opponent moves again.
type TurnPassedEvent struct {
	Side game.Disk
}

// GameOverEvent is published when neither side has a legal move.
// Winner is nil on a tie.
type GameOverEvent struct {
	Winner *game.Disk
}
