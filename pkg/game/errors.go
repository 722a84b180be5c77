package game

import "fmt"

type ErrIllegalMove struct {
	X int
	Y int
}

func (e *ErrIllegalMove) Error() string {
	return fmt.Sprintf("illegal move at (%d, %d)", e.X, e.Y)
}

func IsIllegalMove(err error) bool {
	_, ok := err.(*ErrIllegalMove)
	return ok
}

type ErrGameOver struct {
}

func (e *ErrGameOver) Error() string {
	return "game is over"
}

func IsGameOver(err error) bool {
	_, ok := err.(*ErrGameOver)
	return ok
}
