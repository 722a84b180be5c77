package main

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/reversi/pkg/game"
)

// renderBoard draws the board with column and row indexes and the
// current disk counts.
func renderBoard(s *game.GameState) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for x := 0; x < s.Board.Width(); x++ {
		fmt.Fprintf(&sb, "%d ", x)
	}
	sb.WriteByte('\n')
	for y := 0; y < s.Board.Height(); y++ {
		fmt.Fprintf(&sb, "%d ", y)
		for x := 0; x < s.Board.RowWidth(y); x++ {
			disk, ok := s.Board.DiskAt(x, y)
			switch {
			case !ok:
				sb.WriteString(". ")
			case disk == game.DiskDark:
				sb.WriteString("x ")
			default:
				sb.WriteString("o ")
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "dark %d - light %d", s.CountDisks(game.DiskDark), s.CountDisks(game.DiskLight))
	return sb.String()
}
