// Package serialize implements the line-oriented text format used to
// persist a game: a three-character header of turn symbol and player
// mode digits, followed by one line per board row.
package serialize

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/reversi/pkg/game"
)

const (
	symbolDark  = 'x'
	symbolLight = 'o'
	symbolNone  = '-'
)

// Encode serializes a game state. The first line is the header
// <turn><player1 mode><player2 mode>, followed by one line per board
// row with one symbol per cell.
func Encode(s *game.GameState) string {
	var sb strings.Builder
	sb.WriteByte(turnSymbol(s.Turn))
	sb.WriteByte(modeDigit(s.Players[0]))
	sb.WriteByte(modeDigit(s.Players[1]))
	for y := 0; y < s.Board.Height(); y++ {
		sb.WriteByte('\n')
		for x := 0; x < s.Board.RowWidth(y); x++ {
			if disk, ok := s.Board.DiskAt(x, y); ok {
				sb.WriteByte(diskSymbol(disk))
			} else {
				sb.WriteByte(symbolNone)
			}
		}
	}
	return sb.String()
}

// Decode parses serialized text back into a game state. It fails with
// ErrFormat on a short header, an unrecognized turn or cell symbol, or
// a mode digit outside {0, 1}. It does not validate that rows have
// equal widths or match any expected board size; that cross-check
// belongs to the caller.
func Decode(text string) (*game.GameState, error) {
	lines := strings.Split(text, "\n")

	header := lines[0]
	if len(header) < 3 {
		return nil, &ErrFormat{Reason: fmt.Sprintf("header %q is shorter than 3 characters", header)}
	}
	turn, err := decodeTurn(header[0])
	if err != nil {
		return nil, err
	}
	player1, err := decodeMode(header[1])
	if err != nil {
		return nil, err
	}
	player2, err := decodeMode(header[2])
	if err != nil {
		return nil, err
	}

	cells := make([][]*game.Disk, 0, len(lines)-1)
	for _, line := range lines[1:] {
		row := make([]*game.Disk, len(line))
		for x := 0; x < len(line); x++ {
			cell, err := decodeCell(line[x])
			if err != nil {
				return nil, err
			}
			row[x] = cell
		}
		cells = append(cells, row)
	}

	return &game.GameState{
		Turn:    turn,
		Players: [2]game.PlayerMode{player1, player2},
		Board:   game.NewBoardFromCells(cells),
	}, nil
}

func turnSymbol(turn *game.Disk) byte {
	if turn == nil {
		return symbolNone
	}
	return diskSymbol(*turn)
}

func diskSymbol(d game.Disk) byte {
	if d == game.DiskDark {
		return symbolDark
	}
	return symbolLight
}

func modeDigit(m game.PlayerMode) byte {
	if m == game.PlayerModeAutomatic {
		return '1'
	}
	return '0'
}

func decodeTurn(c byte) (*game.Disk, error) {
	switch c {
	case symbolNone:
		return nil, nil
	case symbolDark:
		turn := game.DiskDark
		return &turn, nil
	case symbolLight:
		turn := game.DiskLight
		return &turn, nil
	default:
		return nil, &ErrFormat{Reason: fmt.Sprintf("unrecognized turn symbol %q", c)}
	}
}

func decodeMode(c byte) (game.PlayerMode, error) {
	switch c {
	case '0':
		return game.PlayerModeManual, nil
	case '1':
		return game.PlayerModeAutomatic, nil
	default:
		return 0, &ErrFormat{Reason: fmt.Sprintf("unrecognized player mode %q", c)}
	}
}

func decodeCell(c byte) (*game.Disk, error) {
	switch c {
	case symbolNone:
		return nil, nil
	case symbolDark:
		disk := game.DiskDark
		return &disk, nil
	case symbolLight:
		disk := game.DiskLight
		return &disk, nil
	default:
		return nil, &ErrFormat{Reason: fmt.Sprintf("unrecognized cell symbol %q", c)}
	}
}
