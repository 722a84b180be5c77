package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowBoard builds a single-row board from optional disks, nil meaning
// an empty cell.
func rowBoard(cells ...*Disk) *Board {
	return NewBoardFromCells([][]*Disk{cells})
}

func disk(d Disk) *Disk {
	return &d
}

func stateWithTurn(turn Disk, board *Board) *GameState {
	return &GameState{
		Turn:  &turn,
		Board: board,
	}
}

func TestGameState_FlippedDiskCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		state *GameState
		disk  Disk
		x     int
		y     int
		want  []Coordinate
	}{
		{
			name:  "occupied cell flips nothing",
			state: stateWithTurn(DiskDark, NewStandardBoard()),
			disk:  DiskDark,
			x:     3,
			y:     3,
			want:  nil,
		},
		{
			name:  "out of range flips nothing",
			state: stateWithTurn(DiskDark, NewStandardBoard()),
			disk:  DiskDark,
			x:     -1,
			y:     0,
			want:  nil,
		},
		{
			name:  "opening move flips the single enclosed disk",
			state: stateWithTurn(DiskDark, NewStandardBoard()),
			disk:  DiskDark,
			x:     3,
			y:     2,
			want:  []Coordinate{{X: 3, Y: 3}},
		},
		{
			name:  "run ending at the board edge flips nothing",
			state: stateWithTurn(DiskDark, rowBoard(disk(DiskLight), disk(DiskLight), nil)),
			disk:  DiskDark,
			x:     2,
			y:     0,
			want:  nil,
		},
		{
			name:  "run ending at an empty cell flips nothing",
			state: stateWithTurn(DiskDark, rowBoard(nil, disk(DiskLight), nil, disk(DiskDark))),
			disk:  DiskDark,
			x:     0,
			y:     0,
			want:  nil,
		},
		{
			name:  "adjacent same color contributes nothing",
			state: stateWithTurn(DiskDark, rowBoard(nil, disk(DiskDark), disk(DiskLight), disk(DiskDark))),
			disk:  DiskDark,
			x:     0,
			y:     0,
			want:  nil,
		},
		{
			name:  "full run is collected nearest first",
			state: stateWithTurn(DiskDark, rowBoard(nil, disk(DiskLight), disk(DiskLight), disk(DiskDark))),
			disk:  DiskDark,
			x:     0,
			y:     0,
			want:  []Coordinate{{X: 1, Y: 0}, {X: 2, Y: 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.FlippedDiskCoordinates(tt.disk, tt.x, tt.y)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGameState_ValidMovesAtOpening(t *testing.T) {
	s := NewGameState(PlayerModeManual, PlayerModeManual)

	want := []Coordinate{
		{X: 3, Y: 2},
		{X: 2, Y: 3},
		{X: 5, Y: 4},
		{X: 4, Y: 5},
	}
	assert.ElementsMatch(t, want, s.ValidMoves(DiskDark))

	wantLight := []Coordinate{
		{X: 4, Y: 2},
		{X: 5, Y: 3},
		{X: 2, Y: 4},
		{X: 3, Y: 5},
	}
	assert.ElementsMatch(t, wantLight, s.ValidMoves(DiskLight))

	for _, move := range want {
		assert.True(t, s.CanPlaceDisk(DiskDark, move.X, move.Y))
	}
	assert.False(t, s.CanPlaceDisk(DiskDark, 0, 0))
}

func TestGameState_ApplyMove(t *testing.T) {
	t.Run("opening move", func(t *testing.T) {
		s := NewGameState(PlayerModeManual, PlayerModeManual)

		next, flipped, err := s.ApplyMove(DiskDark, 3, 2)
		require.NoError(t, err)
		assert.Equal(t, []Coordinate{{X: 3, Y: 3}}, flipped)
		assert.Equal(t, 4, next.CountDisks(DiskDark))
		assert.Equal(t, 1, next.CountDisks(DiskLight))

		// The receiver is untouched.
		assert.Equal(t, 2, s.CountDisks(DiskDark))
		assert.Equal(t, 2, s.CountDisks(DiskLight))
	})

	t.Run("count deltas", func(t *testing.T) {
		s := NewGameState(PlayerModeManual, PlayerModeManual)
		side := DiskDark
		for i := 0; i < 4; i++ {
			moves := s.ValidMoves(side)
			require.NotEmpty(t, moves)
			darkBefore := s.CountDisks(DiskDark)
			lightBefore := s.CountDisks(DiskLight)

			next, flipped, err := s.ApplyMove(side, moves[0].X, moves[0].Y)
			require.NoError(t, err)
			require.NotEmpty(t, flipped)

			if side == DiskDark {
				assert.Equal(t, darkBefore+1+len(flipped), next.CountDisks(DiskDark))
				assert.Equal(t, lightBefore-len(flipped), next.CountDisks(DiskLight))
			} else {
				assert.Equal(t, lightBefore+1+len(flipped), next.CountDisks(DiskLight))
				assert.Equal(t, darkBefore-len(flipped), next.CountDisks(DiskDark))
			}
			assert.Equal(t, darkBefore+lightBefore+1, next.CountDisks(DiskDark)+next.CountDisks(DiskLight))

			require.Equal(t, TurnAdvanced, next.AdvanceTurn())
			s = next
			side = *s.Turn
		}
	})

	t.Run("illegal target is rejected", func(t *testing.T) {
		s := NewGameState(PlayerModeManual, PlayerModeManual)
		before := s.Copy()

		_, _, err := s.ApplyMove(DiskDark, 0, 0)
		assert.True(t, IsIllegalMove(err))
		_, _, err = s.ApplyMove(DiskDark, 3, 3)
		assert.True(t, IsIllegalMove(err))
		assert.Equal(t, before, s)
	})

	t.Run("wrong side is rejected", func(t *testing.T) {
		s := NewGameState(PlayerModeManual, PlayerModeManual)
		_, _, err := s.ApplyMove(DiskLight, 2, 2)
		assert.True(t, IsIllegalMove(err))
	})

	t.Run("finished game is rejected", func(t *testing.T) {
		s := NewGameState(PlayerModeManual, PlayerModeManual)
		s.Turn = nil
		_, _, err := s.ApplyMove(DiskDark, 3, 2)
		assert.True(t, IsGameOver(err))
	})
}

func TestGameState_AdvanceTurn(t *testing.T) {
	tests := []struct {
		name      string
		state     *GameState
		want      TurnEvent
		wantTurn  *Disk
		wantNoEnd bool
	}{
		{
			name:     "opponent has a move",
			state:    stateWithTurn(DiskDark, NewStandardBoard()),
			want:     TurnAdvanced,
			wantTurn: disk(DiskLight),
		},
		{
			// dark, light, empty: light cannot move but dark can,
			// so light passes and dark moves again.
			name:     "opponent passes",
			state:    stateWithTurn(DiskDark, rowBoard(disk(DiskDark), disk(DiskLight), nil)),
			want:     TurnPassed,
			wantTurn: disk(DiskDark),
		},
		{
			name:     "neither side can move",
			state:    stateWithTurn(DiskDark, rowBoard(disk(DiskDark), disk(DiskLight), disk(DiskDark))),
			want:     TurnGameOver,
			wantTurn: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.AdvanceTurn()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantTurn, tt.state.Turn)
		})
	}

	t.Run("finished game stays finished", func(t *testing.T) {
		s := &GameState{Board: NewStandardBoard()}
		assert.Equal(t, TurnGameOver, s.AdvanceTurn())
		assert.Nil(t, s.Turn)
	})
}

func TestGameState_SideWithMoreDisks(t *testing.T) {
	tests := []struct {
		name         string
		board        *Board
		wantSide     Disk
		wantMajority bool
	}{
		{
			name:         "dark majority",
			board:        rowBoard(disk(DiskDark), disk(DiskLight), disk(DiskDark)),
			wantSide:     DiskDark,
			wantMajority: true,
		},
		{
			name:         "light majority",
			board:        rowBoard(disk(DiskLight), disk(DiskLight), disk(DiskDark)),
			wantSide:     DiskLight,
			wantMajority: true,
		},
		{
			name:         "tie",
			board:        rowBoard(disk(DiskDark), disk(DiskLight)),
			wantMajority: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &GameState{Board: tt.board}
			side, majority := s.SideWithMoreDisks()
			assert.Equal(t, tt.wantMajority, majority)
			if tt.wantMajority {
				assert.Equal(t, tt.wantSide, side)
			}
		})
	}
}

func TestGameState_PlayToCompletion(t *testing.T) {
	s := NewGameState(PlayerModeManual, PlayerModeManual)

	for s.Turn != nil {
		side := *s.Turn
		moves := s.ValidMoves(side)
		require.NotEmpty(t, moves, "the side to move must always have a legal move")

		next, _, err := s.ApplyMove(side, moves[0].X, moves[0].Y)
		require.NoError(t, err)
		next.AdvanceTurn()
		s = next
	}

	assert.Empty(t, s.ValidMoves(DiskDark))
	assert.Empty(t, s.ValidMoves(DiskLight))

	// The result is well defined once the game has ended.
	side, majority := s.SideWithMoreDisks()
	if majority {
		assert.Contains(t, Sides, side)
	}
}

func TestGameState_ModeFor(t *testing.T) {
	s := NewGameState(PlayerModeManual, PlayerModeAutomatic)
	assert.Equal(t, PlayerModeManual, s.ModeFor(DiskDark))
	assert.Equal(t, PlayerModeAutomatic, s.ModeFor(DiskLight))
}

func TestGameState_Copy(t *testing.T) {
	s := NewGameState(PlayerModeManual, PlayerModeAutomatic)
	copied := s.Copy()
	assert.Equal(t, s, copied)

	copied.Board.SetDisk(DiskDark, 0, 0)
	*copied.Turn = DiskLight
	assert.Equal(t, 2, s.CountDisks(DiskDark))
	assert.Equal(t, DiskDark, *s.Turn)
}
