package game

// PlayerMode determines how a side's moves are chosen.
type PlayerMode int

const (
	PlayerModeManual PlayerMode = iota
	PlayerModeAutomatic
)

func (m PlayerMode) String() string {
	switch m {
	case PlayerModeManual:
		return "manual"
	case PlayerModeAutomatic:
		return "automatic"
	default:
		return "unknown"
	}
}

// GameState is the complete state of one game. Turn is nil once the
// game has ended; that is the only end-of-game signal. Players[0]
// always controls dark, Players[1] always controls light.
type GameState struct {
	Turn    *Disk
	Players [2]PlayerMode
	Board   *Board
}

// NewGameState creates a game at the standard opening position with
// dark to move.
func NewGameState(dark, light PlayerMode) *GameState {
	turn := DiskDark
	return &GameState{
		Turn:    &turn,
		Players: [2]PlayerMode{dark, light},
		Board:   NewStandardBoard(),
	}
}

// Copy returns a deep copy of the game state.
func (s *GameState) Copy() *GameState {
	copied := &GameState{
		Players: s.Players,
		Board:   s.Board.Clone(),
	}
	if s.Turn != nil {
		turn := *s.Turn
		copied.Turn = &turn
	}
	return copied
}

// ModeFor returns the player mode controlling the given side.
func (s *GameState) ModeFor(d Disk) PlayerMode {
	if d == DiskDark {
		return s.Players[0]
	}
	return s.Players[1]
}

// CountDisks returns the number of disks of the given color on the board.
func (s *GameState) CountDisks(d Disk) int {
	return s.Board.CountDisks(d)
}

// SideWithMoreDisks returns the side holding the majority of disks.
// The second return value is false when the counts are equal. Only
// meaningful once the game has ended.
func (s *GameState) SideWithMoreDisks() (Disk, bool) {
	dark := s.Board.CountDisks(DiskDark)
	light := s.Board.CountDisks(DiskLight)
	switch {
	case dark > light:
		return DiskDark, true
	case light > dark:
		return DiskLight, true
	default:
		return DiskDark, false
	}
}
