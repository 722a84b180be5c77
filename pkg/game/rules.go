package game

// directions are the 8 compass directions, clockwise from north.
var directions = []Coordinate{
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
}

// FlippedDiskCoordinates returns the coordinates of every opposing disk
// that placing a disk of color d at (x, y) would flip. The result is
// empty when (x, y) is occupied, out of range, or the placement flips
// nothing. Directions are scanned clockwise from north and cells within
// a direction are ordered nearest-first, so the order is deterministic.
func (s *GameState) FlippedDiskCoordinates(d Disk, x, y int) []Coordinate {
	if !s.Board.inRange(x, y) {
		return nil
	}
	if _, occupied := s.Board.DiskAt(x, y); occupied {
		return nil
	}

	var flipped []Coordinate
	for _, dir := range directions {
		var run []Coordinate
		cx, cy := x+dir.X, y+dir.Y
		for {
			disk, ok := s.Board.DiskAt(cx, cy)
			if !ok {
				// Ran off the board or into an empty cell
				// before finding a terminator.
				run = nil
				break
			}
			if disk == d {
				break
			}
			run = append(run, Coordinate{X: cx, Y: cy})
			cx += dir.X
			cy += dir.Y
		}
		flipped = append(flipped, run...)
	}
	return flipped
}

// CanPlaceDisk reports whether placing a disk of color d at (x, y) is a
// legal move, i.e. it would flip at least one opposing disk.
func (s *GameState) CanPlaceDisk(d Disk, x, y int) bool {
	return len(s.FlippedDiskCoordinates(d, x, y)) > 0
}

// ValidMoves returns every coordinate where the given side can legally
// place a disk, in row-major order.
func (s *GameState) ValidMoves(d Disk) []Coordinate {
	var moves []Coordinate
	for y := 0; y < s.Board.Height(); y++ {
		for x := 0; x < s.Board.RowWidth(y); x++ {
			if s.CanPlaceDisk(d, x, y) {
				moves = append(moves, Coordinate{X: x, Y: y})
			}
		}
	}
	return moves
}

// ApplyMove places a disk of color d at (x, y) and flips the captured
// disks, returning the resulting state and the flipped coordinates.
// The receiver is never mutated. It returns ErrGameOver when the game
// has ended and ErrIllegalMove when d is not the side to move or the
// placement flips nothing.
func (s *GameState) ApplyMove(d Disk, x, y int) (*GameState, []Coordinate, error) {
	if s.Turn == nil {
		return nil, nil, &ErrGameOver{}
	}
	if *s.Turn != d {
		return nil, nil, &ErrIllegalMove{X: x, Y: y}
	}
	flipped := s.FlippedDiskCoordinates(d, x, y)
	if len(flipped) == 0 {
		return nil, nil, &ErrIllegalMove{X: x, Y: y}
	}

	next := s.Copy()
	next.Board.SetDisk(d, x, y)
	for _, c := range flipped {
		next.Board.SetDisk(d, c.X, c.Y)
	}
	return next, flipped, nil
}

// TurnEvent is the outcome of resolving the next turn.
type TurnEvent int

const (
	// TurnAdvanced means the opposing side is now to move.
	TurnAdvanced TurnEvent = iota
	// TurnPassed means the opposing side has no legal move and the
	// same side moves again. Callers should surface the pass before
	// requesting the next move.
	TurnPassed
	// TurnGameOver means neither side has a legal move.
	TurnGameOver
)

func (e TurnEvent) String() string {
	switch e {
	case TurnAdvanced:
		return "advanced"
	case TurnPassed:
		return "passed"
	case TurnGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// AdvanceTurn resolves whose turn it is after a move: the opposing side
// if it has a legal move, the same side again on a pass, or nobody when
// the game is over. Turn is the only field mutated. Calling AdvanceTurn
// on a finished game returns TurnGameOver without changing anything.
func (s *GameState) AdvanceTurn() TurnEvent {
	if s.Turn == nil {
		return TurnGameOver
	}
	current := *s.Turn
	next := current.Flipped()
	if len(s.ValidMoves(next)) > 0 {
		s.Turn = &next
		return TurnAdvanced
	}
	if len(s.ValidMoves(current)) > 0 {
		return TurnPassed
	}
	s.Turn = nil
	return TurnGameOver
}
