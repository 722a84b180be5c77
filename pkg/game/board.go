package game

// Coordinate is a board position. X is the column, Y is the row,
// both zero-indexed from the top-left corner.
type Coordinate struct {
	X int
	Y int
}

// Board is a rectangular grid of optional disks. Cells are stored
// row-major and the grid is never resized after construction.
type Board struct {
	cells [][]*Disk
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	cells := make([][]*Disk, height)
	for y := range cells {
		cells[y] = make([]*Disk, width)
	}
	return &Board{cells: cells}
}

// NewStandardBoard creates an 8x8 board with the standard Reversi
// opening position: light at (3,3) and (4,4), dark at (4,3) and (3,4).
func NewStandardBoard() *Board {
	b := NewBoard(8, 8)
	b.SetDisk(DiskLight, 3, 3)
	b.SetDisk(DiskLight, 4, 4)
	b.SetDisk(DiskDark, 4, 3)
	b.SetDisk(DiskDark, 3, 4)
	return b
}

// NewBoardFromCells creates a board from pre-built rows. Rows may be
// ragged; callers that require a rectangular board of a particular size
// must cross-check with Width, Height and RowWidth.
func NewBoardFromCells(cells [][]*Disk) *Board {
	return &Board{cells: cells}
}

// Width returns the number of columns in the first row.
func (b *Board) Width() int {
	if len(b.cells) == 0 {
		return 0
	}
	return len(b.cells[0])
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return len(b.cells)
}

// RowWidth returns the number of columns in row y, or 0 if y is out of range.
func (b *Board) RowWidth(y int) int {
	if y < 0 || y >= len(b.cells) {
		return 0
	}
	return len(b.cells[y])
}

func (b *Board) inRange(x, y int) bool {
	return y >= 0 && y < len(b.cells) && x >= 0 && x < len(b.cells[y])
}

// DiskAt returns the disk at (x, y). The second return value is false
// for both empty cells and out-of-range coordinates, so the flip scan
// can treat the board edge like an empty cell.
func (b *Board) DiskAt(x, y int) (Disk, bool) {
	if !b.inRange(x, y) {
		return 0, false
	}
	cell := b.cells[y][x]
	if cell == nil {
		return 0, false
	}
	return *cell, true
}

// SetDisk places a disk of the given color at (x, y), overwriting any
// existing disk. Out-of-range coordinates are ignored; legality is the
// caller's concern.
func (b *Board) SetDisk(d Disk, x, y int) {
	if !b.inRange(x, y) {
		return
	}
	disk := d
	b.cells[y][x] = &disk
}

// CountDisks returns the number of cells occupied by the given color.
func (b *Board) CountDisks(d Disk) int {
	count := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if cell := b.cells[y][x]; cell != nil && *cell == d {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]*Disk, len(b.cells))
	for y := range b.cells {
		cells[y] = make([]*Disk, len(b.cells[y]))
		for x := range b.cells[y] {
			if b.cells[y][x] != nil {
				disk := *b.cells[y][x]
				cells[y][x] = &disk
			}
		}
	}
	return &Board{cells: cells}
}
