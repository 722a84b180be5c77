package game

// Disk is the color of a single piece on the board.
type Disk int

const (
	DiskDark Disk = iota
	DiskLight
)

// Sides lists both disk colors, dark first.
var Sides = []Disk{DiskDark, DiskLight}

// Flipped returns the opposite color.
func (d Disk) Flipped() Disk {
	if d == DiskDark {
		return DiskLight
	}
	return DiskDark
}

func (d Disk) String() string {
	switch d {
	case DiskDark:
		return "dark"
	case DiskLight:
		return "light"
	default:
		return "unknown"
	}
}
