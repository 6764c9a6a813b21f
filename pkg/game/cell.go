package game

// CellState is the state of a single grid cell.
type CellState int

const (
	Empty CellState = iota
	Occupied
	Hit
	Miss
	// HeadHit is never stored by a Grid. Presentation derives it from a Hit cell that
	// carries the vessel head, see Cell.DisplayState.
	HeadHit
)

const (
	emptyRune    = '-'
	occupiedRune = 's'
	hitRune      = 'x'
	missRune     = 'o'
	headHitRune  = '#'
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case HeadHit:
		return "head-hit"
	default:
		return "unknown"
	}
}

// Rune is the character used when a grid is printed.
func (s CellState) Rune() rune {
	switch s {
	case Occupied:
		return occupiedRune
	case Hit:
		return hitRune
	case Miss:
		return missRune
	case HeadHit:
		return headHitRune
	default:
		return emptyRune
	}
}

// Cell is a snapshot of one grid cell.
type Cell struct {
	Position Position  `json:"position"`
	State    CellState `json:"state"`
	IsHead   bool      `json:"isHead"`
}

// DisplayState refines a struck head cell into HeadHit.
func (c Cell) DisplayState() CellState {
	if c.State == Hit && c.IsHead {
		return HeadHit
	}
	return c.State
}
