package game

// GridSize is the side length of every grid.
const GridSize = 10

// Board is a player's private grid.
type Board interface {
	PlaceVessel(v Vessel) bool
	CanPlaceVessel(v Vessel) bool
	ReceiveShot(p Position) bool
	Reset()

	CellState(p Position) CellState
	CellInfo(p Position) Cell
	VesselCount() int
	Vessels() []Vessel
	Size() int
	AllVesselsSunk() bool
}

// Grid is the Board implementation. Cells are indexed [y][x].
type Grid struct {
	cells   [GridSize][GridSize]Cell
	vessels []*Vessel
}

//NewGrid returns a grid with all fields set to empty.
func NewGrid() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

//PlaceVessel marks every field of the vessel as occupied and flags the head field. If any
//of the vessel's fields is out of bounds or is not empty the grid is left untouched and
//false is returned.
func (g *Grid) PlaceVessel(v Vessel) bool {
	if !g.CanPlaceVessel(v) {
		return false
	}

	for _, part := range v.parts {
		cell := &g.cells[part.position.Y][part.position.X]
		cell.State = Occupied
		cell.IsHead = part.head
	}
	g.vessels = append(g.vessels, v.clone())
	return true
}

//CanPlaceVessel returns true if every field of the vessel is in bounds and empty.
func (g *Grid) CanPlaceVessel(v Vessel) bool {
	if len(v.parts) == 0 {
		return false
	}
	for _, part := range v.parts {
		if !inBounds(part.position, GridSize) {
			return false
		}
		if g.cells[part.position.Y][part.position.X].State != Empty {
			return false
		}
	}
	return true
}

//ReceiveShot returns true only when an occupied field is hit. An empty field becomes a
//miss. Fields which were already shot and positions out of bounds are left unchanged and
//report false.
func (g *Grid) ReceiveShot(p Position) bool {
	if !inBounds(p, GridSize) {
		return false
	}

	cell := &g.cells[p.Y][p.X]
	switch cell.State {
	case Occupied:
		cell.State = Hit
		for _, v := range g.vessels {
			if v.Contains(p) {
				v.Hit(p)
				g.syncHits(v)
			}
		}
		return true
	case Empty:
		cell.State = Miss
	}
	return false
}

// syncHits turns the fields of every hit part into Hit, which matters after a head hit
// sank the whole vessel.
func (g *Grid) syncHits(v *Vessel) {
	for _, part := range v.parts {
		cell := &g.cells[part.position.Y][part.position.X]
		if part.hit && cell.State == Occupied {
			cell.State = Hit
		}
	}
}

func (g *Grid) Reset() {
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			g.cells[y][x] = Cell{Position: Position{X: x, Y: y}, State: Empty}
		}
	}
	g.vessels = nil
}

// CellState reports Empty for positions out of bounds.
func (g *Grid) CellState(p Position) CellState {
	if !inBounds(p, GridSize) {
		return Empty
	}
	return g.cells[p.Y][p.X].State
}

// CellInfo reports an empty cell for positions out of bounds.
func (g *Grid) CellInfo(p Position) Cell {
	if !inBounds(p, GridSize) {
		return Cell{Position: p, State: Empty}
	}
	return g.cells[p.Y][p.X]
}

func (g *Grid) VesselCount() int {
	return len(g.vessels)
}

// Vessels returns copies of the placed vessels in placement order.
func (g *Grid) Vessels() []Vessel {
	vessels := make([]Vessel, 0, len(g.vessels))
	for _, v := range g.vessels {
		vessels = append(vessels, *v.clone())
	}
	return vessels
}

func (g *Grid) Size() int {
	return GridSize
}

//AllVesselsSunk returns true if every placed vessel is sunk. A grid without vessels
//reports true, callers deciding a winner have to check VesselCount first.
func (g *Grid) AllVesselsSunk() bool {
	for _, v := range g.vessels {
		if !v.IsSunk() {
			return false
		}
	}
	return true
}

func inBounds(p Position, size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}
