package game

// VesselSize is the number of cells every vessel occupies.
const VesselSize = 10

// vesselTemplate is the plane shape pointing Up, head first: the head, a five cell
// wing row, the fuselage and a three cell tail row.
var vesselTemplate = [VesselSize]Position{
	{0, 0},
	{-2, 1}, {-1, 1}, {0, 1}, {1, 1}, {2, 1},
	{0, 2},
	{-1, 3}, {0, 3}, {1, 3},
}

// VesselPart is one cell of a vessel.
type VesselPart struct {
	position Position
	hit      bool
	head     bool
}

func (p VesselPart) Position() Position {
	return p.position
}

func (p VesselPart) IsHit() bool {
	return p.hit
}

func (p VesselPart) IsHead() bool {
	return p.head
}

// Vessel is a plane shaped piece. Part positions are fixed at construction, only the
// hit flags change afterwards.
type Vessel struct {
	parts []VesselPart
}

//CreateVessel returns the vessel whose head is at head, with the template rotated by
//orientation. Parts may lie outside any grid, placement rejects them later.
func CreateVessel(head Position, orientation Orientation) Vessel {
	parts := make([]VesselPart, 0, VesselSize)
	for i, offset := range vesselTemplate {
		r := rotate(offset, orientation)
		parts = append(parts, VesselPart{
			position: Position{X: head.X + r.X, Y: head.Y + r.Y},
			head:     i == 0,
		})
	}
	return Vessel{parts: parts}
}

func rotate(p Position, orientation Orientation) Position {
	switch orientation {
	case Down:
		return Position{X: p.X, Y: -p.Y}
	case Left:
		return Position{X: p.Y, Y: -p.X}
	case Right:
		return Position{X: -p.Y, Y: p.X}
	default:
		return p
	}
}

// Parts returns a copy of the vessel parts, head first.
func (v Vessel) Parts() []VesselPart {
	parts := make([]VesselPart, len(v.parts))
	copy(parts, v.parts)
	return parts
}

// Head returns the position of the head part.
func (v Vessel) Head() Position {
	for _, part := range v.parts {
		if part.head {
			return part.position
		}
	}
	return Position{}
}

func (v Vessel) Contains(p Position) bool {
	for _, part := range v.parts {
		if part.position == p {
			return true
		}
	}
	return false
}

//Hit marks the part at p as hit. Striking the head marks every part as hit. If no part
//is at p the vessel is left unchanged.
func (v *Vessel) Hit(p Position) {
	for i := range v.parts {
		if v.parts[i].position != p {
			continue
		}
		v.parts[i].hit = true
		if v.parts[i].head {
			for j := range v.parts {
				v.parts[j].hit = true
			}
		}
		return
	}
}

// IsSunk returns true if every part is hit.
func (v Vessel) IsSunk() bool {
	for _, part := range v.parts {
		if !part.hit {
			return false
		}
	}
	return true
}

func (v Vessel) clone() *Vessel {
	return &Vessel{parts: v.Parts()}
}
