package game

// Participant is one side of a game.
type Participant interface {
	Name() string
	Board() Board

	PlaceVessel(v Vessel) bool
	ReceiveShot(p Position) bool
	AllVesselsPlaced(maxVessels int) bool
	HasRemainingVessels() bool
	Reset()
}

// Player binds a name to a board. A Player without a board is valid: placing and
// shooting fail and Reset does nothing.
type Player struct {
	name  string
	board Board
}

func NewPlayer(name string, board Board) *Player {
	return &Player{
		name:  name,
		board: board,
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Board() Board {
	return p.board
}

func (p *Player) PlaceVessel(v Vessel) bool {
	if p.board == nil {
		return false
	}
	return p.board.PlaceVessel(v)
}

func (p *Player) ReceiveShot(pos Position) bool {
	if p.board == nil {
		return false
	}
	return p.board.ReceiveShot(pos)
}

// AllVesselsPlaced returns true when exactly maxVessels vessels are on the board.
func (p *Player) AllVesselsPlaced(maxVessels int) bool {
	if p.board == nil {
		return false
	}
	return p.board.VesselCount() == maxVessels
}

func (p *Player) HasRemainingVessels() bool {
	if p.board == nil {
		return false
	}
	return !p.board.AllVesselsSunk()
}

func (p *Player) Reset() {
	if p.board != nil {
		p.board.Reset()
	}
}
