// Package game implements the planes battle engine: vessel geometry, the per player
// grid, shot resolution and the turn state machine with its listeners.
//
// The engine is synchronous and keeps no locks. A host which calls it from several
// goroutines has to serialise all calls on one Game, including reads of its boards.
package game

// State is the phase the game is in.
type State int

const (
	PlacingShips State = iota
	SwitchingTurn
	InProgress
	GameOver
)

func (s State) String() string {
	switch s {
	case PlacingShips:
		return "placing-ships"
	case SwitchingTurn:
		return "switching-turn"
	case InProgress:
		return "in-progress"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// DefaultMaxVessels is the number of vessels each player places unless configured.
const DefaultMaxVessels = 3

// Engine drives a two player game.
type Engine interface {
	AddListener(l Listener) ListenerHandle
	RemoveListener(h ListenerHandle)

	Start()
	PlaceVessel(head Position, length int, orientation Orientation) bool
	Shoot(p Position)
	SwitchTurn()
	IsGameOver() bool

	State() State
	MaxVessels() int
	Player1() Participant
	Player2() Participant
	CurrentPlayer() Participant
	Opponent() Participant
	GridSize() int
}

// Game is the Engine implementation. The acting player is an index into players.
type Game struct {
	players    [2]Participant
	current    int
	state      State
	maxVessels int
	listeners  listeners
}

//NewGame returns a game in the placing phase with player1 acting. A non positive
//maxVessels falls back to DefaultMaxVessels.
func NewGame(player1, player2 Participant, maxVessels int) *Game {
	if maxVessels <= 0 {
		maxVessels = DefaultMaxVessels
	}
	return &Game{
		players:    [2]Participant{player1, player2},
		state:      PlacingShips,
		maxVessels: maxVessels,
	}
}

//AddListener registers l and returns the handle to remove it with. Adding a listener
//which is already registered returns its existing handle.
func (g *Game) AddListener(l Listener) ListenerHandle {
	return g.listeners.add(l)
}

func (g *Game) RemoveListener(h ListenerHandle) {
	g.listeners.remove(h)
}

// ListenerCount returns the number of registrations, expired ones included until the
// next dispatch.
func (g *Game) ListenerCount() int {
	return g.listeners.len()
}

func (g *Game) notifyVesselPlaced(v Vessel) {
	g.listeners.each(func(l Listener) {
		l.OnVesselPlaced(v)
	})
}

func (g *Game) notifyShotFired(cell Cell) {
	state := g.state
	g.listeners.each(func(l Listener) {
		l.OnShotFired(cell, state)
	})
}

func (g *Game) notifyStateChanged(state State) {
	g.listeners.each(func(l Listener) {
		l.OnStateChanged(state)
	})
}

func (g *Game) changeState(state State) {
	g.state = state
	g.notifyStateChanged(state)
}

//Start makes player one the acting player, enters the placing phase and clears both
//boards.
func (g *Game) Start() {
	g.current = 0
	g.changeState(PlacingShips)

	for _, p := range g.players {
		if p != nil {
			p.Reset()
		}
	}
}

//PlaceVessel places a vessel with its head at head on the acting player's board. Every
//vessel has VesselSize fields, length is accepted for callers that pass a ship length
//and otherwise ignored. Listeners are notified only when the vessel was placed.
func (g *Game) PlaceVessel(head Position, length int, orientation Orientation) bool {
	current := g.players[g.current]
	if current == nil {
		return false
	}

	v := CreateVessel(head, orientation)
	if !current.PlaceVessel(v) {
		return false
	}

	g.notifyVesselPlaced(v)
	return true
}

//Shoot fires at p on the opponent's board. Listeners receive the resolved cell, then the
//game either ends or passes the turn to the opponent. Nothing happens once the game is
//over or when the opponent has no board.
func (g *Game) Shoot(p Position) {
	if g.IsGameOver() {
		return
	}

	if g.players[g.current] == nil {
		return
	}
	opponent := g.Opponent()
	if opponent == nil {
		return
	}
	board := opponent.Board()
	if board == nil {
		return
	}

	cell := Cell{Position: p, State: Miss}
	if opponent.ReceiveShot(p) {
		cell.State = Hit
		cell.IsHead = board.CellInfo(p).IsHead
	}
	g.notifyShotFired(cell)

	if board.AllVesselsSunk() {
		g.changeState(GameOver)
		return
	}
	g.changeState(SwitchingTurn)
	g.SwitchTurn()
}

//SwitchTurn passes the turn to the other player. While placing, the game moves on to
//InProgress once both players have placed exactly MaxVessels vessels.
func (g *Game) SwitchTurn() {
	if g.players[g.current] == nil {
		return
	}
	g.current = 1 - g.current

	if g.state != PlacingShips {
		return
	}
	p1, p2 := g.players[0], g.players[1]
	if p1 != nil && p2 != nil && p1.AllVesselsPlaced(g.maxVessels) && p2.AllVesselsPlaced(g.maxVessels) {
		g.changeState(InProgress)
	}
}

//IsGameOver returns true if either board reports all vessels sunk. It reads the boards,
//not the phase, so a board without vessels counts as beaten.
func (g *Game) IsGameOver() bool {
	for _, p := range g.players {
		if p == nil || p.Board() == nil {
			continue
		}
		if p.Board().AllVesselsSunk() {
			return true
		}
	}
	return false
}

// Winner returns the player who still has vessels once the game is over, or nil.
func (g *Game) Winner() Participant {
	if !g.IsGameOver() {
		return nil
	}
	for _, p := range g.players {
		if p != nil && p.HasRemainingVessels() {
			return p
		}
	}
	return nil
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) MaxVessels() int {
	return g.maxVessels
}

func (g *Game) Player1() Participant {
	return g.players[0]
}

func (g *Game) Player2() Participant {
	return g.players[1]
}

func (g *Game) CurrentPlayer() Participant {
	return g.players[g.current]
}

func (g *Game) Opponent() Participant {
	return g.players[1-g.current]
}

// GridSize returns the acting player's board size, or GridSize if it has none.
func (g *Game) GridSize() int {
	if p := g.players[g.current]; p != nil && p.Board() != nil {
		return p.Board().Size()
	}
	return GridSize
}
