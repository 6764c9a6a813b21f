package main

import (
	"fmt"
	"sync"

	"github.com/StanislavStefanov/Planes/pkg"
	"github.com/StanislavStefanov/Planes/pkg/game"
	"github.com/StanislavStefanov/Planes/pkg/web"
	"github.com/StanislavStefanov/Planes/server/seat"
)

// Table hosts one hot seat game. The first seat controls the game for both players, every
// other seat watches. All game calls happen with mu held, so the listener methods below
// run with mu held as well.
type Table struct {
	mu             sync.Mutex
	game           *game.Game
	seats          []*seat.Seat
	ResponseSender ResponseSender
}

func NewTable(g *game.Game, sender ResponseSender) *Table {
	t := &Table{
		game:           g,
		ResponseSender: sender,
	}
	g.AddListener(t)
	return t
}

//Join seats s at the table. The first seat becomes the controller.
func (t *Table) Join(s *seat.Seat) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s.Role = pkg.Spectator
	if len(t.seats) == 0 {
		s.Role = pkg.Controller
	}
	t.seats = append(t.seats, s)

	resp := web.BuildResponse(pkg.Register,
		fmt.Sprintf("Connected to table as %s.", s.Role),
		map[string]interface{}{"id": s.Id, "role": s.Role, "state": t.game.State().String()})
	t.ResponseSender.SendResponse(resp, s.Conn)
}

//Leave removes the seat with id. When the controller leaves the next seat in join order
//takes over.
func (t *Table) Leave(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx < 0 {
		return
	}
	t.seats = append(t.seats[:idx], t.seats[idx+1:]...)

	if idx != 0 || len(t.seats) == 0 {
		return
	}
	next := t.seats[0]
	next.Role = pkg.Controller
	resp := web.BuildResponse(pkg.Register,
		"The controller left. You control the game now.",
		map[string]interface{}{"id": next.Id, "role": next.Role, "state": t.game.State().String()})
	t.ResponseSender.SendResponse(resp, next.Conn)
}

func (t *Table) GetTableInfo() (string, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	controller := ""
	if len(t.seats) > 0 {
		controller = t.seats[0].Id
	}
	return controller, len(t.seats)
}

func (t *Table) indexOf(id string) int {
	for i, s := range t.seats {
		if s.Id == id {
			return i
		}
	}
	return -1
}

func (t *Table) ProcessCommand(id string, request web.Request) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx < 0 {
		return
	}
	s := t.seats[idx]

	if s.Role != pkg.Controller && request.Action != pkg.Board {
		t.retry(s, "Only the controller can play. You can request a board.")
		return
	}

	switch request.Action {
	case pkg.Start:
		t.game.Start()
	case pkg.Place:
		t.processPlacement(s, request)
	case pkg.Switch:
		t.processSwitch(s)
	case pkg.Shoot:
		t.processShoot(s, request)
	case pkg.Board:
		t.processBoard(s, request)
	default:
		t.retry(s, "unknown action")
	}
}

func (t *Table) retry(s *seat.Seat, message string) {
	resp := web.BuildResponse(pkg.Retry, message, nil)
	t.ResponseSender.SendResponse(resp, s.Conn)
}

func (t *Table) invalidPhase(s *seat.Seat) {
	t.retry(s, fmt.Sprintf("Invalid action during phase: %s.", t.game.State()))
}

func (t *Table) processPlacement(s *seat.Seat, request web.Request) {
	if t.game.State() != game.PlacingShips {
		t.invalidPhase(s)
		return
	}

	head, err := web.PositionArgs(request.Args)
	if err != nil {
		t.retry(s, err.Error())
		return
	}
	direction, err := web.StringArg(request.Args, "orientation")
	if err != nil {
		t.retry(s, err.Error())
		return
	}
	orientation, err := game.ParseOrientation(direction)
	if err != nil {
		t.retry(s, err.Error())
		return
	}

	current := t.game.CurrentPlayer()
	if current.AllVesselsPlaced(t.game.MaxVessels()) {
		t.retry(s, fmt.Sprintf("%s has placed all %d vessels. Switch turn.", current.Name(), t.game.MaxVessels()))
		return
	}
	if err := game.PlacementError(current.Board(), game.CreateVessel(head, orientation)); err != nil {
		t.retry(s, err.Error())
		return
	}

	t.game.PlaceVessel(head, game.VesselSize, orientation)
}

func (t *Table) processSwitch(s *seat.Seat) {
	if t.game.State() != game.PlacingShips {
		t.invalidPhase(s)
		return
	}
	t.game.SwitchTurn()
}

func (t *Table) processShoot(s *seat.Seat, request web.Request) {
	state := t.game.State()
	if state != game.InProgress && state != game.SwitchingTurn {
		t.invalidPhase(s)
		return
	}

	target, err := web.PositionArgs(request.Args)
	if err != nil {
		t.retry(s, err.Error())
		return
	}
	if err := game.ShotError(t.game.Opponent().Board(), target); err != nil {
		t.retry(s, err.Error())
		return
	}

	t.game.Shoot(target)
}

//processBoard sends the acting player's own board, or with player=opponent the
//opponent's board with its vessels hidden.
func (t *Table) processBoard(s *seat.Seat, request web.Request) {
	owner := t.game.CurrentPlayer()
	reveal := true
	if which, _ := web.StringArg(request.Args, "player"); which == "opponent" {
		owner = t.game.Opponent()
		reveal = false
	}
	if owner == nil || owner.Board() == nil {
		t.retry(s, "no board to show")
		return
	}

	resp := web.BuildResponse(pkg.Info,
		fmt.Sprintf("Board of %s", owner.Name()),
		map[string]interface{}{"player": owner.Name(), "grid": game.Sprint(owner.Board(), reveal)})
	t.ResponseSender.SendResponse(resp, s.Conn)
}

func (t *Table) broadcast(resp web.Response) {
	for _, s := range t.seats {
		t.ResponseSender.SendResponse(resp, s.Conn)
	}
}

func (t *Table) OnVesselPlaced(v game.Vessel) {
	message := fmt.Sprintf("%s placed a vessel.", t.game.CurrentPlayer().Name())
	for _, s := range t.seats {
		var args map[string]interface{}
		if s.Role == pkg.Controller {
			args = web.VesselArgs(v)
		}
		t.ResponseSender.SendResponse(web.BuildResponse(pkg.Placed, message, args), s.Conn)
	}
}

func (t *Table) OnShotFired(cell game.Cell, state game.State) {
	outcome := "miss"
	if cell.State == game.Hit {
		outcome = "hit"
	}
	t.broadcast(web.BuildResponse(pkg.Shot,
		fmt.Sprintf("%s fired at %s: %s", t.game.CurrentPlayer().Name(), cell.Position, outcome),
		web.CellArgs(cell, state)))
}

func (t *Table) OnStateChanged(state game.State) {
	t.broadcast(web.BuildResponse(pkg.State,
		fmt.Sprintf("Game state: %s", state),
		web.StateArgs(state)))

	if state != game.GameOver {
		return
	}
	if winner := t.game.Winner(); winner != nil {
		t.broadcast(web.BuildResponse(pkg.Win,
			fmt.Sprintf("%s wins!", winner.Name()),
			map[string]interface{}{"winner": winner.Name()}))
	}
}
