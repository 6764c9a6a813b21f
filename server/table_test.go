package main

import (
	"testing"

	"github.com/StanislavStefanov/Planes/pkg"
	"github.com/StanislavStefanov/Planes/pkg/game"
	"github.com/StanislavStefanov/Planes/pkg/web"
	"github.com/StanislavStefanov/Planes/server/seat"
	connection "github.com/StanislavStefanov/Planes/server/seat/automock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentResponse struct {
	resp web.Response
	conn seat.Connection
}

// recordingSender keeps every response in order. Connections are compared by identity.
type recordingSender struct {
	sent []sentResponse
}

func (r *recordingSender) SendResponse(resp web.Response, conn seat.Connection) {
	r.sent = append(r.sent, sentResponse{resp: resp, conn: conn})
}

func (r *recordingSender) to(conn seat.Connection) []web.Response {
	var out []web.Response
	for _, s := range r.sent {
		if s.conn == conn {
			out = append(out, s.resp)
		}
	}
	return out
}

func (r *recordingSender) last(conn seat.Connection) web.Response {
	out := r.to(conn)
	if len(out) == 0 {
		return web.Response{}
	}
	return out[len(out)-1]
}

func (r *recordingSender) actions(conn seat.Connection) []string {
	var out []string
	for _, resp := range r.to(conn) {
		out = append(out, resp.Action)
	}
	return out
}

func (r *recordingSender) reset() {
	r.sent = nil
}

func newTestTable(maxVessels int) (*Table, *recordingSender, *seat.Seat, *seat.Seat) {
	sender := &recordingSender{}
	g := game.NewFactory("", "").WithMaxVessels(maxVessels).Create()
	table := NewTable(g, sender)

	controller := &seat.Seat{Conn: &connection.Connection{}, Id: "controller"}
	spectator := &seat.Seat{Conn: &connection.Connection{}, Id: "spectator"}
	table.Join(controller)
	table.Join(spectator)
	sender.reset()
	return table, sender, controller, spectator
}

func place(x, y int, orientation string) web.Request {
	return web.BuildRequest(pkg.Place, map[string]interface{}{"x": x, "y": y, "orientation": orientation})
}

func shoot(x, y int) web.Request {
	return web.BuildRequest(pkg.Shoot, map[string]interface{}{"x": x, "y": y})
}

// startBattle places one vessel with its head at (3,3) for each player and enters InProgress.
func startBattle(t *testing.T, table *Table) {
	table.ProcessCommand("controller", place(3, 3, "up"))
	table.ProcessCommand("controller", web.BuildRequest(pkg.Switch, nil))
	table.ProcessCommand("controller", place(3, 3, "up"))
	table.ProcessCommand("controller", web.BuildRequest(pkg.Switch, nil))
	require.Equal(t, game.InProgress, table.game.State())
}

func TestTable_Join(t *testing.T) {
	// given
	sender := &recordingSender{}
	table := NewTable(game.NewFactory("", "").Create(), sender)
	first := &seat.Seat{Conn: &connection.Connection{}, Id: "first"}
	second := &seat.Seat{Conn: &connection.Connection{}, Id: "second"}

	// when
	table.Join(first)
	table.Join(second)

	// then
	assert.Equal(t, pkg.Controller, first.Role)
	assert.Equal(t, pkg.Spectator, second.Role)
	assert.Equal(t, web.BuildResponse(pkg.Register, "Connected to table as controller.",
		map[string]interface{}{"id": "first", "role": pkg.Controller, "state": "placing-ships"}), sender.last(first.Conn))
	assert.Equal(t, pkg.Spectator, sender.last(second.Conn).Args["role"])

	controller, count := table.GetTableInfo()
	assert.Equal(t, "first", controller)
	assert.Equal(t, 2, count)
}

func TestTable_Leave(t *testing.T) {
	t.Run("controller leaving promotes the next seat", func(t *testing.T) {
		// given
		table, sender, controller, spectator := newTestTable(1)

		// when
		table.Leave(controller.Id)

		// then
		assert.Equal(t, pkg.Controller, spectator.Role)
		assert.Equal(t, []string{pkg.Register}, sender.actions(spectator.Conn))
		id, count := table.GetTableInfo()
		assert.Equal(t, spectator.Id, id)
		assert.Equal(t, 1, count)
	})

	t.Run("spectator leaving keeps the controller", func(t *testing.T) {
		// given
		table, sender, controller, spectator := newTestTable(1)

		// when
		table.Leave(spectator.Id)
		table.Leave("unknown")

		// then
		assert.Equal(t, pkg.Controller, controller.Role)
		assert.Empty(t, sender.sent)
		_, count := table.GetTableInfo()
		assert.Equal(t, 1, count)
	})
}

func TestTable_ProcessCommand(t *testing.T) {
	t.Run("spectator can not play", func(t *testing.T) {
		// given
		table, sender, _, spectator := newTestTable(1)

		// when
		table.ProcessCommand(spectator.Id, place(3, 3, "up"))

		// then
		assert.Equal(t, web.BuildResponse(pkg.Retry, "Only the controller can play. You can request a board.", nil),
			sender.last(spectator.Conn))
		assert.Equal(t, 0, table.game.Player1().Board().VesselCount())
	})

	t.Run("unknown action", func(t *testing.T) {
		// given
		table, sender, controller, _ := newTestTable(1)

		// when
		table.ProcessCommand(controller.Id, web.BuildRequest("dance", nil))

		// then
		assert.Equal(t, web.BuildResponse(pkg.Retry, "unknown action", nil), sender.last(controller.Conn))
	})

	t.Run("unknown seat is ignored", func(t *testing.T) {
		// given
		table, sender, _, _ := newTestTable(1)

		// when
		table.ProcessCommand("stranger", web.BuildRequest(pkg.Start, nil))

		// then
		assert.Empty(t, sender.sent)
	})

	t.Run("start broadcasts the placing phase", func(t *testing.T) {
		// given
		table, sender, controller, spectator := newTestTable(1)

		// when
		table.ProcessCommand(controller.Id, web.BuildRequest(pkg.Start, nil))

		// then
		expected := web.BuildResponse(pkg.State, "Game state: placing-ships", web.StateArgs(game.PlacingShips))
		assert.Equal(t, expected, sender.last(controller.Conn))
		assert.Equal(t, expected, sender.last(spectator.Conn))
	})
}

func TestTable_Place(t *testing.T) {
	testCases := []struct {
		Name            string
		Request         web.Request
		ExpectedMessage string
	}{
		{
			Name:            "fail on missing coordinate",
			Request:         web.BuildRequest(pkg.Place, map[string]interface{}{"x": 3, "orientation": "up"}),
			ExpectedMessage: "missing value for y",
		},
		{
			Name:            "fail on unknown orientation",
			Request:         place(3, 3, "sideways"),
			ExpectedMessage: "unknown positioning direction",
		},
		{
			Name:            "fail when vessel leaves the grid",
			Request:         place(0, 0, "up"),
			ExpectedMessage: "some of the fields are out of bounds or already taken",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			// given
			table, sender, controller, _ := newTestTable(1)

			// when
			table.ProcessCommand(controller.Id, testCase.Request)

			// then
			assert.Equal(t, web.BuildResponse(pkg.Retry, testCase.ExpectedMessage, nil), sender.last(controller.Conn))
			assert.Equal(t, 0, table.game.Player1().Board().VesselCount())
		})
	}

	t.Run("success reveals the vessel only to the controller", func(t *testing.T) {
		// given
		table, sender, controller, spectator := newTestTable(1)

		// when
		table.ProcessCommand(controller.Id, place(3, 3, "up"))

		// then
		assert.Equal(t, web.BuildResponse(pkg.Placed, "Player1 placed a vessel.",
			map[string]interface{}{"x": 3, "y": 3, "orientation": "up"}), sender.last(controller.Conn))
		assert.Equal(t, web.BuildResponse(pkg.Placed, "Player1 placed a vessel.", nil), sender.last(spectator.Conn))
		assert.Equal(t, 1, table.game.Player1().Board().VesselCount())
	})

	t.Run("fail when all vessels are placed", func(t *testing.T) {
		// given
		table, sender, controller, _ := newTestTable(1)
		table.ProcessCommand(controller.Id, place(3, 3, "up"))

		// when
		table.ProcessCommand(controller.Id, place(7, 0, "up"))

		// then
		assert.Equal(t, web.BuildResponse(pkg.Retry, "Player1 has placed all 1 vessels. Switch turn.", nil),
			sender.last(controller.Conn))
		assert.Equal(t, 1, table.game.Player1().Board().VesselCount())
	})

	t.Run("fail after placing phase", func(t *testing.T) {
		// given
		table, sender, controller, _ := newTestTable(1)
		startBattle(t, table)

		// when
		table.ProcessCommand(controller.Id, place(7, 0, "up"))

		// then
		assert.Equal(t, web.BuildResponse(pkg.Retry, "Invalid action during phase: in-progress.", nil),
			sender.last(controller.Conn))
	})
}

func TestTable_Switch(t *testing.T) {
	t.Run("switch passes the turn while placing", func(t *testing.T) {
		// given
		table, _, controller, _ := newTestTable(1)

		// when
		table.ProcessCommand(controller.Id, web.BuildRequest(pkg.Switch, nil))

		// then
		assert.Equal(t, "Player2", table.game.CurrentPlayer().Name())
		assert.Equal(t, game.PlacingShips, table.game.State())
	})

	t.Run("fail after placing phase", func(t *testing.T) {
		// given
		table, sender, controller, _ := newTestTable(1)
		startBattle(t, table)

		// when
		table.ProcessCommand(controller.Id, web.BuildRequest(pkg.Switch, nil))

		// then
		assert.Equal(t, pkg.Retry, sender.last(controller.Conn).Action)
		assert.Equal(t, "Player1", table.game.CurrentPlayer().Name())
	})
}

func TestTable_Shoot(t *testing.T) {
	t.Run("fail while placing", func(t *testing.T) {
		// given
		table, sender, controller, _ := newTestTable(1)

		// when
		table.ProcessCommand(controller.Id, shoot(3, 3))

		// then
		assert.Equal(t, web.BuildResponse(pkg.Retry, "Invalid action during phase: placing-ships.", nil),
			sender.last(controller.Conn))
	})

	t.Run("fail out of bounds", func(t *testing.T) {
		// given
		table, sender, controller, _ := newTestTable(1)
		startBattle(t, table)

		// when
		table.ProcessCommand(controller.Id, shoot(10, 0))

		// then
		assert.Equal(t, web.BuildResponse(pkg.Retry, "position out of bounds", nil), sender.last(controller.Conn))
	})

	t.Run("fail on a field shot before", func(t *testing.T) {
		// given
		table, sender, controller, _ := newTestTable(1)
		startBattle(t, table)
		table.ProcessCommand(controller.Id, shoot(0, 9))
		table.ProcessCommand(controller.Id, shoot(0, 8))

		// when
		table.ProcessCommand(controller.Id, shoot(0, 9))

		// then
		assert.Equal(t, web.BuildResponse(pkg.Retry, "field has already been shot", nil), sender.last(controller.Conn))
		assert.Equal(t, "Player1", table.game.CurrentPlayer().Name())
	})

	t.Run("miss passes the turn", func(t *testing.T) {
		// given
		table, sender, controller, spectator := newTestTable(1)
		startBattle(t, table)
		sender.reset()

		// when
		table.ProcessCommand(controller.Id, shoot(0, 9))

		// then
		expected := []web.Response{
			web.BuildResponse(pkg.Shot, "Player1 fired at (0,9): miss",
				web.CellArgs(game.Cell{Position: game.Position{X: 0, Y: 9}, State: game.Miss}, game.InProgress)),
			web.BuildResponse(pkg.State, "Game state: switching-turn", web.StateArgs(game.SwitchingTurn)),
		}
		assert.Equal(t, expected, sender.to(controller.Conn))
		assert.Equal(t, expected, sender.to(spectator.Conn))
		assert.Equal(t, "Player2", table.game.CurrentPlayer().Name())
	})

	t.Run("head hit wins the game", func(t *testing.T) {
		// given
		table, sender, controller, spectator := newTestTable(1)
		startBattle(t, table)
		sender.reset()

		// when
		table.ProcessCommand(controller.Id, shoot(3, 3))

		// then
		assert.Equal(t, []string{pkg.Shot, pkg.State, pkg.Win}, sender.actions(spectator.Conn))
		responses := sender.to(controller.Conn)
		require.Len(t, responses, 3)
		assert.Equal(t, "head-hit", responses[0].Args["cell"])
		assert.Equal(t, true, responses[0].Args["hit"])
		assert.Equal(t, "game-over", responses[1].Args["state"])
		assert.Equal(t, web.BuildResponse(pkg.Win, "Player1 wins!", map[string]interface{}{"winner": "Player1"}), responses[2])
		assert.Equal(t, game.GameOver, table.game.State())

		// when
		table.ProcessCommand(controller.Id, shoot(4, 4))

		// then
		assert.Equal(t, web.BuildResponse(pkg.Retry, "Invalid action during phase: game-over.", nil), sender.last(controller.Conn))
	})
}

func TestTable_Board(t *testing.T) {
	t.Run("own board is revealed", func(t *testing.T) {
		// given
		table, sender, controller, _ := newTestTable(1)
		table.ProcessCommand(controller.Id, place(3, 3, "up"))

		// when
		table.ProcessCommand(controller.Id, web.BuildRequest(pkg.Board, nil))

		// then
		board := table.game.Player1().Board()
		assert.Equal(t, web.BuildResponse(pkg.Info, "Board of Player1",
			map[string]interface{}{"player": "Player1", "grid": game.Sprint(board, true)}), sender.last(controller.Conn))
	})

	t.Run("spectator sees the opponent board hidden", func(t *testing.T) {
		// given
		table, sender, controller, spectator := newTestTable(1)
		startBattle(t, table)

		// when
		table.ProcessCommand(spectator.Id, web.BuildRequest(pkg.Board, map[string]interface{}{"player": "opponent"}))

		// then
		resp := sender.last(spectator.Conn)
		assert.Equal(t, pkg.Info, resp.Action)
		assert.Equal(t, "Player2", resp.Args["player"])
		assert.Equal(t, game.Sprint(table.game.Player2().Board(), false), resp.Args["grid"])
		assert.NotContains(t, resp.Args["grid"], "s")
		assert.NotEqual(t, pkg.Info, sender.last(controller.Conn).Action)
	})
}
