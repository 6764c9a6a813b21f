package main

import (
	"github.com/StanislavStefanov/Planes/pkg/game"
	"go.uber.org/zap"
)

// LogListener writes every game event to the log.
type LogListener struct {
	log *zap.SugaredLogger
	g   *game.Game
}

func NewLogListener(log *zap.SugaredLogger, g *game.Game) *LogListener {
	return &LogListener{log: log, g: g}
}

func (l *LogListener) OnVesselPlaced(v game.Vessel) {
	l.log.Infow("Vessel placed",
		"player", l.g.CurrentPlayer().Name(),
		"head", v.Head().String(),
		"vessels", l.g.CurrentPlayer().Board().VesselCount())
}

func (l *LogListener) OnShotFired(cell game.Cell, state game.State) {
	l.log.Infow("Shot fired",
		"player", l.g.CurrentPlayer().Name(),
		"target", cell.Position.String(),
		"outcome", cell.DisplayState().String(),
		"state", state.String())
}

func (l *LogListener) OnStateChanged(state game.State) {
	l.log.Infow("State changed", "state", state.String())
	if state != game.GameOver {
		return
	}
	if winner := l.g.Winner(); winner != nil {
		l.log.Infow("Game over", "winner", winner.Name())
	}
}
