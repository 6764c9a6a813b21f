package main

import (
	"github.com/StanislavStefanov/Planes/pkg/game"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts game events. It is registered on the game as a listener.
type Metrics struct {
	ConnectedSeats   prometheus.Gauge
	MessagesReceived prometheus.Counter
	MessageLatency   prometheus.Histogram
	VesselsPlaced    prometheus.Counter
	Shots            *prometheus.CounterVec
	StateChanges     *prometheus.CounterVec
	GamesFinished    prometheus.Counter
}

func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ConnectedSeats: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connected_seats",
			Help:      "Number of connections seated at the table",
		}),
		MessagesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_received_total",
			Help:      "Total number of requests received",
		}),
		MessageLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "message_latency_seconds",
			Help:      "Request processing latency",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 10),
		}),
		VesselsPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vessels_placed_total",
			Help:      "Total number of vessels placed",
		}),
		Shots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shots_total",
			Help:      "Total number of shots by outcome",
		}, []string{"outcome"}),
		StateChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_changes_total",
			Help:      "Total number of state changes by new state",
		}, []string{"state"}),
		GamesFinished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Total number of games that reached game over",
		}),
	}

	reg.MustRegister(
		m.ConnectedSeats,
		m.MessagesReceived,
		m.MessageLatency,
		m.VesselsPlaced,
		m.Shots,
		m.StateChanges,
		m.GamesFinished,
	)

	return m
}

func (m *Metrics) OnVesselPlaced(game.Vessel) {
	m.VesselsPlaced.Inc()
}

func (m *Metrics) OnShotFired(cell game.Cell, _ game.State) {
	m.Shots.WithLabelValues(cell.DisplayState().String()).Inc()
}

func (m *Metrics) OnStateChanged(state game.State) {
	m.StateChanges.WithLabelValues(state.String()).Inc()
	if state == game.GameOver {
		m.GamesFinished.Inc()
	}
}
