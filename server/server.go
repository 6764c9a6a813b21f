package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/StanislavStefanov/Planes/pkg"
	"github.com/StanislavStefanov/Planes/pkg/web"
	"github.com/StanislavStefanov/Planes/server/logger"
	"github.com/StanislavStefanov/Planes/server/seat"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Server struct {
	table    *Table
	register chan seat.Connection
	done     chan struct{}
	sender   ResponseSender
	metrics  *Metrics
}

func NewServer(table *Table, sender ResponseSender, metrics *Metrics) *Server {
	return &Server{
		table:    table,
		register: make(chan seat.Connection),
		done:     make(chan struct{}),
		sender:   sender,
		metrics:  metrics,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func ServeWs(s *Server, w http.ResponseWriter, r *http.Request) {
	logger.Log.Debugw("Connection has arrived", "remote", r.RemoteAddr)
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Errorw("Upgrade connection", "remote", r.RemoteAddr, "error", err)
		return
	}
	s.enqueue(conn)
}

//enqueue hands conn to the run loop. Once the loop has stopped the connection is closed
//and false is returned.
func (s *Server) enqueue(conn seat.Connection) bool {
	select {
	case s.register <- conn:
		return true
	case <-s.done:
		_ = conn.Close()
		return false
	}
}

func (s *Server) run(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case conn := <-s.register:
			st := s.RegisterClient(conn)
			go ReadLoop(st, s)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) RegisterClient(conn seat.Connection) *seat.Seat {
	st := &seat.Seat{
		Conn: conn,
		Id:   uuid.New().String(),
	}
	logger.Log.Infow("Register client", "id", st.Id)

	s.table.Join(st)
	if s.metrics != nil {
		s.metrics.ConnectedSeats.Inc()
	}
	return st
}

func (s *Server) deleteClient(id string) {
	logger.Log.Infow("Client left", "id", id)
	s.table.Leave(id)
	if s.metrics != nil {
		s.metrics.ConnectedSeats.Dec()
	}
}

func ReadLoop(st *seat.Seat, s *Server) {
	for {
		_, bytes, err := st.Conn.ReadMessage()
		if err != nil {
			logger.Log.Debugw("Read message", "id", st.Id, "error", err)
			s.deleteClient(st.Id)
			return
		}
		start := time.Now()

		var request web.Request
		err = json.Unmarshal(bytes, &request)
		if err != nil {
			logger.Log.Warnw("Unmarshal request", "id", st.Id, "error", err)
		}

		if request.Action == pkg.Exit {
			s.deleteClient(st.Id)
			_ = st.Conn.Close()
			return
		}

		s.table.ProcessCommand(st.Id, request)
		if s.metrics != nil {
			s.metrics.MessagesReceived.Inc()
			s.metrics.MessageLatency.Observe(time.Since(start).Seconds())
		}
	}
}
