package main

import (
	"encoding/json"

	"github.com/StanislavStefanov/Planes/pkg/web"
	"github.com/StanislavStefanov/Planes/server/logger"
	"github.com/StanislavStefanov/Planes/server/seat"
	"github.com/gorilla/websocket"
)

//go:generate mockery -name=ResponseSender -output=automock -outpkg=automock -case=underscore
type ResponseSender interface {
	SendResponse(response web.Response, conn seat.Connection)
}

type Sender struct {
}

func (s *Sender) SendResponse(response web.Response, conn seat.Connection) {
	resp, err := json.Marshal(response)
	if err != nil {
		logger.Log.Errorw("Send response: marshal error", "action", response.Action, "error", err)
		return
	}
	err = conn.WriteMessage(websocket.BinaryMessage, resp)
	if err != nil {
		logger.Log.Errorw("Send response: send message error", "action", response.Action, "error", err)
		return
	}
}
