package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"travelchat/internal"
	"travelchat/internal/ai"
	"travelchat/internal/logger"
	"travelchat/internal/session"
)

// handleChat owns one websocket connection for its lifetime. Each
// connection runs one turn at a time: the read loop does not pick up the
// next frame until the current turn, including all tool execution and the
// follow-up completion, has finished. Independent connections run on their
// own goroutines and never share a session.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Errorf("Error while upgrading: %s", err)
		return
	}

	connID := uuid.NewString()
	logger.Infof("WebSocket connected: %s", connID)

	defer func() {
		// The session dies with the connection, clean close or not
		s.sessions.Destroy(connID)
		ws.Close()
		logger.Infof("WebSocket disconnected: %s", connID)
	}()

	ws.SetReadLimit(internal.MAX_FRAME_BYTES)

	// Created lazily: connections that never trigger a tool call never
	// allocate a session.
	sessionFn := func() *session.Session {
		return s.sessions.GetOrCreate(connID)
	}

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warnf("WebSocket read error on %s: %v", connID, err)
			}
			return
		}

		var frame InboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			// Protocol error: log and drop the frame, keep the connection
			logger.Warnf("Dropping malformed frame on %s: %v", connID, err)
			continue
		}
		if len(frame.Messages) == 0 {
			logger.Warnf("Dropping frame without messages on %s", connID)
			continue
		}

		if err := s.writeFrame(ws, OutboundFrame{
			Type:    frameTypeAck,
			Message: "Processing your request...",
		}); err != nil {
			logger.Warnf("WebSocket write error on %s: %v", connID, err)
			return
		}

		reply := s.orch.ProcessTurn(context.Background(), sessionFn, ai.Turn{
			Messages:    frame.Messages,
			Model:       frame.Model,
			Temperature: frame.Temperature,
		})

		if err := s.writeFrame(ws, OutboundFrame{
			Type:    frameTypeChatResponse,
			Message: reply,
			Role:    "assistant",
		}); err != nil {
			logger.Warnf("WebSocket write error on %s: %v", connID, err)
			return
		}
	}
}

func (s *Server) writeFrame(ws *websocket.Conn, frame OutboundFrame) error {
	return ws.WriteJSON(frame)
}
