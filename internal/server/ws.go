package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/horizonedu/starbot/internal/bot"
	"github.com/horizonedu/starbot/internal/history"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Question string `json:"question"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type   string      `json:"type"` // "answer" or "error"
	Answer *bot.Answer `json:"answer,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendWSError(conn, "invalid message format")
			continue
		}

		start := time.Now()
		answer, err := s.engine.Ask(r.Context(), req.Question)
		if err != nil {
			resp := wsResponse{Type: "error", Error: err.Error(), Answer: answer}
			s.sendWS(conn, resp)
			continue
		}

		if s.log != nil {
			logErr := s.log.Log(r.Context(), history.Entry{
				Question:   req.Question,
				Answer:     answer.Answer,
				Mode:       answer.Mode,
				HasImages:  answer.HasImages,
				DurationMS: time.Since(start).Milliseconds(),
				Client:     r.RemoteAddr,
			})
			if logErr != nil {
				log.Printf("server: log question: %v", logErr)
			}
		}

		s.sendWS(conn, wsResponse{Type: "answer", Answer: answer})
	}
}

func (s *Server) sendWS(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}

func (s *Server) sendWSError(conn *websocket.Conn, message string) {
	s.sendWS(conn, wsResponse{Type: "error", Error: message})
}
