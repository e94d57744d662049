package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/horizonedu/starbot/internal/bot"
	"github.com/horizonedu/starbot/internal/history"
)

type askRequest struct {
	Question string `json:"question"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Answer string `json:"answer,omitempty"`
	Mode   string `json:"mode,omitempty"`
}

func (s *Server) handleInitialize(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Initialize(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "StarBot initialized successfully"})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No question provided"})
		return
	}

	start := time.Now()
	answer, err := s.engine.Ask(r.Context(), req.Question)
	switch {
	case errors.Is(err, bot.ErrEmptyQuestion):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No question provided"})
		return
	case err != nil:
		resp := errorResponse{Error: err.Error(), Mode: bot.ModeError}
		if answer != nil {
			resp.Answer = answer.Answer
		}
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	s.logQuestion(r, req.Question, answer, time.Since(start))
	writeJSON(w, http.StatusOK, answer)
}

// logQuestion records the exchange. Logging failures never affect the
// response the visitor already received.
func (s *Server) logQuestion(r *http.Request, question string, answer *bot.Answer, took time.Duration) {
	if s.log == nil {
		return
	}
	err := s.log.Log(r.Context(), history.Entry{
		Question:   question,
		Answer:     answer.Answer,
		Mode:       answer.Mode,
		HasImages:  answer.HasImages,
		DurationMS: took.Milliseconds(),
		Client:     r.RemoteAddr,
	})
	if err != nil {
		log.Printf("server: log question: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}
