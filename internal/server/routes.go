package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mudhumeni-ai/server/internal/i18n"
	"github.com/mudhumeni-ai/server/internal/session"
)

type chatRequest struct {
	SessionID string `json:"session_id"` // empty for new sessions
	Message   string `json:"message"`
	Language  string `json:"language"` // en, sn or nd; empty uses the server default
	Format    string `json:"format"`   // "html" renders the reply to HTML
	Offline   bool   `json:"offline"`  // skip the remote model, answer from local knowledge
}

type chatResponse struct {
	SessionID  string   `json:"session_id"`
	Text       string   `json:"text"`
	HTML       string   `json:"html,omitempty"`
	Confidence float64  `json:"confidence"`
	FollowUps  []string `json:"follow_up_questions"`
}

func (s *Server) registerChatRoutes(r chi.Router) {
	r.Route("/api/chat", func(r chi.Router) {
		r.Post("/", s.handleChat)
		r.Get("/{id}/history", s.handleHistory)
		r.Delete("/{id}", s.handleClear)
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, `{"error":"message is required"}`, http.StatusBadRequest)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	lang := s.cfg.DefaultLanguage
	if req.Language != "" {
		lang = i18n.Parse(req.Language)
	}

	reply, err := s.reply(r.Context(), sessionID, req.Message, lang, req.Offline)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	resp := chatResponse{
		SessionID:  sessionID,
		Text:       reply.Text,
		Confidence: reply.Confidence,
		FollowUps:  reply.FollowUps,
	}
	if resp.FollowUps == nil {
		resp.FollowUps = []string{}
	}
	if req.Format == "html" {
		html, err := renderHTML(reply.Text)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		resp.HTML = html
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	turns, err := s.advisor.History(r.Context(), sessionID)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	if turns == nil {
		turns = []session.Turn{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(turns)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if err := s.advisor.Clear(r.Context(), sessionID); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"cleared"}`))
}
