package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/mudhumeni-ai/server/internal/i18n"
	"github.com/mudhumeni-ai/server/internal/logx"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type      string `json:"type"`       // "message" or "clear"
	SessionID string `json:"session_id"` // empty for new sessions
	Content   string `json:"content"`
	Language  string `json:"language"`
	Format    string `json:"format"` // "html" renders the reply to HTML
	Offline   bool   `json:"offline"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type       string   `json:"type"` // "response", "cleared" or "error"
	SessionID  string   `json:"session_id"`
	Content    string   `json:"content"`
	HTML       string   `json:"html,omitempty"`
	Confidence float64  `json:"confidence,omitempty"`
	FollowUps  []string `json:"follow_up_questions,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logx.Warn().Err(err).Msg("server: websocket upgrade")
		return
	}
	defer conn.Close()

	// A connection without a session id gets one that sticks for its lifetime.
	connSession := ""

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logx.Warn().Err(err).Msg("server: websocket read")
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendWSError(conn, "", "invalid message format")
			continue
		}

		if req.SessionID == "" {
			if connSession == "" {
				connSession = uuid.NewString()
			}
			req.SessionID = connSession
		}

		switch req.Type {
		case "message":
			s.handleWSMessage(conn, r, req)
		case "clear":
			s.handleWSClear(conn, r, req)
		default:
			s.sendWSError(conn, req.SessionID, "unknown message type: "+req.Type)
		}
	}
}

func (s *Server) handleWSMessage(conn *websocket.Conn, r *http.Request, req wsRequest) {
	if req.Content == "" {
		s.sendWSError(conn, req.SessionID, "content is required")
		return
	}

	lang := s.cfg.DefaultLanguage
	if req.Language != "" {
		lang = i18n.Parse(req.Language)
	}

	reply, err := s.reply(r.Context(), req.SessionID, req.Content, lang, req.Offline)
	if err != nil {
		s.sendWSError(conn, req.SessionID, "processing failed: "+err.Error())
		return
	}

	resp := wsResponse{
		Type:       "response",
		SessionID:  req.SessionID,
		Content:    reply.Text,
		Confidence: reply.Confidence,
		FollowUps:  reply.FollowUps,
	}
	if req.Format == "html" {
		html, err := renderHTML(reply.Text)
		if err != nil {
			s.sendWSError(conn, req.SessionID, "rendering failed: "+err.Error())
			return
		}
		resp.HTML = html
	}
	s.sendWS(conn, resp)
}

func (s *Server) handleWSClear(conn *websocket.Conn, r *http.Request, req wsRequest) {
	if err := s.advisor.Clear(r.Context(), req.SessionID); err != nil {
		s.sendWSError(conn, req.SessionID, "clear failed: "+err.Error())
		return
	}
	s.sendWS(conn, wsResponse{Type: "cleared", SessionID: req.SessionID})
}

func (s *Server) sendWS(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		logx.Warn().Err(err).Msg("server: websocket write")
	}
}

func (s *Server) sendWSError(conn *websocket.Conn, sessionID, message string) {
	s.sendWS(conn, wsResponse{
		Type:      "error",
		SessionID: sessionID,
		Content:   message,
	})
}
