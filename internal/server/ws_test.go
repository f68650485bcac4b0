package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func dialWS(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/chat"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}
	return conn
}

func TestWebSocketMessage(t *testing.T) {
	s := newTestServer(t, &stubProvider{content: "Plant in November."})
	conn := dialWS(t, s)

	if err := conn.WriteJSON(wsRequest{Type: "message", Content: "when to plant maize"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var resp wsResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != "response" {
		t.Fatalf("type = %q, want response: %+v", resp.Type, resp)
	}
	if resp.Content != "Plant in November." {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.SessionID == "" {
		t.Error("expected a generated session_id")
	}
	if resp.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", resp.Confidence)
	}
}

func TestWebSocketSessionSticksPerConnection(t *testing.T) {
	s := newTestServer(t, &stubProvider{content: "ok"})
	conn := dialWS(t, s)

	var first, second wsResponse
	if err := conn.WriteJSON(wsRequest{Type: "message", Content: "hello"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := conn.WriteJSON(wsRequest{Type: "message", Content: "again"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&second); err != nil {
		t.Fatalf("read: %v", err)
	}

	if first.SessionID == "" || first.SessionID != second.SessionID {
		t.Errorf("session ids differ across one connection: %q vs %q", first.SessionID, second.SessionID)
	}
}

func TestWebSocketEmptyContent(t *testing.T) {
	s := newTestServer(t, &stubProvider{content: "ok"})
	conn := dialWS(t, s)

	if err := conn.WriteJSON(wsRequest{Type: "message"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var resp wsResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != "error" {
		t.Errorf("type = %q, want error", resp.Type)
	}
	if !strings.Contains(resp.Content, "content is required") {
		t.Errorf("content = %q", resp.Content)
	}
}

func TestWebSocketUnknownType(t *testing.T) {
	s := newTestServer(t, &stubProvider{content: "ok"})
	conn := dialWS(t, s)

	if err := conn.WriteJSON(wsRequest{Type: "subscribe", Content: "x"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var resp wsResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != "error" {
		t.Errorf("type = %q, want error", resp.Type)
	}
}

func TestWebSocketClear(t *testing.T) {
	s := newTestServer(t, &stubProvider{content: "ok"})
	conn := dialWS(t, s)

	if err := conn.WriteJSON(wsRequest{Type: "message", SessionID: "ws-1", Content: "hello"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp wsResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}

	if err := conn.WriteJSON(wsRequest{Type: "clear", SessionID: "ws-1"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != "cleared" {
		t.Errorf("type = %q, want cleared", resp.Type)
	}
}
