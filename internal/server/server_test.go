package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mudhumeni-ai/server/internal/advisor"
	"github.com/mudhumeni-ai/server/internal/knowledge"
	"github.com/mudhumeni-ai/server/internal/llm"
	"github.com/mudhumeni-ai/server/internal/session"
)

// stubProvider returns a fixed completion, or an error when failing is set.
type stubProvider struct {
	content string
	failing bool
}

func (p *stubProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if p.failing {
		return nil, context.DeadlineExceeded
	}
	return &llm.CompletionResponse{Content: p.content, Model: req.Model}, nil
}

func (p *stubProvider) Name() string { return "stub" }

func newTestServer(t *testing.T, provider llm.Provider) *Server {
	t.Helper()
	store := session.NewMemoryStore(10, 0)
	t.Cleanup(func() { store.Close() })

	composer := advisor.NewComposer(knowledge.MustLoad())
	svc := advisor.NewService(store, provider, composer, advisor.Options{
		Model:     "test-model",
		MaxTokens: 512,
	})
	return New(Config{Port: 0, DefaultLanguage: "en"}, svc)
}

func postChat(t *testing.T, s *Server, body map[string]any) (*httptest.ResponseRecorder, chatResponse) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshalling request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/chat/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	var resp chatResponse
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
	}
	return w, resp
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, &stubProvider{content: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("healthz status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("unexpected healthz body: %s", w.Body.String())
	}
}

func TestChatAssignsSessionID(t *testing.T) {
	s := newTestServer(t, &stubProvider{content: "Plant early."})

	w, resp := postChat(t, s, map[string]any{"message": "When should I plant?"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if resp.SessionID == "" {
		t.Error("expected a generated session_id")
	}
	if resp.Text != "Plant early." {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", resp.Confidence)
	}
}

func TestChatKeepsSessionID(t *testing.T) {
	s := newTestServer(t, &stubProvider{content: "Noted."})

	_, resp := postChat(t, s, map[string]any{"session_id": "farm-1", "message": "hello"})
	if resp.SessionID != "farm-1" {
		t.Errorf("session_id = %q, want farm-1", resp.SessionID)
	}
}

func TestChatMissingMessage(t *testing.T) {
	s := newTestServer(t, &stubProvider{content: "ok"})

	w, _ := postChat(t, s, map[string]any{"session_id": "farm-1"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChatOfflineUsesKnowledgeBase(t *testing.T) {
	// The provider must never be consulted in offline mode.
	s := newTestServer(t, &stubProvider{failing: true})

	w, resp := postChat(t, s, map[string]any{
		"message": "When should I plant maize?",
		"offline": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(resp.Text, "October-December") {
		t.Errorf("expected planting window in reply, got %q", resp.Text)
	}
	if resp.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", resp.Confidence)
	}
}

func TestChatProviderFailureFallsBack(t *testing.T) {
	s := newTestServer(t, &stubProvider{failing: true})

	w, resp := postChat(t, s, map[string]any{"message": "Tell me about maize"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if resp.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", resp.Confidence)
	}
	if resp.Text == "" {
		t.Error("expected a fallback reply")
	}
}

func TestChatHTMLFormat(t *testing.T) {
	s := newTestServer(t, &stubProvider{content: "**Season:** October"})

	_, resp := postChat(t, s, map[string]any{"message": "season?", "format": "html"})
	if !strings.Contains(resp.HTML, "<strong>Season:</strong>") {
		t.Errorf("expected rendered markdown, got %q", resp.HTML)
	}
}

func TestHistoryAndClear(t *testing.T) {
	s := newTestServer(t, &stubProvider{content: "Answer."})

	_, _ = postChat(t, s, map[string]any{"session_id": "farm-2", "message": "question one"})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/farm-2/history", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("history status = %d", w.Code)
	}

	var turns []session.Turn
	if err := json.Unmarshal(w.Body.Bytes(), &turns); err != nil {
		t.Fatalf("decoding history: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("history length = %d, want 2", len(turns))
	}
	if turns[0].Role != session.RoleUser || turns[1].Role != session.RoleAssistant {
		t.Errorf("unexpected turn roles: %+v", turns)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/chat/farm-2", nil)
	w = httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("clear status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/chat/farm-2/history", nil)
	w = httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	turns = nil
	if err := json.Unmarshal(w.Body.Bytes(), &turns); err != nil {
		t.Fatalf("decoding history after clear: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("history after clear = %d turns, want 0", len(turns))
	}
}
