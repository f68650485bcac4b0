package advisor

import (
	"context"
	"time"

	"github.com/mudhumeni-ai/server/internal/i18n"
	"github.com/mudhumeni-ai/server/internal/llm"
	"github.com/mudhumeni-ai/server/internal/logx"
	"github.com/mudhumeni-ai/server/internal/session"
)

// successConfidence is reported when the remote model answered.
const successConfidence = 0.95

// apologyText replaces an empty completion on an otherwise successful call.
const apologyText = "I apologize, but I encountered an issue processing your request. Please try again."

// historyWindow is the number of non-system turns kept in the outbound
// request (the new user turn included), matching the stored history cap.
const historyWindow = 10

// Reply is the advisory answer returned to the caller. Confidence signals
// whether the remote model answered (0.95) or a local fallback did (0.8).
type Reply struct {
	Text       string   `json:"text"`
	Confidence float64  `json:"confidence"`
	FollowUps  []string `json:"follow_up_questions"`
}

// Options are the fixed generation parameters for remote completions.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
	TopP        float64
	Timeout     time.Duration
}

// Service orchestrates a chat exchange: context tracking, history windowing,
// the single remote completion attempt, and the local fallback. Remote
// failures never surface as errors; only session-store failures do.
type Service struct {
	store    session.Store
	provider llm.Provider
	composer *Composer
	opts     Options
}

// NewService wires the advisory service together.
func NewService(store session.Store, provider llm.Provider, composer *Composer, opts Options) *Service {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Service{store: store, provider: provider, composer: composer, opts: opts}
}

// Send processes one user utterance through the remote model. On success the
// user and assistant turns are appended to the session history; on any remote
// failure the history is left untouched and a canned fallback is returned, so
// an identical retry after recovery replays cleanly.
func (s *Service) Send(ctx context.Context, sessionID, utterance string, lang i18n.Language) (Reply, error) {
	if err := s.updateContext(ctx, sessionID, utterance); err != nil {
		return Reply{}, err
	}

	history, err := s.store.History(ctx, sessionID)
	if err != nil {
		return Reply{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	resp, err := s.provider.Complete(callCtx, llm.CompletionRequest{
		Model:       s.opts.Model,
		Messages:    buildMessages(i18n.SystemPrompt(lang), history, utterance),
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
		TopP:        s.opts.TopP,
	})
	if err != nil {
		logx.Warn().Err(err).Str("session", sessionID).Msg("remote completion failed, serving fallback")
		return fallbackReply(utterance), nil
	}

	text := resp.Content
	if text == "" {
		text = apologyText
	}

	err = s.store.AppendTurns(ctx, sessionID,
		session.Turn{Role: session.RoleUser, Content: utterance},
		session.Turn{Role: session.RoleAssistant, Content: text},
	)
	if err != nil {
		return Reply{}, err
	}

	return Reply{
		Text:       text,
		Confidence: successConfidence,
		FollowUps:  followUpQuestions(utterance),
	}, nil
}

// Advise answers from the knowledge base without contacting the remote
// model. The session context is still updated, but like the fallback path it
// leaves the message history untouched.
func (s *Service) Advise(ctx context.Context, sessionID, utterance string) (Reply, error) {
	sc, err := s.store.LoadContext(ctx, sessionID)
	if err != nil {
		return Reply{}, err
	}
	sc.Update(utterance)
	if err := s.store.SaveContext(ctx, sessionID, sc); err != nil {
		return Reply{}, err
	}

	advice := s.composer.Compose(Classify(utterance), utterance, sc)
	return Reply{
		Text:       advice.Text,
		Confidence: fallbackConfidence,
		FollowUps:  advice.FollowUps,
	}, nil
}

// History returns the stored turns for a session.
func (s *Service) History(ctx context.Context, sessionID string) ([]session.Turn, error) {
	return s.store.History(ctx, sessionID)
}

// Clear removes all state for a session.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

func (s *Service) updateContext(ctx context.Context, sessionID, utterance string) error {
	sc, err := s.store.LoadContext(ctx, sessionID)
	if err != nil {
		return err
	}
	sc.Update(utterance)
	return s.store.SaveContext(ctx, sessionID, sc)
}

// buildMessages assembles the outbound turn list: the localized system
// prompt, then the most recent turns with the new user message counted
// inside the window. The system prompt is never evicted.
func buildMessages(systemPrompt string, history []session.Turn, utterance string) []llm.Message {
	turns := append(append([]session.Turn(nil), history...), session.Turn{
		Role:    session.RoleUser,
		Content: utterance,
	})
	if len(turns) > historyWindow {
		turns = turns[len(turns)-historyWindow:]
	}

	messages := make([]llm.Message, 0, len(turns)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, t := range turns {
		messages = append(messages, llm.Message{Role: llm.Role(t.Role), Content: t.Content})
	}
	return messages
}
