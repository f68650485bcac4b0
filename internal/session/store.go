package session

import "context"

// Store owns all per-session state. Implementations must return a zero-value
// Context and empty history for sessions that have never been seen, so
// sessions are created lazily on first use.
type Store interface {
	// LoadContext returns the conversation context for a session.
	LoadContext(ctx context.Context, sessionID string) (*Context, error)

	// SaveContext persists the conversation context for a session.
	SaveContext(ctx context.Context, sessionID string, sc *Context) error

	// History returns the stored turns for a session, oldest first.
	History(ctx context.Context, sessionID string) ([]Turn, error)

	// AppendTurns appends turns to a session's history, evicting the oldest
	// turns beyond the store's window.
	AppendTurns(ctx context.Context, sessionID string, turns ...Turn) error

	// Clear removes all state for a session.
	Clear(ctx context.Context, sessionID string) error
}
