package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mudhumeni-ai/server/internal/advisor"
	"github.com/mudhumeni-ai/server/internal/i18n"
	"github.com/mudhumeni-ai/server/internal/logx"
)

// Config holds server configuration.
type Config struct {
	Port            int
	DefaultLanguage i18n.Language
	AllowAll        bool // allow all CORS origins (dev mode)
}

// Server is the HTTP front of the advisory service.
type Server struct {
	cfg        Config
	advisor    *advisor.Service
	router     chi.Router
	httpServer *http.Server
}

// New creates a server wired to the given advisory service.
func New(cfg Config, svc *advisor.Service) *Server {
	s := &Server{
		cfg:     cfg,
		advisor: svc,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	s.registerChatRoutes(r)
	r.Get("/ws/chat", s.handleWebSocket)

	return r
}

// reply routes a message through the remote model, or through the local
// knowledge base when offline is set.
func (s *Server) reply(ctx context.Context, sessionID, message string, lang i18n.Language, offline bool) (advisor.Reply, error) {
	if offline {
		return s.advisor.Advise(ctx, sessionID, message)
	}
	return s.advisor.Send(ctx, sessionID, message, lang)
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logx.Info().Str("addr", addr).Msg("mudhumeni server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
