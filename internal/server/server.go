// Package server exposes the chat orchestrator over a WebSocket endpoint.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"travelchat/internal"
	"travelchat/internal/ai"
	botconfig "travelchat/internal/config"
	"travelchat/internal/logger"
	"travelchat/internal/session"
)

type Server struct {
	cfg      *botconfig.Config
	orch     *ai.Orchestrator
	sessions *session.Store
	upgrader websocket.Upgrader

	httpServer *http.Server
}

func New(cfg *botconfig.Config, orch *ai.Orchestrator, sessions *session.Store) *Server {
	s := &Server{
		cfg:      cfg,
		orch:     orch,
		sessions: sessions,
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:    1024,
		WriteBufferSize:   1024,
		HandshakeTimeout:  internal.DEFAULT_HANDSHAKE_TIMEOUT * time.Second,
		EnableCompression: true,
		CheckOrigin:       s.checkOrigin,
	}

	return s
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.cfg.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// corsMiddleware handles preflight requests and sets the CORS headers for
// the plain HTTP routes. The websocket route enforces origin in the
// upgrader instead.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := "*"
		if len(s.cfg.AllowedOrigins) > 0 {
			origin = s.cfg.AllowedOrigins[0]
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Welcome to the Chat API",
		"version": internal.VERSION,
	})
}

// Handler returns the full route tree. Split out from Start so tests can
// mount it on httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/ws/chat", s.handleChat)
	return s.corsMiddleware(mux)
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: s.Handler(),
	}

	logger.Infof("Chat server listening on %s", s.cfg.ListenAddr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
