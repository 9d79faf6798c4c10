// Package web serves Pac-Man over websockets. Each connection owns one
// hosted match; the browser sends inputs for both seats and receives a
// snapshot after every tick.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	engine "github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/multiplayer"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// TickRate is the simulation rate of every match.
	TickRate int

	// Store persists scores and versus results. Optional.
	Store *storage.Store

	// Logger defaults to a timestamped stderr logger.
	Logger *log.Logger
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:  ":8080",
		TickRate: 60,
	}
}

// Server routes HTTP requests and runs one match per websocket.
type Server struct {
	cfg      Config
	logger   *log.Logger
	router   *way.Router
	upgrader websocket.Upgrader
	sessions *multiplayer.SessionRegistry
	nextID   atomic.Uint64
}

// NewServer creates a server and its routes.
func NewServer(cfg Config) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-web",
		})
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		sessions: multiplayer.NewSessionRegistry(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", "/healthz", s.handleHealth)
	s.router.HandleFunc("GET", "/play/:mode", s.handlePlay)
	s.router.HandleFunc("GET", "/scores/:game", s.handleScores)
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.cfg.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Count(),
	})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	gameID := way.Param(r.Context(), "game")
	if !registry.Exists(gameID) {
		writeJSON(w, http.StatusNotFound, ErrorMessage{Type: "error", Message: fmt.Sprintf("unknown game %q", gameID)})
		return
	}
	if s.cfg.Store == nil {
		writeJSON(w, http.StatusServiceUnavailable, ErrorMessage{Type: "error", Message: "scores are not available"})
		return
	}

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorMessage{Type: "error", Message: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	entries, err := s.cfg.Store.TopScores(gameID, limit)
	if err != nil {
		s.logger.Error("failed to load scores", "game", gameID, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorMessage{Type: "error", Message: "failed to load scores"})
		return
	}

	out := make([]ScoreMessage, 0, len(entries))
	for _, e := range entries {
		out = append(out, ScoreMessage{
			Player:    e.Player,
			Score:     e.Score,
			Level:     e.Level,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	mode, err := engine.ParseMode(way.Param(r.Context(), "mode"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorMessage{Type: "error", Message: err.Error()})
		return
	}
	player := r.URL.Query().Get("player")

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	sessionID := multiplayer.SessionID(fmt.Sprintf("ws-%d", s.nextID.Add(1)))
	session := multiplayer.NewChannelSession(sessionID, 8)
	s.sessions.Register(session)
	defer s.sessions.Unregister(sessionID)
	defer session.Close()

	game := pacman.New(mode)
	matchCfg := multiplayer.MatchConfig{
		GameID:   game.ID(),
		Mode:     multiplayer.MatchModeSolo,
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: s.cfg.TickRate},
		TickRate: s.cfg.TickRate,
		OnError: func(err error) {
			s.logger.Error("failed to save match", "session", sessionID, "error", err)
		},
	}
	if game.IsVersus() {
		matchCfg.Mode = multiplayer.MatchModeLocalVersus
	}
	if s.cfg.Store != nil {
		matchCfg.Saver = s.cfg.Store
	}
	match := multiplayer.NewHostedMatch(matchCfg, game, session)

	s.logger.Info("match started", "session", sessionID, "match", match.ID(), "game", game.ID(), "remote", r.RemoteAddr)
	go match.Run(func(res multiplayer.MatchResult) {
		s.logger.Info("match ended", "match", res.MatchID, "reason", res.Reason, "score", res.Score, "level", res.Level)
		if err := s.recordScore(game, player, res); err != nil {
			s.logger.Error("failed to save score", "session", sessionID, "error", err)
		}
	})
	defer match.Stop()

	rejects := make(chan string, 8)
	go s.readLoop(conn, session, match, rejects)

	for {
		select {
		case evt := <-session.Events():
			msg, ok := encodeEvent(evt)
			if !ok {
				continue
			}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
			if _, ended := evt.(multiplayer.MatchEndedEvent); ended {
				err := conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match over"))
				if err != nil {
					s.logger.Debug("close frame not sent", "session", sessionID, "error", err)
				}
				return
			}
		case reason := <-rejects:
			if err := conn.WriteJSON(ErrorMessage{Type: "error", Message: reason}); err != nil {
				return
			}
		case <-session.Done():
			return
		}
	}
}

// recordScore saves the score of a completed solo match. Versus results
// are stored by the match saver.
func (s *Server) recordScore(game registry.VersusGame, player string, res multiplayer.MatchResult) error {
	if s.cfg.Store == nil || game.IsVersus() || res.Reason != multiplayer.MatchEndReasonCompleted {
		return nil
	}
	_, err := s.cfg.Store.SaveScore(game.ID(), player, res.Score, res.Level)
	return err
}

// readLoop feeds client commands into the match until the socket closes.
func (s *Server) readLoop(conn *websocket.Conn, session *multiplayer.ChannelSession, match *multiplayer.HostedMatch, rejects chan<- string) {
	defer session.Close()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logger.Warn("discarding malformed message", "session", session.ID(), "error", err)
			continue
		}

		player, in, err := msg.toInput()
		if err != nil {
			select {
			case rejects <- err.Error():
			default:
			}
			continue
		}
		match.SendInput(player, in)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Best-effort, headers are already sent
	json.NewEncoder(w).Encode(v)
}
