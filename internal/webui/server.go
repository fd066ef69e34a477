package webui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"marquee/internal/config"
	"marquee/internal/screening"
)

// Server serves the rendered calendar page. The catalog is re-read on every
// request so a concurrent fetch shows up on the next reload.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	bind   string

	listener net.Listener
	server   *http.Server

	// overridable in tests
	now func() time.Time
}

// NewServer builds a Server bound to the given port on all interfaces.
func NewServer(cfg *config.Config, logger *slog.Logger, port int) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		bind:   fmt.Sprintf(":%d", port),
		now:    time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler exposes the HTTP handler for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Run listens and serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("web listen: %w", err)
	}
	s.listener = listener

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.logger.Info("web server listening", slog.String("address", listener.Addr().String()))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("web shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web serve: %w", err)
		}
		return nil
	}
}

// Addr reports the bound address once Run has started listening.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := screening.Load(s.cfg.CatalogPath())
	if err != nil {
		s.logger.Error("catalog load failed", slog.String("error", err.Error()))
		http.Error(w, "catalog unavailable", http.StatusInternalServerError)
		return
	}

	now := s.now()
	upcoming := items[:0:0]
	for _, item := range items {
		if !item.DateTime.Before(now) {
			upcoming = append(upcoming, item)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Render(w, upcoming, s.cfg.Site.OnlineBase(), now); err != nil {
		s.logger.Error("page render failed", slog.String("error", err.Error()))
	}
}
