// Package server exposes mailboxes over HTTP: message lists as JSON and
// messages as rendered documents with a synthesized header block.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/emurenMRz/mboxrender/internal/eml"
	"github.com/emurenMRz/mboxrender/internal/mailbox"
	"github.com/emurenMRz/mboxrender/internal/render"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Store    *mailbox.Store
	Labels   render.Labels
	Renderer *render.Renderer
	Logger   *slog.Logger
	// StaticDir holds index.html and the viewer assets.
	StaticDir string
}

type Server struct {
	store     *mailbox.Store
	labels    render.Labels
	parser    *eml.Parser
	renderer  *render.Renderer
	logger    *slog.Logger
	staticDir string
	handler   http.Handler
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		store:     opts.Store,
		labels:    opts.Labels,
		parser:    eml.NewParser(opts.Labels, logger),
		renderer:  opts.Renderer,
		logger:    logger,
		staticDir: opts.StaticDir,
	}
	s.handler = s.register()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
