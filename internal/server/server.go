// Package server plays minesweeper over WebSocket connections, one game per
// connection.
package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/middleware"
	"github.com/vancomm/minesweeper/internal/mines"
)

type Server struct {
	log      logrus.FieldLogger
	cfg      *config.Config
	ws       *config.WebSocket
	decoder  *schema.Decoder
	defaults mines.GameParams
	newRand  func() *rand.Rand
	router   *http.ServeMux
}

func New(logger logrus.FieldLogger, cfg *config.Config) (*Server, error) {
	defaults, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	s := &Server{
		log:      logger,
		cfg:      cfg,
		ws:       config.NewWebSocket(cfg.AllowedOrigins),
		decoder:  decoder,
		defaults: defaults,
		newRand:  mines.NewRand,
		router:   http.NewServeMux(),
	}
	s.loadRoutes()
	return s, nil
}

func (s *Server) loadRoutes() {
	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("GET /presets", s.handlePresets)
	s.router.HandleFunc("GET /play", s.handlePlay)
}

func (s *Server) Handler() http.Handler {
	mws := []middleware.Middleware{}
	if len(s.cfg.AllowedOrigins) > 0 {
		mws = append(mws, middleware.Cors(s.cfg.AllowedOrigins))
	}
	mws = append(mws, middleware.Logging(s.log))
	return middleware.Wrap(s.router, mws...)
}

// Run serves until ctx is done, then shuts down gracefully. Open game
// sessions are closed when ctx is done.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.WithField("addr", s.cfg.Addr).Info("server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), s.cfg.ShutdownTimeout.Duration,
		)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
