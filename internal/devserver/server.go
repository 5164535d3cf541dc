package devserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	shutdownTimeout = 5 * time.Second
	cleanupInterval = 3 * time.Minute
)

type Server struct {
	deps *Deps
	http *http.Server
}

// New loads the users and builds the server. It does not listen yet.
func New(cfg Config, log zerolog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	users, err := LoadUsersFile(cfg.UsersFile, bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	log.Info().Int("users", users.Len()).Str("file", cfg.UsersFile).Msg("users loaded")

	deps := &Deps{
		Config:  cfg,
		Users:   users,
		Tokens:  NewTokens(cfg.JWTSecret, cfg.TokenTTL),
		Limiter: NewIPRateLimiter(rate.Limit(cfg.LoginRate), cfg.LoginBurst),
		Log:     log,
	}

	return &Server{
		deps: deps,
		http: &http.Server{
			Addr:         cfg.Addr,
			Handler:      Router(deps),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}, nil
}

// Run listens on the configured address until ctx is done, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := s.deps.Log
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", ln.Addr().String()).Msg("devserver listening")
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		s.deps.Limiter.RunCleanup(gctx, cleanupInterval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	log.Info().Msg("devserver stopped")
	return err
}
