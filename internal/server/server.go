package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/courseadmin/internal/bootstrap"
	"github.com/yigit/courseadmin/internal/config"
)

// Options locate the configuration files
type Options struct {
	ConfigPath string
	EnvPath    string
}

// Server holds the state for the HTTP server.
type Server struct {
	config     *config.Config
	handler    http.Handler
	dbPool     *pgxpool.Pool
	closeCache func() error
	logger     zerolog.Logger
	http       *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer(ctx context.Context, opts Options) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts.ConfigPath, opts.EnvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	views, closeCache, err := bootstrap.SetupViewCache(ctx, cfg, lgr)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to setup view cache: %w", err)
	}

	deps := bootstrap.BuildDependencies(cfg, dbPool, views, lgr)

	return &Server{
		config:     cfg,
		handler:    bootstrap.SetupRouter(cfg, deps, dbPool, lgr),
		dbPool:     dbPool,
		closeCache: closeCache,
		logger:     lgr,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var errs []error

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
	}

	if s.closeCache != nil {
		if err := s.closeCache(); err != nil {
			errs = append(errs, fmt.Errorf("view cache close: %w", err))
		}
	}

	if s.dbPool != nil {
		s.dbPool.Close()
		s.logger.Info().Msg("Database connection pool closed.")
	}

	err := errors.Join(errs...)
	if err != nil {
		s.logger.Error().Err(err).Msg("Server shutdown completed with errors")
		return err
	}
	s.logger.Info().Msg("Server shutdown process complete.")
	return nil
}
