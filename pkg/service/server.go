package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/revilo196/oscquery-go/pkg/log"
	"github.com/revilo196/oscquery-go/pkg/model"
)

// DefaultAddress is the listen address used when none is configured.
const DefaultAddress = ":8080"

// ServerConfig configures an OSCQuery HTTP server.
type ServerConfig struct {
	// Address to listen on (e.g. ":8080" or "127.0.0.1:8080").
	Address string

	// Logger for protocol logging (optional).
	Logger log.Logger

	// ReadHeaderTimeout bounds header parsing (default: 5s).
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown (default: 5s).
	ShutdownTimeout time.Duration
}

// Server serves an OSCQuery namespace over HTTP. The tree is fixed at
// construction; Start and Stop only manage the listener.
type Server struct {
	config  ServerConfig
	service *Service
	logger  log.Logger

	httpServer *http.Server
	listener   net.Listener
	running    atomic.Bool
}

// NewServer creates a server for a built tree.
func NewServer(root *model.Node, config ServerConfig) *Server {
	if config.Address == "" {
		config.Address = DefaultAddress
	}
	if config.ReadHeaderTimeout == 0 {
		config.ReadHeaderTimeout = 5 * time.Second
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 5 * time.Second
	}
	logger := log.OrNoop(config.Logger)
	return &Server{
		config:  config,
		service: New(root, logger),
		logger:  logger,
	}
}

// Service returns the underlying query service.
func (s *Server) Service() *Service { return s.service }

// Start begins listening and serving queries. It returns once the
// listener is bound; serving continues until Stop or ctx cancellation.
func (s *Server) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("server already running")
	}

	listener, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("failed to listen on %s: %w", s.config.Address, err)
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:           s.service,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	s.logStateChange("stopped", "serving", listener.Addr().String())

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Log(log.Event{
				Timestamp: time.Now(),
				Layer:     log.LayerHTTP,
				Category:  log.CategoryError,
				Error:     &log.ErrorEventData{Message: err.Error()},
			})
		}
	}()

	// Stop serving when the context is cancelled.
	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	return nil
}

// Stop shuts the server down gracefully. It is safe to call Stop more
// than once.
func (s *Server) Stop() error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	s.logStateChange("serving", "stopped", "shutdown")
	return err
}

// Addr returns the bound listener address, nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) logStateChange(from, to, reason string) {
	s.logger.Log(log.Event{
		Timestamp:   time.Now(),
		Layer:       log.LayerHTTP,
		Category:    log.CategoryStateChange,
		StateChange: &log.StateChangeEvent{From: from, To: to, Reason: reason},
	})
}
