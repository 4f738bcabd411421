package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

var (
	ErrNotListening = errors.New("server is not listening")
	ErrNotLoopback  = errors.New("host is not a loopback address")
)

type HttpServerParams struct {
	fx.In

	Config HttpConfig

	Handlers []*HttpHandler `group:"handlers"`
	Logger   *zap.Logger
}

type HttpServer struct {
	host   string
	port   int
	server *http.Server
	log    *zap.Logger

	mu       sync.Mutex
	listener net.Listener
	done     chan struct{}
}

func NewHttpServer(params HttpServerParams) *HttpServer {
	router := NewRouter(params.Handlers)

	var handler http.Handler = router
	if params.Config.H2c {
		handler = h2c.NewHandler(router, &http2.Server{})
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", params.Config.Host, params.Config.Port),
		Handler: handler,
	}

	return &HttpServer{
		host:   params.Config.Host,
		port:   params.Config.Port,
		server: server,
		log:    params.Logger,
	}
}

func NewLifecycleServer(params HttpServerParams, lc fx.Lifecycle) *HttpServer {
	server := NewHttpServer(params)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := server.Listen(ctx); err != nil {
				return err
			}
			go server.Serve()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
	return server
}

// Listen binds the listening socket. Binding happens before serving so
// that an address already in use fails application startup.
func (s *HttpServer) Listen(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkLoopback(ctx, s.host); err != nil {
		s.log.With(zap.Error(err)).Error("refusing to listen")
		return fmt.Errorf("listen on %s:%d: %w", s.host, s.port, err)
	}

	cfg := net.ListenConfig{}

	listener, err := cfg.Listen(
		ctx,
		"tcp",
		fmt.Sprintf("%s:%d", s.host, s.port),
	)
	if err != nil {
		s.log.With(zap.Error(err)).Error("failed to listen")
		return fmt.Errorf("listen on %s:%d: %w", s.host, s.port, err)
	}

	s.listener = listener
	s.done = make(chan struct{})

	s.log.With(zap.String("address", listener.Addr().String())).Info("listening")

	return nil
}

// checkLoopback fails unless every address host resolves to is a
// loopback address. An empty host would bind all interfaces.
func checkLoopback(ctx context.Context, host string) error {
	if host == "" {
		return ErrNotLoopback
	}

	if ip := net.ParseIP(host); ip != nil {
		if !ip.IsLoopback() {
			return ErrNotLoopback
		}
		return nil
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return fmt.Errorf("resolve host: %w", err)
	}

	for _, addr := range addrs {
		if !addr.IP.IsLoopback() {
			return ErrNotLoopback
		}
	}

	return nil
}

// Serve accepts connections on the bound listener until Shutdown is
// called. Listen must have been called before.
func (s *HttpServer) Serve() error {
	s.mu.Lock()
	listener, done := s.listener, s.done
	s.mu.Unlock()

	if listener == nil {
		return ErrNotListening
	}

	defer close(done)

	if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
		s.log.With(zap.Error(err)).Error("failed to serve")
		return err
	}

	return nil
}

// Addr returns the bound address, or nil if the server is not listening.
func (s *HttpServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// Shutdown stops accepting connections, waits for in-flight requests
// to complete and releases the listening socket.
func (s *HttpServer) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")

	if err := s.server.Shutdown(ctx); err != nil {
		s.log.With(zap.Error(err)).Error("failed to shutdown")
		return err
	}

	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
