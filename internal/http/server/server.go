package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 120 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type HTTPServer struct {
	logs   *zap.SugaredLogger
	server *http.Server
}

func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, port string) *HTTPServer {
	return &HTTPServer{
		logs: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
	}
}

// Run starts serving in the background. The returned channel receives the
// error that stopped the server, http.ErrServerClosed after Shutdown.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)

	go func() {
		s.logs.Infow("http server started", "address", s.server.Addr)
		errChan <- s.server.ListenAndServe()
		close(errChan)
	}()

	return errChan
}

func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logs.Infow("http server shutting down", "address", s.server.Addr)
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
