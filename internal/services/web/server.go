// Package web hosts the sticker gallery HTTP service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/louisbranch/stickerbook/internal/catalog"
	"github.com/louisbranch/stickerbook/internal/services/web/static"
)

// Config defines the inputs for the gallery web server.
type Config struct {
	// HTTPAddr is the listen address.
	HTTPAddr string
	// AssetsDir is the directory holding sticker image files.
	AssetsDir string
}

// Server hosts the gallery HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler assembles the gallery routes over an already-loaded catalog.
//
// This is the test-oriented entrypoint: it takes the catalog directly so
// handler tests need no database or filesystem.
func NewHandler(config Config, cat *catalog.Catalog) http.Handler {
	mux := http.NewServeMux()

	var assets http.Handler
	if strings.TrimSpace(config.AssetsDir) != "" {
		assets = http.FileServer(http.FS(os.DirFS(config.AssetsDir)))
	}
	staticHandler := http.FileServer(http.FS(static.FS))

	registerRoutes(mux, newHandlers(cat), assets, staticHandler)
	return otelhttp.NewHandler(mux, "web")
}

// NewServer builds a configured gallery server.
func NewServer(config Config, cat *catalog.Catalog) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(config, cat),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
