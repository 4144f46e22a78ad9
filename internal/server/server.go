package server

import (
	"context"
	"net/http"
	"time"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/iksnae/bookmark-tag/internal/pocket"
)

// RandomSource yields one random saved item per call
type RandomSource interface {
	Random(ctx context.Context) (pocket.Picked, error)
}

// New builds the proxy server. It is not started.
func New(addr string, source RandomSource) *http.Server {
	handlers := NewHandlers(source)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handlers.HandleRandom)
	mux.HandleFunc("GET /random", handlers.HandleRandom)
	mux.HandleFunc("GET /healthz", handlers.HandleHealth)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	internal.LogInfo("Server configured on %s", addr)
	return srv
}
