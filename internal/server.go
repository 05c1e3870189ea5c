package internal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatsSource reports the message loop counters
type StatsSource interface {
	Stats() MonitorStats
}

// NewStatusRouter serves /healthz and /metrics
func NewStatusRouter(src StatsSource) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		stats := src.Stats()
		code := http.StatusOK
		switch stats.State {
		case StateConnected.String(), StateReceiving.String(), StateDispatching.String():
		default:
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(stats)
	})
	return r
}

// StatusServer runs the status router in the background
type StatusServer struct {
	srv *http.Server
}

// StartStatusServer listens on addr. Serve errors are logged.
func StartStatusServer(addr string, src StatsSource) *StatusServer {
	s := &StatusServer{srv: &http.Server{
		Addr:              addr,
		Handler:           NewStatusRouter(src),
		ReadHeaderTimeout: 5 * time.Second,
	}}
	go func() {
		LogInfo("Status server listening on %s", addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			LogError("Status server failed: %v", err)
		}
	}()
	return s
}

// Shutdown stops the server, waiting up to five seconds for requests
func (s *StatusServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
