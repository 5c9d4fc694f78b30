// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/gorilla/mux"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
)

const (
	statusPath = "/status"

	readTimeout     = 30 * time.Second
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Handler is an HTTP handler mounted by the metrics server.
type Handler struct {
	Handler     http.Handler
	Path        string
	Description string
}

// Status is the progress of the run executed by the process.
type Status struct {
	RunID   string `json:"run_id"`
	Command string `json:"command"`
	Stage   string `json:"stage"`
}

// StatusFunc reports the current progress. It is called on every status
// request and must be safe for concurrent use.
type StatusFunc func() Status

// Server exposes the metrics of a migration run next to its progress, so a
// scraper can tell which run and stage the numbers belong to.
type Server struct {
	server *http.Server

	port    string
	metrics Handler
	status  StatusFunc
	pprof   bool
}

// NewServer returns a server for the metrics handler of a provider. status
// may be nil, in which case the status endpoint reports that no run started.
func NewServer(port string, metrics Handler, status StatusFunc, pprof bool) *Server {
	return &Server{port: port, metrics: metrics, status: status, pprof: pprof}
}

func (m *Server) Addr() string {
	return fmt.Sprintf(":%s", m.port)
}

// Router builds the routes served by the server.
func (m *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Handle(m.metrics.Path, m.metrics.Handler).Methods(http.MethodGet)
	router.HandleFunc(statusPath, m.handleStatus).Methods(http.MethodGet)
	if m.pprof {
		router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		router.HandleFunc("/debug/pprof/profile", pprof.Profile)
		router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		router.HandleFunc("/debug/pprof/trace", pprof.Trace)
		router.PathPrefix("/debug/pprof/").HandlerFunc(pprof.Index)
	}
	return router
}

// Start serves in the background until Stop is called.
func (m *Server) Start() {
	m.server = &http.Server{
		Addr:         m.Addr(),
		Handler:      m.Router(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		mlog.Info("Metrics server started", mlog.String("port", m.port), mlog.String("metrics", m.metrics.Path), mlog.Bool("pprof", m.pprof))
		if err := m.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			mlog.Error("Error trying to start the metrics server", mlog.Err(err))
		}
	}()
}

func (m *Server) Stop() {
	if m.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := m.server.Shutdown(ctx); err != nil {
		mlog.Error("Error shutting down the metrics server", mlog.Err(err))
	}
	mlog.Info("Metrics server stopped")
}

// handleStatus answers 503 until a run has started.
func (m *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var status Status
	if m.status != nil {
		status = m.status()
	}

	w.Header().Set("Content-Type", "application/json")
	if status.RunID == "" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(status); err != nil {
		mlog.Error("Error rendering run status", mlog.Err(err))
	}
}
