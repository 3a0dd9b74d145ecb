// Package server exposes projections over a small read-only JSON API
// for external dashboards. The plan file is re-read per request, so an
// edit on disk shows up on the next call without a restart.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/flowcast-dev/flowcast/internal/config"
	"github.com/flowcast-dev/flowcast/internal/engine"
)

const (
	defaultHorizonMonths = 18
	maxHorizonMonths     = 120
)

// Server serves projection results computed from a plan file.
type Server struct {
	planPath string
	log      *logrus.Logger
	router   *mux.Router
}

// New creates a Server reading its plan from planPath.
func New(planPath string, log *logrus.Logger) *Server {
	s := &Server{planPath: planPath, log: log, router: mux.NewRouter()}
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/v1/plan", s.handlePlan).Methods(http.MethodGet)
	s.router.HandleFunc("/api/v1/month", s.handleMonth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/v1/horizon", s.handleHorizon).Methods(http.MethodGet)
	s.router.Use(s.logRequests)
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePlan(w http.ResponseWriter, _ *http.Request) {
	doc, err := config.Load(s.planPath)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	plan, warns := config.Normalize(doc)
	warnings := make([]string, 0, len(warns))
	for _, wn := range warns {
		warnings = append(warnings, wn.String())
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"plan":     plan,
		"warnings": warnings,
	})
}

func (s *Server) handleMonth(w http.ResponseWriter, _ *http.Request) {
	doc, err := config.Load(s.planPath)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	plan, _ := config.Normalize(doc)
	s.writeJSON(w, http.StatusOK, engine.Simulate(plan))
}

func (s *Server) handleHorizon(w http.ResponseWriter, r *http.Request) {
	months := defaultHorizonMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		months = n
	}
	if months < 1 {
		months = 1
	}
	if months > maxHorizonMonths {
		months = maxHorizonMonths
	}

	doc, err := config.Load(s.planPath)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	plan, _ := config.Normalize(doc)
	s.writeJSON(w, http.StatusOK, engine.SimulateHorizon(plan, months))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("encoding response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.WithError(err).Warn("request failed")
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}
