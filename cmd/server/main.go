package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/awardly/verdict/internal/logger"
	"github.com/awardly/verdict/loader"
	"github.com/awardly/verdict/rules"
)

type Server struct {
	registry *loader.Registry
	engine   *rules.Engine
	metrics  *prometheus.Registry
	router   *chi.Mux
}

func NewServer() *Server {
	promRegistry := prometheus.NewRegistry()

	engine := rules.NewEngine(
		rules.WithLogger(logger.Logger),
		rules.WithMetrics(rules.NewMetrics(promRegistry)),
	)

	s := &Server{
		registry: loader.NewRegistry(nil),
		engine:   engine,
		metrics:  promRegistry,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/api/v1/health", s.handleHealth)

	// Evaluation
	r.Post("/api/v1/evaluate", s.handleEvaluate)

	// Rule set management: the set is only ever replaced wholesale
	r.Route("/api/v1/rules", func(r chi.Router) {
		r.Get("/", s.handleGetRules)
		r.Put("/", s.handleReplaceRules)
		r.Post("/reset", s.handleResetRules)
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{}))

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Health check handler
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		ActiveRules: s.registry.Len(),
	})
}

// Evaluation handler
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Facts == nil {
		respondError(w, http.StatusBadRequest, "facts are required", nil)
		return
	}

	set := s.registry.Active()
	if len(req.Rules) > 0 {
		inline, err := loader.ParseJSON(req.Rules)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid rules", err)
			return
		}
		set = inline
	}

	startTime := time.Now()
	result := s.engine.Resolve(req.Facts, set)
	evaluationTime := time.Since(startTime)

	respondJSON(w, http.StatusOK, EvaluateResponse{
		EvaluationID:   uuid.NewString(),
		Decision:       result.Action,
		Fired:          toFiredRules(result.Fired),
		EvaluationTime: evaluationTime.String(),
	})
}

// Get rules handler
func (s *Server) handleGetRules(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, RulesResponse{Rules: s.registry.Active()})
}

// Replace rules handler. The body is a JSON array of rules; on validation
// failure the active set stays in place.
func (s *Server) handleReplaceRules(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body", err)
		return
	}

	set, err := loader.ParseJSON(data)
	if err != nil {
		logger.Warn("rejected rule set replacement", "error", err)
		respondError(w, http.StatusBadRequest, "invalid rules", err)
		return
	}

	if err := s.registry.Replace(set); err != nil {
		respondError(w, http.StatusBadRequest, "invalid rules", err)
		return
	}

	respondJSON(w, http.StatusOK, ReplaceRulesResponse{
		Status: "active",
		Rules:  len(set),
	})
}

// Reset rules handler restores the built-in default set.
func (s *Server) handleResetRules(w http.ResponseWriter, r *http.Request) {
	s.registry.Reset()
	respondJSON(w, http.StatusOK, ReplaceRulesResponse{
		Status: "active",
		Rules:  s.registry.Len(),
	})
}

// Helper functions
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]string{
		"error": message,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}

func main() {
	server := NewServer()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional rules file: load it into the registry and keep watching it
	// for changes. An invalid file leaves the built-in default set active.
	if path := os.Getenv("RULES_FILE"); path != "" {
		set, err := loader.LoadFile(path)
		if err != nil {
			logger.Warn("failed to load rules file, using built-in default set",
				"path", path,
				"error", err,
			)
		} else if err := server.registry.Replace(set); err != nil {
			logger.Warn("rules file rejected, using built-in default set",
				"path", path,
				"error", err,
			)
		} else {
			logger.Info("loaded rules file", "path", path, "rules", len(set))
		}

		watcher, err := loader.NewWatcher(path, server.registry, logger.Logger)
		if err != nil {
			logger.Fatal("failed to create rules file watcher", "error", err)
		}
		go func() {
			if err := watcher.Watch(ctx); err != nil {
				logger.Error("rules file watcher stopped", "error", err)
			}
		}()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		logger.Info("server starting", "port", port, "activeRules", server.registry.Len())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if err := logger.Shutdown(shutdownCtx); err != nil {
		logger.Error("logger shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
