// Package server provides the HTTP REST API for ResumeForge.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DavidVeksler/ResumeForge/internal/config"
	"github.com/DavidVeksler/ResumeForge/internal/db"
	"github.com/DavidVeksler/ResumeForge/internal/lexicon"
	"github.com/DavidVeksler/ResumeForge/internal/llm"
	"github.com/DavidVeksler/ResumeForge/internal/server/middleware"
	"github.com/DavidVeksler/ResumeForge/internal/skills"
	"github.com/DavidVeksler/ResumeForge/internal/validation"
)

// Server is the HTTP server with its collaborators. The database and
// the model client are optional; endpoints that need a missing
// collaborator respond 503 instead of failing at startup.
type Server struct {
	httpServer *http.Server
	db         *db.DB
	lex        *lexicon.Lexicon
	skillsProc *skills.Processor
	validator  *validation.Validator
	llmClient  llm.Client

	// Auth is active only when a password is configured.
	passwordCfg  *config.PasswordConfig
	passwordHash string
	jwtService   *JWTService

	useBrowser bool
}

// New creates a server instance from configuration.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	lex := lexicon.Default()
	if cfg.LexiconPath != "" {
		loaded, err := lexicon.Load(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load lexicon: %w", err)
		}
		lex = loaded
	}

	s := &Server{
		lex:        lex,
		skillsProc: skills.NewProcessor(lex),
		validator:  validation.New(),
		useBrowser: cfg.UseBrowser,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, err
		}
		s.db = database
	}

	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}
		s.llmClient = client
	}

	if cfg.AdminPassword != "" {
		passwordCfg, err := config.NewPasswordConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create password config: %w", err)
		}
		hash, err := passwordCfg.HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, err
		}
		jwtCfg, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.passwordCfg = passwordCfg
		s.passwordHash = hash
		s.jwtService = NewJWTService(jwtCfg)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/login", s.handleLogin)

	protected := http.NewServeMux()
	protected.HandleFunc("POST /api/keywords", s.handleKeywords)
	protected.HandleFunc("POST /api/score", s.handleScore)
	protected.HandleFunc("POST /api/optimize", s.handleOptimize)
	protected.HandleFunc("POST /api/render", s.handleRender)
	protected.HandleFunc("POST /api/parse", s.handleParse)
	protected.HandleFunc("GET /api/runs", s.handleListRuns)
	protected.HandleFunc("GET /api/runs/{id}", s.handleGetRun)
	protected.HandleFunc("DELETE /api/runs/{id}", s.handleDeleteRun)

	var protectedHandler http.Handler = protected
	if s.jwtService != nil {
		protectedHandler = middleware.Auth(s.jwtService)(protected)
	}
	mux.Handle("/api/", protectedHandler)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // browser-rendered fetches can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening and blocks until an interrupt, then shuts
// down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// Handler returns the server's root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
