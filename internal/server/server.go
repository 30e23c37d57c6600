package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// Config holds server configuration.
type Config struct {
	Port int
	// APIKey is the Gemini API key. Empty disables the /parse/ai endpoint.
	APIKey string
	// VocabPath optionally overrides the built-in skill vocabulary.
	VocabPath string
	// MaxSkillsPerCategory caps each skill list; zero means the default.
	// Requests may override it per call.
	MaxSkillsPerCategory int
	// MaxResponsibilities caps bullets per experience entry; zero means the
	// default. Requests may override it per call.
	MaxResponsibilities int
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	opts       pipeline.Options
	refiner    *llm.Refiner
	validate   *validator.Validate
}

// New creates a new server instance.
func New(ctx context.Context, cfg Config) (*Server, error) {
	s := &Server{
		validate: validator.New(),
		opts: pipeline.Options{
			MaxSkillsPerCategory: cfg.MaxSkillsPerCategory,
			MaxResponsibilities:  cfg.MaxResponsibilities,
		},
	}

	if cfg.VocabPath != "" {
		if err := vocab.ValidateFile(vocab.ResolveSchemaPath(), cfg.VocabPath); err != nil {
			return nil, fmt.Errorf("vocabulary rejected: %w", err)
		}
		v, err := vocab.Load(cfg.VocabPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
		s.opts.Vocabulary = v
	}

	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.refiner = &llm.Refiner{Client: client}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /parse", s.handleParse)
	mux.HandleFunc("POST /parse/ai", s.handleParseAI)
	mux.HandleFunc("POST /correct", s.handleCorrect)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
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

	if s.refiner != nil && s.refiner.Client != nil {
		if err := s.refiner.Client.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs requests
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
