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

	"github.com/careerforge/resume-tailor/internal/config"
	"github.com/careerforge/resume-tailor/internal/db"
	"github.com/careerforge/resume-tailor/internal/extraction"
	"github.com/careerforge/resume-tailor/internal/pipeline"
	"github.com/careerforge/resume-tailor/internal/server/middleware"
	"github.com/careerforge/resume-tailor/internal/server/ratelimit"
	"github.com/careerforge/resume-tailor/internal/skills"
	"github.com/careerforge/resume-tailor/internal/storage"
	"github.com/careerforge/resume-tailor/internal/types"
	"github.com/careerforge/resume-tailor/internal/vocab"
)

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	db             *db.DB
	store          storage.BlobStore
	pipeline       *pipeline.Pipeline
	rateLimiter    *ratelimit.Limiter
	jwtService     *JWTService
	userService    *UserService
	authHandler    *AuthHandler
	validate       *validator.Validate
	logger         *log.Logger
	maxUploadBytes int64
}

// New creates a new server instance and runs schema migrations.
func New(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	vocabulary, err := loadVocabulary(cfg.VocabPath)
	if err != nil {
		database.Close()
		return nil, err
	}
	matcher := skills.NewMatcher(vocabulary)

	s := &Server{
		db:             database,
		validate:       validator.New(),
		logger:         log.Default(),
		maxUploadBytes: cfg.MaxUploadBytes,
	}
	if s.maxUploadBytes <= 0 {
		s.maxUploadBytes = extraction.DefaultUploadLimits().MaxBytes
	}

	s.store = newBlobStore(ctx, cfg, s.logger)

	limits := extraction.DefaultUploadLimits()
	limits.MaxBytes = s.maxUploadBytes
	s.pipeline = pipeline.New(database, s.store, matcher, limits)

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// loadVocabulary loads the skill vocabulary, falling back to the built-in
// set when no path is configured.
func loadVocabulary(path string) ([]types.VocabularyEntry, error) {
	if path == "" {
		return vocab.Default(), nil
	}
	entries, err := vocab.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	return entries, nil
}

// newBlobStore prefers S3 and degrades to in-memory when storage is not
// configured. The degradation is logged, not silent.
func newBlobStore(ctx context.Context, cfg *config.Config, logger *log.Logger) storage.BlobStore {
	s3cfg := storage.S3Config{
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
	}
	store, err := storage.NewS3Store(ctx, s3cfg)
	if err != nil {
		logger.Printf("Blob storage not configured (%v); documents will not survive restarts", err)
		return storage.NewMemoryStore()
	}
	return store
}

// routes builds the request mux. Owner-scoped routes sit behind JWT auth.
func (s *Server) routes() http.Handler {
	auth := middleware.Auth(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("GET /users/me", auth(http.HandlerFunc(s.authHandler.Me)))

	protected := http.NewServeMux()
	protected.HandleFunc("POST /documents", s.handleUploadDocuments)
	protected.HandleFunc("GET /documents", s.handleListDocuments)
	protected.HandleFunc("DELETE /documents/{id}", s.handleDeleteDocument)

	protected.HandleFunc("GET /experiences", s.handleListExperiences)
	protected.HandleFunc("POST /experiences", s.handleCreateExperience)
	protected.HandleFunc("DELETE /experiences/{id}", s.handleDeleteExperience)
	protected.HandleFunc("POST /experiences/reorder", s.handleReorderExperiences)
	protected.HandleFunc("POST /experiences/{id}/skills", s.handleAddExperienceSkill)
	protected.HandleFunc("DELETE /experiences/{id}/skills/{index}", s.handleDeleteExperienceSkill)
	protected.HandleFunc("DELETE /experiences/{id}/accomplishments/{accomplishmentID}", s.handleDeleteAccomplishment)

	protected.HandleFunc("POST /analyze", s.handleAnalyze)
	protected.HandleFunc("POST /compose", s.handleCompose)

	protected.HandleFunc("GET /applications", s.handleListApplications)
	protected.HandleFunc("POST /applications", s.handleCreateApplication)
	protected.HandleFunc("PATCH /applications/{id}", s.handleUpdateApplication)
	protected.HandleFunc("DELETE /applications/{id}", s.handleDeleteApplication)

	mux.Handle("/", auth(protected))
	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	s.logger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	s.db.Close()
	s.logger.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients that exceed their endpoint budget.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		if !allowed {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", fmt.Sprintf("%.0f", info.RetryAfter.Seconds()))
			}
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
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
		s.logger.Printf("[%s] %s %s in %v", r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
	})
}
