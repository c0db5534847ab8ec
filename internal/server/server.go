package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mattlaska/zoznamy/internal/blob"
	"github.com/mattlaska/zoznamy/internal/checklist"
	"github.com/mattlaska/zoznamy/internal/handler"
	"github.com/mattlaska/zoznamy/internal/middleware"
	"github.com/mattlaska/zoznamy/internal/store"
)

type Server struct {
	db           *sql.DB
	authH        *handler.AuthHandler
	listH        *handler.ListHandler
	itemH        *handler.ItemHandler
	slovakH      *handler.SlovakHandler
	uploadH      *handler.UploadHandler
	sessionStore *store.SessionStore
	rateLimiter  *middleware.RateLimiter
	logger       *slog.Logger
}

func New(db *sql.DB, blobStore *blob.Store, password string, logger *slog.Logger) (*Server, error) {
	listStore := store.NewListStore(db)
	itemStore := store.NewItemStore(db)
	completionStore := store.NewCompletionStore(db)
	wordStore := store.NewSlovakWordStore(db)
	sessionStore := store.NewSessionStore(db)

	workflow := checklist.NewService(itemStore, completionStore, blobStore)

	authH, err := handler.NewAuthHandler(sessionStore, password, logger.With("component", "auth"))
	if err != nil {
		return nil, err
	}

	return &Server{
		db:           db,
		authH:        authH,
		listH:        handler.NewListHandler(listStore, itemStore, completionStore, logger.With("component", "list")),
		itemH:        handler.NewItemHandler(itemStore, completionStore, workflow, logger.With("component", "item")),
		slovakH:      handler.NewSlovakHandler(wordStore, logger.With("component", "slovak")),
		uploadH:      handler.NewUploadHandler(blobStore, logger.With("component", "upload")),
		sessionStore: sessionStore,
		rateLimiter:  middleware.NewRateLimiter(),
		logger:       logger,
	}, nil
}

// SessionStore returns the session store for cleanup tasks.
func (s *Server) SessionStore() *store.SessionStore {
	return s.sessionStore
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Protected routes — wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.sessionStore)
	outerMux.Handle("/", authMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /logout", s.authH.Logout)

	// List API routes
	mux.HandleFunc("GET /api/lists", s.listH.List)
	mux.HandleFunc("POST /api/lists", s.listH.Create)
	mux.HandleFunc("GET /api/lists/{id}", s.listH.Get)
	mux.HandleFunc("PUT /api/lists/{id}", s.listH.Update)
	mux.HandleFunc("DELETE /api/lists/{id}", s.listH.Delete)

	// Item API routes
	mux.HandleFunc("POST /api/lists/{list_id}/items", s.itemH.Create)
	mux.HandleFunc("PUT /api/items/{id}", s.itemH.Update)
	mux.HandleFunc("DELETE /api/items/{id}", s.itemH.Delete)
	mux.HandleFunc("POST /api/items/{id}/toggle", s.itemH.Toggle)
	mux.HandleFunc("GET /api/items/{id}/completions", s.itemH.ListCompletions)
	mux.HandleFunc("POST /api/items/{id}/completions", s.itemH.AddCompletion)

	// Attachment upload
	mux.HandleFunc("POST /api/upload", s.uploadH.Upload)

	// Slovak word-of-the-day routes
	mux.HandleFunc("GET /api/slovak/today", s.slovakH.Today)
	mux.HandleFunc("GET /api/slovak/words", s.slovakH.List)
	mux.HandleFunc("POST /api/slovak/words", s.slovakH.Create)
	mux.HandleFunc("PUT /api/slovak/words/{id}/audio/{person}", s.slovakH.SetAudio)
}
