package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradewell/tradelog-backend/internal/models"
	"github.com/tradewell/tradelog-backend/internal/repository"
)

var dateRegexp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Store interfaces abstract the persistence layer so handlers can be
// exercised against in-memory fakes. The pgx repositories are the only
// production implementations.

type UserStore interface {
	Create(ctx context.Context, fullName, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type TradeStore interface {
	Create(ctx context.Context, t *models.Trade) (*models.Trade, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Trade, error)
	ListChronological(ctx context.Context, userID uuid.UUID) ([]models.Trade, error)
	ListTrailingWeek(ctx context.Context, userID uuid.UUID) ([]models.Trade, error)
	Update(ctx context.Context, t *models.Trade) (*models.Trade, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type JournalStore interface {
	Create(ctx context.Context, e *models.JournalEntry) (*models.JournalEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.JournalEntry, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	db         pinger
	users      UserStore
	trades     TradeStore
	journal    JournalStore
	httpServer *http.Server
	apiKey     string
}

func NewServer(pool *pgxpool.Pool, port int, apiKey, corsOrigin string) *Server {
	s := &Server{
		db:      pool,
		users:   repository.NewUserRepo(pool),
		trades:  repository.NewTradeRepo(pool),
		journal: repository.NewJournalRepo(pool),
		apiKey:  apiKey,
	}

	handler := s.authMiddleware(corsMiddleware(s.routes(), corsOrigin))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Connectivity probe (no auth required)
	mux.HandleFunc("GET /{$}", s.handleRoot)

	// Auth routes
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	// Trade routes
	mux.HandleFunc("POST /api/trades", s.handleCreateTrade)
	mux.HandleFunc("GET /api/trades/{userId}", s.handleListTrades)
	mux.HandleFunc("GET /api/trades/best-worst/{userId}", s.handleBestWorst)
	mux.HandleFunc("PUT /api/trades/{tradeId}", s.handleUpdateTrade)
	mux.HandleFunc("DELETE /api/trades/{tradeId}", s.handleDeleteTrade)

	// Journal routes
	mux.HandleFunc("POST /api/journal", s.handleCreateEntry)
	mux.HandleFunc("GET /api/journal/{userId}", s.handleListEntries)

	// Analytics routes
	mux.HandleFunc("GET /api/summary/weekly/{userId}", s.handleWeeklySummary)
	mux.HandleFunc("GET /api/summary/monthly/{userId}", s.handleMonthlySummary)
	mux.HandleFunc("GET /api/dashboard/{userId}", s.handleDashboard)
	mux.HandleFunc("GET /api/equity/{userId}", s.handleEquityCurve)

	return mux
}

func (s *Server) Start() error {
	fmt.Printf("[API] REST API server started on http://localhost%s\n", s.httpServer.Addr)
	if s.apiKey != "" {
		fmt.Println("[API] Authentication: enabled (Bearer token)")
	} else {
		fmt.Println("[API] Authentication: disabled (no API_KEY configured)")
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// --- middleware ---

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey == "" || r.URL.Path == "/" {
			next.ServeHTTP(w, r)
			return
		}

		auth := r.Header.Get("Authorization")
		if auth == "" {
			writeError(w, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		if token == auth || token != s.apiKey {
			writeError(w, http.StatusUnauthorized, "invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func corsMiddleware(next http.Handler, allowOrigin string) http.Handler {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --- validation helpers ---

func validateDate(date string) bool {
	if !dateRegexp.MatchString(date) {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// pathUUID parses a path wildcard as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	return id, err == nil
}

// --- response helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
