package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/curacore/curacore/internal/llm"
	"github.com/curacore/curacore/internal/model"
	"github.com/curacore/curacore/internal/store"
)

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	store  *store.Store
	llm    *llm.Client
	config model.AppConfig

	quizMu    sync.Mutex
	quizLocks map[string]*sync.Mutex
}

// New creates a new Handler. The LLM client may be nil, in which case
// chat falls back to built-in responses.
func New(s *store.Store, l *llm.Client, cfg model.AppConfig) (*Handler, error) {
	return &Handler{
		store:     s,
		llm:       l,
		config:    cfg,
		quizLocks: make(map[string]*sync.Mutex),
	}, nil
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/login", h.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Get("/auth/me", h.handleMe)
		r.Post("/auth/logout", h.handleLogout)

		r.Post("/chat/send", h.handleChatSend)
		r.Get("/chat/history", h.handleChatHistory)
		r.Get("/chat/analysis", h.handleChatAnalysis)

		r.Post("/mood/track", h.handleMoodTrack)
		r.Get("/mood/history", h.handleMoodHistory)
		r.Get("/mood/insights", h.handleMoodInsights)

		r.Post("/quiz/start", h.handleQuizStart)
		r.Post("/quiz/answer", h.handleQuizAnswer)
		r.Get("/quiz/history", h.handleQuizHistory)
		r.Get("/quiz/summary", h.handleQuizSummary)

		r.Get("/dashboard/insights", h.handleDashboardInsights)
		r.Get("/dashboard/quiz-insights", h.handleQuizInsights)

		r.Group(func(r chi.Router) {
			r.Use(requireRole(model.UserRoleAdmin, model.UserRoleCounselor))
			r.Get("/admin/alerts", h.handleAdminAlerts)
			r.Get("/admin/users", h.handleAdminUsers)
			r.Post("/admin/users/{userID}/toggle", h.handleToggleUserActive)
		})
	})
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"service": "curacore",
		"status":  "running",
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// quizLock returns the per-quiz mutex, creating it on first use.
// Answers for the same quiz are serialized; different quizzes proceed
// concurrently.
func (h *Handler) quizLock(quizID string) *sync.Mutex {
	h.quizMu.Lock()
	defer h.quizMu.Unlock()
	mu, ok := h.quizLocks[quizID]
	if !ok {
		mu = &sync.Mutex{}
		h.quizLocks[quizID] = mu
	}
	return mu
}

func (h *Handler) releaseQuizLock(quizID string) {
	h.quizMu.Lock()
	delete(h.quizLocks, quizID)
	h.quizMu.Unlock()
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
