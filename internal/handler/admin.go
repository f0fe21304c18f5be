package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	appI18n "github.com/curacore/curacore/internal/i18n"
)

// crisisAlert is one critical quiz result joined with its user, for
// counselor review.
type crisisAlert struct {
	QuizID          string   `json:"quiz_id"`
	UserID          int64    `json:"user_id"`
	UserName        string   `json:"user_name"`
	UserEmail       string   `json:"user_email"`
	CriticalType    string   `json:"critical_type"`
	OverallSeverity string   `json:"overall_severity"`
	MainConcerns    []string `json:"main_concerns"`
	CompletedAt     string   `json:"completed_at"`
}

func (h *Handler) handleAdminAlerts(w http.ResponseWriter, r *http.Request) {
	results, err := h.store.ListCriticalResults()
	if err != nil {
		slog.Error("failed to list critical results", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	alerts := make([]crisisAlert, 0, len(results))
	for _, res := range results {
		a := crisisAlert{
			QuizID:          res.QuizID,
			UserID:          res.UserID,
			CriticalType:    res.CriticalType,
			OverallSeverity: res.OverallSeverity,
			MainConcerns:    res.MainConcerns,
			CompletedAt:     res.CompletedAt.Format(time.RFC3339),
		}
		user, err := h.store.GetUserByID(res.UserID)
		if err != nil {
			slog.Error("failed to get user for alert", "user_id", res.UserID, "error", err)
		}
		if user != nil {
			a.UserName = user.Name
			a.UserEmail = user.Email
		}
		alerts = append(alerts, a)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"alerts":  alerts,
		"message": appI18n.Tp(r.Context(), "CrisisAlertCount", len(alerts)),
	})
}

func (h *Handler) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers()
	if err != nil {
		slog.Error("failed to list users", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]map[string]any, 0, len(users))
	for i := range users {
		out = append(out, sanitizeUser(&users[i]))
	}
	respondJSON(w, http.StatusOK, map[string]any{"users": out})
}

func (h *Handler) handleToggleUserActive(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "userID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := h.store.ToggleUserActive(id); err != nil {
		slog.Error("failed to toggle user active", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"id": id, "toggled": true})
}
