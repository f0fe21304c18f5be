package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/curacore/curacore/internal/emotion"
	"github.com/curacore/curacore/internal/model"
)

// Badges awarded for engagement milestones.
const (
	badgeFirstCheckin      = "first_checkin"
	badgeWeekStreak        = "week_streak"
	badgeMonthStreak       = "month_streak"
	badgeMoodExplorer      = "mood_explorer"
	badgeFirstConversation = "first_conversation"
)

type moodTrackRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note,omitempty"`
}

func (h *Handler) handleMoodTrack(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	var req moodTrackRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Mood = strings.ToLower(strings.TrimSpace(req.Mood))
	if req.Mood == "" {
		respondError(w, http.StatusBadRequest, "mood cannot be empty")
		return
	}

	id, err := h.store.AddMoodEntry(model.MoodEntry{
		UserID: user.ID,
		Mood:   req.Mood,
		Note:   req.Note,
		Source: model.MoodSourceManual,
	})
	if err != nil {
		slog.Error("failed to save mood entry", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	streak := h.updateMoodEngagement(user)

	respondJSON(w, http.StatusCreated, map[string]any{
		"id":     id,
		"mood":   req.Mood,
		"note":   req.Note,
		"streak": streak,
	})
}

// updateMoodEngagement advances the user's daily check-in streak and
// awards milestone badges after a mood entry is recorded. It returns
// the new streak value.
func (h *Handler) updateMoodEngagement(user *model.User) int {
	entries, err := h.store.MoodHistory(user.ID, 2)
	if err != nil {
		slog.Error("failed to load mood history for streak", "error", err)
		return user.Streak
	}

	streak := 1
	if len(entries) > 1 {
		switch daysBetween(entries[1].CreatedAt, entries[0].CreatedAt) {
		case 0:
			streak = max(user.Streak, 1)
		case 1:
			streak = user.Streak + 1
		}
	} else {
		h.awardBadge(user.ID, badgeFirstCheckin)
	}
	if err := h.store.UpdateStreak(user.ID, streak); err != nil {
		slog.Error("failed to update streak", "error", err)
	}
	if streak >= 7 {
		h.awardBadge(user.ID, badgeWeekStreak)
	}
	if streak >= 30 {
		h.awardBadge(user.ID, badgeMonthStreak)
	}

	counts, err := h.store.MoodCounts(user.ID)
	if err != nil {
		slog.Error("failed to count moods", "error", err)
		return streak
	}
	if len(counts) >= 5 {
		h.awardBadge(user.ID, badgeMoodExplorer)
	}
	return streak
}

func (h *Handler) awardBadge(userID int64, badge string) {
	if err := h.store.AddBadge(userID, badge); err != nil {
		slog.Error("failed to award badge", "badge", badge, "error", err)
	}
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start) / (24 * time.Hour))
}

func (h *Handler) handleMoodHistory(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	limit := 30
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.store.MoodHistory(user.ID, limit)
	if err != nil {
		slog.Error("failed to load mood history", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if entries == nil {
		entries = []model.MoodEntry{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"history": entries})
}

func (h *Handler) handleMoodInsights(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	entries, err := h.store.MoodHistory(user.ID, 30)
	if err != nil {
		slog.Error("failed to load mood history", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, emotion.AnalyzeMoods(entries))
}
