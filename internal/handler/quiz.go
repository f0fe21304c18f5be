package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/curacore/curacore/internal/model"
	"github.com/curacore/curacore/internal/quiz"
)

func (h *Handler) handleQuizStart(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	st := quiz.Start(user.ID)
	question := quiz.NextQuestion(st)

	data, err := json.Marshal(st)
	if err != nil {
		slog.Error("failed to marshal quiz state", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if err := h.store.SaveQuizState(st.QuizID, user.ID, data); err != nil {
		slog.Error("failed to save quiz state", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"quiz_state": map[string]string{"quiz_id": st.QuizID},
		"question":   question,
	})
}

type quizAnswerRequest struct {
	QuizID     string      `json:"quiz_id"`
	QuestionID string      `json:"question_id"`
	Answer     quiz.Answer `json:"answer"`
}

func (h *Handler) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	var req quizAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.QuizID == "" || req.QuestionID == "" {
		respondError(w, http.StatusBadRequest, "quiz_id and question_id are required")
		return
	}

	mu := h.quizLock(req.QuizID)
	mu.Lock()
	defer mu.Unlock()

	data, ownerID, err := h.store.GetQuizState(req.QuizID)
	if err != nil {
		slog.Error("failed to load quiz state", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if data == nil || ownerID != user.ID {
		respondError(w, http.StatusNotFound, "quiz not found or expired")
		return
	}

	var st quiz.State
	if err := json.Unmarshal(data, &st); err != nil {
		slog.Error("failed to unmarshal quiz state", "quiz_id", req.QuizID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	// Only the question the navigator is currently asking may be
	// answered; anything else could pre-fill deeper levels and inflate
	// scores past the level gates.
	current := quiz.NextQuestion(&st)
	if current == nil {
		h.completeQuiz(w, r, user, &st)
		return
	}
	if req.QuestionID != current.ID {
		respondError(w, http.StatusBadRequest, "question_id does not match the current question")
		return
	}

	quiz.SubmitAnswer(&st, req.QuestionID, req.Answer)
	question := quiz.NextQuestion(&st)

	if question == nil {
		h.completeQuiz(w, r, user, &st)
		return
	}

	updated, err := json.Marshal(&st)
	if err != nil {
		slog.Error("failed to marshal quiz state", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if err := h.store.SaveQuizState(st.QuizID, user.ID, updated); err != nil {
		slog.Error("failed to save quiz state", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"quiz_complete": false,
		"question":      question,
		"critical_flag": st.CriticalFlag,
	})
}

// completeQuiz scores a finished session, persists the result, and
// removes the in-progress state.
func (h *Handler) completeQuiz(w http.ResponseWriter, r *http.Request, user *model.User, st *quiz.State) {
	scores := quiz.FinalScores(st)
	summary := quiz.Summarize(st, scores)

	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		slog.Error("failed to marshal scores", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	basicInfo := make(map[string]string, len(summary.BasicInfo))
	for id, ans := range summary.BasicInfo {
		basicInfo[id] = ans.String()
	}

	_, err = h.store.InsertQuizResult(model.QuizResult{
		QuizID:          st.QuizID,
		UserID:          user.ID,
		MainConcerns:    summary.MainConcerns,
		Scores:          scoresJSON,
		OverallSeverity: string(summary.OverallSeverity),
		CriticalFlag:    summary.CriticalFlag,
		CriticalType:    summary.CriticalType,
		SuggestedMood:   summary.SuggestedMood,
		BasicInfo:       basicInfo,
		CompletedAt:     summary.CompletionDate,
	})
	if err != nil {
		slog.Error("failed to save quiz result", "quiz_id", st.QuizID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.store.DeleteQuizState(st.QuizID); err != nil {
		slog.Error("failed to delete quiz state", "quiz_id", st.QuizID, "error", err)
	}
	h.releaseQuizLock(st.QuizID)

	if summary.CriticalFlag {
		slog.Warn("critical quiz result",
			"user_id", user.ID,
			"quiz_id", st.QuizID,
			"critical_type", summary.CriticalType)
	}

	if summary.SuggestedMood != "" && summary.SuggestedMood != "neutral" {
		_, err := h.store.AddMoodEntry(model.MoodEntry{
			UserID: user.ID,
			Mood:   summary.SuggestedMood,
			Note:   "Suggested by wellness assessment",
			Source: model.MoodSourceQuiz,
		})
		if err != nil {
			slog.Error("failed to save suggested mood", "error", err)
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"quiz_complete": true,
		"summary":       summary,
		"critical_flag": summary.CriticalFlag,
	})
}

func (h *Handler) handleQuizHistory(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	results, err := h.store.QuizHistory(user.ID)
	if err != nil {
		slog.Error("failed to load quiz history", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if results == nil {
		results = []model.QuizResult{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"history": results})
}

func (h *Handler) handleQuizSummary(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	latest, err := h.store.LatestQuizResult(user.ID)
	if err != nil {
		slog.Error("failed to load latest quiz result", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if latest == nil {
		respondJSON(w, http.StatusOK, map[string]any{"has_quiz": false})
		return
	}

	primary := ""
	if len(latest.MainConcerns) > 0 {
		primary = latest.MainConcerns[0]
	}
	daysSince := int(time.Since(latest.CompletedAt).Hours() / 24)

	respondJSON(w, http.StatusOK, map[string]any{
		"has_quiz":          true,
		"overall_severity":  latest.OverallSeverity,
		"primary_concern":   primary,
		"critical_flag":     latest.CriticalFlag,
		"days_since":        daysSince,
		"simple_suggestion": simpleSuggestion(latest.OverallSeverity, latest.CriticalFlag),
		"last_taken":        latest.CompletedAt,
	})
}
