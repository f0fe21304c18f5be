package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/curacore/curacore/internal/emotion"
	"github.com/curacore/curacore/internal/model"
)

// moodDetectionThreshold is the minimum dominant-emotion score before a
// chat message is recorded as an implicit mood entry.
const moodDetectionThreshold = 0.4

type chatSendRequest struct {
	Message string `json:"message"`
	Mood    string `json:"mood,omitempty"`
}

func (h *Handler) handleChatSend(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	var req chatSendRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "message cannot be empty")
		return
	}

	crisis := emotion.DetectCrisis(req.Message)
	scores := emotion.Detect(req.Message)
	dominant, dominantScore := emotion.Dominant(req.Message)

	mood := req.Mood
	if mood == "" {
		mood = dominant
	}

	var reply string
	switch {
	case crisis.Detected:
		// Crisis messages never go to the LLM.
		reply = emotion.CrisisReply(crisis)
		slog.Warn("crisis message detected",
			"user_id", user.ID,
			"crisis_type", crisis.Type,
			"severity", crisis.Severity)
	case h.llm != nil:
		history, err := h.store.ChatHistory(user.ID, 10)
		if err != nil {
			slog.Error("failed to load chat history", "error", err)
			history = nil
		}
		reply, err = h.llm.Respond(r.Context(), user.Name, req.Message, dominant, history)
		if err != nil {
			slog.Error("LLM response failed, using fallback", "error", err)
			reply = emotion.Reply(req.Message, dominant, user.Name)
		}
	default:
		reply = emotion.Reply(req.Message, dominant, user.Name)
	}

	entry := model.ChatEntry{
		UserID:          user.ID,
		UserMessage:     req.Message,
		BotResponse:     reply,
		Mood:            mood,
		DetectedEmotion: dominant,
		EmotionScores:   scores,
	}
	id, err := h.store.AddChatEntry(entry)
	if err != nil {
		slog.Error("failed to save chat entry", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if n, err := h.store.ChatEntryCount(user.ID); err != nil {
		slog.Error("failed to count chat entries", "error", err)
	} else if n == 1 {
		h.awardBadge(user.ID, badgeFirstConversation)
	}

	// Strong non-neutral emotions become implicit mood entries.
	if dominant != emotion.Neutral && dominantScore > moodDetectionThreshold {
		note := req.Message
		if runes := []rune(note); len(runes) > 100 {
			note = string(runes[:100])
		}
		_, err := h.store.AddMoodEntry(model.MoodEntry{
			UserID: user.ID,
			Mood:   dominant,
			Note:   "Detected from chat: " + note,
			Source: model.MoodSourceChat,
		})
		if err != nil {
			slog.Error("failed to save detected mood", "error", err)
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"id":               id,
		"user_message":     req.Message,
		"bot_response":     reply,
		"mood":             mood,
		"detected_emotion": dominant,
		"emotion_scores":   scores,
		"crisis_detected":  crisis.Detected,
		"crisis_severity":  crisis.Severity,
	})
}

func (h *Handler) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	history, err := h.store.ChatHistory(user.ID, limit)
	if err != nil {
		slog.Error("failed to load chat history", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if history == nil {
		history = []model.ChatEntry{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"history": history})
}

func (h *Handler) handleChatAnalysis(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	history, err := h.store.ChatHistory(user.ID, 20)
	if err != nil {
		slog.Error("failed to load chat history", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	messages := make([]string, 0, len(history))
	for _, e := range history {
		messages = append(messages, e.UserMessage)
	}

	respondJSON(w, http.StatusOK, emotion.ConversationSentiment(messages))
}
