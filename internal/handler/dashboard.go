package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/curacore/curacore/internal/emotion"
	"github.com/curacore/curacore/internal/model"
	"github.com/curacore/curacore/internal/quiz"
)

// alert is one actionable dashboard notice.
type alert struct {
	Type        string   `json:"type"`
	Message     string   `json:"message"`
	Resources   []string `json:"resources,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// nextStep is one recommended follow-up action.
type nextStep struct {
	Action      string `json:"action"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

var criticalAlertResources = []string{
	"National Suicide Prevention Lifeline: 988",
	"Crisis Text Line: Text HOME to 741741",
	"Campus Counseling Services",
}

func (h *Handler) handleDashboardInsights(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	latest, err := h.store.LatestQuizResult(user.ID)
	if err != nil {
		slog.Error("failed to load latest quiz result", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	moods, err := h.store.MoodHistory(user.ID, 30)
	if err != nil {
		slog.Error("failed to load mood history", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	chats, err := h.store.ChatHistory(user.ID, 20)
	if err != nil {
		slog.Error("failed to load chat history", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	messages := make([]string, 0, len(chats))
	for _, e := range chats {
		messages = append(messages, e.UserMessage)
	}

	recommendations := []string{}
	alerts := []alert{}

	if latest != nil {
		recommendations = append(recommendations, storedRecommendations(latest)...)
		if latest.CriticalFlag {
			alerts = append(alerts, alert{
				Type:      "critical",
				Message:   "Recent quiz responses indicate you may need professional support. Please consider reaching out to a mental health professional.",
				Resources: criticalAlertResources,
			})
		}
	}

	if a := moodPatternAlert(moods); a != nil {
		alerts = append(alerts, *a)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"recent_quiz":           latest,
		"mood_trends":           emotion.AnalyzeMoods(moods),
		"conversation_analysis": emotion.ConversationSentiment(messages),
		"recommendations":       recommendations,
		"alerts":                alerts,
	})
}

// storedRecommendations recomputes the primary recommendation list from
// the concern scores saved with a quiz result.
func storedRecommendations(res *model.QuizResult) []string {
	if len(res.Scores) == 0 {
		return nil
	}
	var scores quiz.ConcernScores
	if err := json.Unmarshal(res.Scores, &scores); err != nil {
		slog.Error("failed to unmarshal quiz scores", "quiz_id", res.QuizID, "error", err)
		return nil
	}
	return quiz.PrimaryRecommendations(scores, res.CriticalFlag)
}

// moodPatternAlert flags a run of low moods: at least four sad or four
// anxious entries among the last seven.
func moodPatternAlert(moods []model.MoodEntry) *alert {
	recent := moods
	if len(recent) > 7 {
		recent = recent[:7]
	}
	counts := make(map[string]int)
	for _, m := range recent {
		counts[m.Mood]++
	}
	if counts["sad"] < 4 && counts["anxious"] < 4 {
		return nil
	}
	frequent := "sad"
	if counts["anxious"] > counts["sad"] {
		frequent = "anxious"
	}
	return &alert{
		Type:    "mood_pattern",
		Message: "You've been feeling " + frequent + " frequently. Consider additional support.",
		Suggestions: []string{
			"Try mood tracking exercises",
			"Practice mindfulness techniques",
			"Consider speaking with a counselor",
		},
	}
}

func (h *Handler) handleQuizInsights(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	latest, err := h.store.LatestQuizResult(user.ID)
	if err != nil {
		slog.Error("failed to load latest quiz result", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if latest == nil {
		respondJSON(w, http.StatusOK, map[string]any{
			"has_quiz": false,
			"message":  "No quiz taken yet",
		})
		return
	}

	var scores quiz.ConcernScores
	if len(latest.Scores) > 0 {
		if err := json.Unmarshal(latest.Scores, &scores); err != nil {
			slog.Error("failed to unmarshal quiz scores", "quiz_id", latest.QuizID, "error", err)
		}
	}

	topConcerns := latest.MainConcerns
	if len(topConcerns) > 3 {
		topConcerns = topConcerns[:3]
	}
	daysSince := int(time.Since(latest.CompletedAt).Hours() / 24)

	respondJSON(w, http.StatusOK, map[string]any{
		"has_quiz": true,
		"quiz_summary": map[string]any{
			"quiz_id":          latest.QuizID,
			"overall_severity": latest.OverallSeverity,
			"main_concerns":    topConcerns,
			"critical_flag":    latest.CriticalFlag,
			"timestamp":        latest.CompletedAt,
			"days_since":       daysSince,
			"scores":           scores,
			"total_concerns":   len(latest.MainConcerns),
		},
		"suggestions":  quizSuggestions(latest),
		"next_steps":   nextSteps(latest.OverallSeverity, latest.CriticalFlag),
		"wellness_tip": wellnessTip(latest.MainConcerns),
	})
}

var criticalSuggestions = []string{
	"Please consider reaching out to a mental health professional immediately",
	"Contact crisis helpline: 988 (National Suicide Prevention Lifeline)",
	"Reach out to trusted friends, family, or counselors for support",
	"Consider visiting your campus counseling center",
}

var concernSuggestions = map[string][]string{
	"Stress & Academic Pressure": {
		"Try the Pomodoro Technique for better time management",
		"Practice deep breathing exercises during stressful moments",
		"Create a realistic study schedule with regular breaks",
		"Consider joining study groups for peer support",
	},
	"Anxiety / Worry": {
		"Practice grounding techniques (5-4-3-2-1 method)",
		"Try progressive muscle relaxation before bed",
		"Limit caffeine intake, especially in the afternoon",
		"Consider mindfulness meditation apps like Headspace or Calm",
	},
	"Low Mood / Sadness": {
		"Engage in regular physical activity, even light walking",
		"Maintain social connections with friends and family",
		"Practice gratitude journaling for 5 minutes daily",
		"Ensure you're getting adequate sunlight exposure",
	},
	"Sleep Problems": {
		"Establish a consistent sleep schedule",
		"Create a relaxing bedtime routine",
		"Limit screen time 1 hour before bed",
		"Keep your bedroom cool, dark, and quiet",
	},
}

var severitySuggestions = map[string][]string{
	"severe": {
		"Consider scheduling an appointment with a counselor",
		"Practice daily self-care activities that bring you joy",
		"Don't hesitate to ask for help from trusted people",
	},
	"moderate": {
		"Try incorporating stress management techniques into your routine",
		"Maintain regular sleep and exercise schedules",
		"Consider talking to someone you trust about how you're feeling",
	},
	"mild": {
		"Keep up your positive mental health habits",
		"Continue monitoring your wellbeing regularly",
		"Share your healthy coping strategies with others",
	},
}

// quizSuggestions builds the dashboard suggestion list: two entries for
// each of the top two concerns plus the severity tier, capped at six. A
// critical result gets the fixed crisis list instead.
func quizSuggestions(res *model.QuizResult) []string {
	if res.CriticalFlag {
		return criticalSuggestions
	}

	var out []string
	top := res.MainConcerns
	if len(top) > 2 {
		top = top[:2]
	}
	for _, concern := range top {
		if s, ok := concernSuggestions[concern]; ok {
			out = append(out, s[:2]...)
		}
	}

	tier, ok := severitySuggestions[res.OverallSeverity]
	if !ok {
		tier = severitySuggestions["mild"]
	}
	out = append(out, tier...)

	if len(out) > 6 {
		out = out[:6]
	}
	return out
}

func nextSteps(severity string, critical bool) []nextStep {
	if critical {
		return []nextStep{
			{Action: "Seek immediate help", Priority: "urgent", Description: "Contact a mental health professional or crisis line"},
			{Action: "Talk to someone", Priority: "high", Description: "Reach out to a trusted friend, family member, or counselor"},
			{Action: "Use campus resources", Priority: "high", Description: "Visit your campus counseling center"},
		}
	}
	switch severity {
	case "severe":
		return []nextStep{
			{Action: "Schedule counseling", Priority: "high", Description: "Book an appointment with a mental health professional"},
			{Action: "Create support network", Priority: "medium", Description: "Connect with friends, family, or support groups"},
			{Action: "Daily self-care", Priority: "medium", Description: "Establish a routine with activities that bring you joy"},
		}
	case "moderate":
		return []nextStep{
			{Action: "Try coping strategies", Priority: "medium", Description: "Implement stress management and relaxation techniques"},
			{Action: "Monitor progress", Priority: "medium", Description: "Track your mood and wellbeing regularly"},
			{Action: "Consider counseling", Priority: "low", Description: "Think about talking to a counselor if symptoms persist"},
		}
	default:
		return []nextStep{
			{Action: "Maintain habits", Priority: "low", Description: "Continue your positive mental health practices"},
			{Action: "Regular check-ins", Priority: "low", Description: "Keep monitoring your wellbeing"},
			{Action: "Help others", Priority: "low", Description: "Share your healthy coping strategies with peers"},
		}
	}
}

var wellnessTips = map[string]string{
	"Stress & Academic Pressure": "Try the 4-7-8 breathing technique: Inhale for 4, hold for 7, exhale for 8. Perfect for reducing academic stress!",
	"Anxiety / Worry":            "Practice the 5-4-3-2-1 grounding technique: Name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste.",
	"Low Mood / Sadness":         "Take a 10-minute walk outside today. Natural light and movement can significantly boost your mood.",
	"Sleep Problems":             "Create a 'digital sunset' - turn off screens 1 hour before bed and try reading or gentle stretching instead.",
}

func wellnessTip(concerns []string) string {
	if len(concerns) > 0 {
		if tip, ok := wellnessTips[concerns[0]]; ok {
			return tip
		}
		return "Remember: Small daily actions compound into significant positive changes over time."
	}
	return "Take 3 deep breaths right now. You're doing better than you think, and every step forward counts."
}

func simpleSuggestion(severity string, critical bool) string {
	if critical {
		return "Please consider reaching out for professional support"
	}
	switch severity {
	case "severe":
		return "Consider speaking with a counselor about your wellbeing"
	case "moderate":
		return "Try incorporating stress management techniques into your routine"
	case "mild":
		return "Keep up your positive mental health habits"
	}
	return "Continue monitoring your wellbeing"
}
