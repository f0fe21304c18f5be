package emotion

import (
	"fmt"
	"strings"

	"github.com/curacore/curacore/internal/model"
)

// MoodInsights summarizes a user's mood tracking history.
type MoodInsights struct {
	TotalEntries     int                `json:"total_entries"`
	MostCommonMood   string             `json:"most_common_mood,omitempty"`
	MoodDistribution map[string]int     `json:"mood_distribution,omitempty"`
	EmotionAnalysis  map[string]float64 `json:"emotion_analysis,omitempty"`
	Message          string             `json:"message"`
	EmotionalInsight string             `json:"emotional_insight,omitempty"`
}

// AnalyzeMoods builds insights from mood history. Notes on entries are
// run through the emotion lexicon so recurring themes surface.
func AnalyzeMoods(entries []model.MoodEntry) MoodInsights {
	if len(entries) == 0 {
		return MoodInsights{Message: "Start tracking your mood to see insights!"}
	}

	counts := make(map[string]int)
	emotionTotals := make(map[string]float64)
	emotionSamples := make(map[string]int)
	for _, e := range entries {
		counts[e.Mood]++
		if e.Note == "" {
			continue
		}
		for emotion, score := range Detect(e.Note) {
			emotionTotals[emotion] += score
			emotionSamples[emotion]++
		}
	}

	mostCommon := ""
	for mood, n := range counts {
		if n > counts[mostCommon] || (n == counts[mostCommon] && mood < mostCommon) || mostCommon == "" {
			mostCommon = mood
		}
	}

	avgEmotions := make(map[string]float64, len(emotionTotals))
	for emotion, total := range emotionTotals {
		avgEmotions[emotion] = total / float64(emotionSamples[emotion])
	}

	insights := MoodInsights{
		TotalEntries:     len(entries),
		MostCommonMood:   mostCommon,
		MoodDistribution: counts,
		EmotionAnalysis:  avgEmotions,
		Message:          fmt.Sprintf("Over your last %d entries, you've felt %s most often.", len(entries), mostCommon),
	}

	dominant := ""
	for emotion, avg := range avgEmotions {
		if dominant == "" || avg > avgEmotions[dominant] {
			dominant = emotion
		}
	}
	if dominant != "" && dominant != Neutral && avgEmotions[dominant] > 0.4 {
		insights.EmotionalInsight = fmt.Sprintf("Your notes often reflect %s. This might be worth exploring further.", dominant)
	}
	return insights
}

// Sentiment is the overall tone of a conversation.
type Sentiment struct {
	OverallSentiment string             `json:"overall_sentiment"`
	Confidence       float64            `json:"confidence"`
	EmotionBreakdown map[string]float64 `json:"emotion_breakdown,omitempty"`
}

// ConversationSentiment classifies the combined text of the user's
// recent messages as positive, negative, or neutral.
func ConversationSentiment(messages []string) Sentiment {
	if len(messages) == 0 {
		return Sentiment{OverallSentiment: Neutral}
	}

	emotions := Detect(strings.Join(messages, " "))
	positive := emotions[Joy]
	negative := emotions[Sadness] + emotions[Anger] + emotions[Fear]
	neutral := emotions[Neutral]

	switch {
	case positive > negative && positive > neutral:
		return Sentiment{OverallSentiment: "positive", Confidence: positive, EmotionBreakdown: emotions}
	case negative > positive && negative > neutral:
		return Sentiment{OverallSentiment: "negative", Confidence: negative, EmotionBreakdown: emotions}
	default:
		return Sentiment{OverallSentiment: Neutral, Confidence: neutral, EmotionBreakdown: emotions}
	}
}
