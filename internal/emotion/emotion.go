// Package emotion provides keyword-based emotion and crisis detection
// for chat messages, plus canned supportive responses used when no
// language model is configured.
package emotion

import "strings"

// Emotion labels.
const (
	Anger    = "anger"
	Disgust  = "disgust"
	Fear     = "fear"
	Joy      = "joy"
	Neutral  = "neutral"
	Sadness  = "sadness"
	Surprise = "surprise"
)

// dominantThreshold is the minimum share of keyword hits an emotion
// needs before it is reported instead of neutral.
const dominantThreshold = 0.3

var emotionKeywords = map[string][]string{
	Joy: {
		"happy", "great", "awesome", "excited", "joy", "love", "wonderful",
		"amazing", "glad", "grateful", "fantastic", "proud", "relieved",
	},
	Sadness: {
		"sad", "depressed", "unhappy", "crying", "miserable", "lonely",
		"hopeless", "heartbroken", "grief", "feeling down", "feel low", "empty",
	},
	Anger: {
		"angry", "furious", "annoyed", "frustrated", "rage", "hate",
		"irritated", "unfair", "mad at",
	},
	Fear: {
		"afraid", "scared", "anxious", "worried", "nervous", "panic",
		"terrified", "fear", "overwhelmed", "dread",
	},
	Disgust: {
		"disgusted", "gross", "awful", "horrible", "sick of", "fed up", "terrible",
	},
	Surprise: {
		"surprised", "unexpected", "shocked", "can't believe", "didn't expect", "out of nowhere",
	},
}

// Detect scores the text against the emotion lexicon. Scores are hit
// shares summing to 1. Text with no emotional keywords scores neutral 1.
func Detect(text string) map[string]float64 {
	lower := strings.ToLower(text)

	hits := make(map[string]int)
	total := 0
	for emotion, keywords := range emotionKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				hits[emotion]++
				total++
			}
		}
	}
	if total == 0 {
		return map[string]float64{Neutral: 1.0}
	}

	scores := make(map[string]float64, len(hits))
	for emotion, n := range hits {
		scores[emotion] = float64(n) / float64(total)
	}
	return scores
}

// Dominant returns the strongest emotion in the text, or neutral when
// no emotion clears the confidence threshold.
func Dominant(text string) (string, float64) {
	scores := Detect(text)
	best := Neutral
	bestScore := 0.0
	for emotion, score := range scores {
		if score > bestScore || (score == bestScore && emotion < best) {
			best = emotion
			bestScore = score
		}
	}
	if best == Neutral || bestScore <= dominantThreshold {
		return Neutral, scores[Neutral]
	}
	return best, bestScore
}
