package emotion

import (
	"strings"
	"testing"

	"github.com/curacore/curacore/internal/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain text is neutral", "the meeting is at noon", Neutral},
		{"sadness keywords", "I feel so lonely and hopeless lately", Sadness},
		{"fear keywords", "I'm really anxious and worried about exams", Fear},
		{"joy keywords", "today was amazing, I'm so happy and grateful", Joy},
		{"anger keywords", "I'm furious, this is so unfair", Anger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := Detect(tt.text)
			best, bestScore := "", 0.0
			for e, s := range scores {
				if s > bestScore {
					best, bestScore = e, s
				}
			}
			if best != tt.want {
				t.Errorf("Detect(%q) dominant = %q (%v), want %q", tt.text, best, scores, tt.want)
			}
		})
	}
}

func TestDetectScoresSumToOne(t *testing.T) {
	scores := Detect("I'm happy but also worried and a bit sad")
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("scores sum to %f, want 1: %v", sum, scores)
	}
}

func TestDominantThreshold(t *testing.T) {
	// Four different emotions at 0.25 each: nothing clears 0.3.
	text := "I'm happy yet worried, furious, and lonely"
	emotion, _ := Dominant(text)
	if emotion != Neutral {
		t.Errorf("expected neutral below threshold, got %q", emotion)
	}

	// A single clear emotion wins.
	emotion, score := Dominant("I'm terrified and really scared")
	if emotion != Fear {
		t.Errorf("expected fear, got %q", emotion)
	}
	if score <= dominantThreshold {
		t.Errorf("expected confident score, got %f", score)
	}

	emotion, _ = Dominant("nothing emotional here")
	if emotion != Neutral {
		t.Errorf("expected neutral for plain text, got %q", emotion)
	}
}

func TestDetectCrisis(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		wantDetected bool
		wantType     string
		wantSeverity string
	}{
		{"plain message", "I had a good day at school", false, "", SeverityLow},
		{"suicide phrasing", "sometimes I want to die", true, CrisisSuicide, SeverityHigh},
		{"self harm", "I've been thinking about how to hurt myself", true, CrisisSelfHarm, SeverityHigh},
		{"violence", "I want to hurt someone at school", true, CrisisViolence, SeverityHigh},
		{"severe distress", "it's hopeless, there's no point anymore", true, CrisisSevereDistress, SeverityMedium},
		{"suicide wins over distress", "I feel worthless and want to end my life", true, CrisisSuicide, SeverityHigh},
		{"case insensitive", "I WANT TO DIE", true, CrisisSuicide, SeverityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := DetectCrisis(tt.message)
			if info.Detected != tt.wantDetected {
				t.Fatalf("Detected = %v, want %v", info.Detected, tt.wantDetected)
			}
			if info.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", info.Type, tt.wantType)
			}
			if info.Severity != tt.wantSeverity {
				t.Errorf("Severity = %q, want %q", info.Severity, tt.wantSeverity)
			}
			if info.RequiresImmediateHelp != (tt.wantSeverity == SeverityHigh) {
				t.Errorf("RequiresImmediateHelp = %v with severity %q", info.RequiresImmediateHelp, info.Severity)
			}
		})
	}
}

func TestCrisisReply(t *testing.T) {
	info := DetectCrisis("I want to end my life")
	reply := CrisisReply(info)
	if !strings.Contains(reply, "988") {
		t.Errorf("suicide crisis reply missing lifeline number: %q", reply)
	}
	if !strings.Contains(reply, "You don't have to face this alone") {
		t.Errorf("crisis reply missing followup: %q", reply)
	}

	// Distress gets the general resource list.
	info = DetectCrisis("I feel completely worthless")
	reply = CrisisReply(info)
	if !strings.Contains(reply, "SAMHSA") {
		t.Errorf("general crisis reply missing SAMHSA helpline: %q", reply)
	}

	if CrisisReply(CrisisInfo{}) != "" {
		t.Error("expected empty reply for non-crisis")
	}
}

func TestReply(t *testing.T) {
	// Greeting includes the user's name.
	reply := Reply("hello there", Neutral, "Asha")
	if !strings.HasPrefix(reply, "Hi Asha! ") {
		t.Errorf("greeting reply missing name: %q", reply)
	}

	// How-to questions get concrete advice.
	reply = Reply("how do i manage stress before exams", Neutral, "")
	if !strings.Contains(reply, "deep breaths") {
		t.Errorf("expected stress advice, got %q", reply)
	}

	// Unmatched how-to gets the generic pointer.
	reply = Reply("how can i fix my bicycle", Neutral, "")
	if !strings.Contains(reply, "How to manage stress") {
		t.Errorf("expected generic how-to reply, got %q", reply)
	}

	// Help requests draw from the supportive pool.
	reply = Reply("I need some support", Neutral, "")
	found := false
	for _, r := range supportiveResponses {
		if reply == r {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected supportive response, got %q", reply)
	}

	// Emotion-specific replies come from that emotion's pool.
	reply = Reply("everything is falling apart", Sadness, "")
	found = false
	for _, r := range emotionResponses[Sadness] {
		if reply == r {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected sadness response, got %q", reply)
	}
}

func TestAnalyzeMoods(t *testing.T) {
	empty := AnalyzeMoods(nil)
	if empty.TotalEntries != 0 || empty.Message == "" {
		t.Errorf("unexpected empty insights %+v", empty)
	}

	entries := []model.MoodEntry{
		{Mood: "anxious", Note: "worried about exams"},
		{Mood: "anxious"},
		{Mood: "happy"},
	}
	insights := AnalyzeMoods(entries)
	if insights.TotalEntries != 3 {
		t.Errorf("TotalEntries = %d, want 3", insights.TotalEntries)
	}
	if insights.MostCommonMood != "anxious" {
		t.Errorf("MostCommonMood = %q, want anxious", insights.MostCommonMood)
	}
	if insights.MoodDistribution["anxious"] != 2 {
		t.Errorf("unexpected distribution %v", insights.MoodDistribution)
	}
	if insights.EmotionAnalysis[Fear] == 0 {
		t.Errorf("expected fear from note analysis, got %v", insights.EmotionAnalysis)
	}
	if insights.EmotionalInsight == "" {
		t.Error("expected emotional insight for confident fear signal")
	}
}

func TestConversationSentiment(t *testing.T) {
	s := ConversationSentiment(nil)
	if s.OverallSentiment != Neutral || s.Confidence != 0 {
		t.Errorf("unexpected empty sentiment %+v", s)
	}

	s = ConversationSentiment([]string{"I'm so happy today", "everything is amazing"})
	if s.OverallSentiment != "positive" {
		t.Errorf("expected positive, got %+v", s)
	}

	s = ConversationSentiment([]string{"I'm sad and scared", "feeling hopeless about it"})
	if s.OverallSentiment != "negative" {
		t.Errorf("expected negative, got %+v", s)
	}

	s = ConversationSentiment([]string{"the weather is fine"})
	if s.OverallSentiment != Neutral {
		t.Errorf("expected neutral, got %+v", s)
	}
}
