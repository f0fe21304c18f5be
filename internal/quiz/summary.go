package quiz

import "time"

// Severity buckets a section score: mild up to 4, moderate
// from 5 through 8, severe from 9 up. Bounds are inclusive.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

const (
	mildUpperBound     = 4
	moderateUpperBound = 8
)

// ConcernScore is the derived result for one selected concern.
type ConcernScore struct {
	Concern         string   `json:"concern"`
	Score           int      `json:"score"`
	Severity        Severity `json:"severity"`
	Recommendations []string `json:"recommendations"`
}

// ConcernScores keeps the user's selection order; that order drives
// primary-recommendation assembly and the suggested-mood tie-break.
type ConcernScores []ConcernScore

// Summary is the final clinical-style report for a completed session.
type Summary struct {
	QuizID                 string            `json:"quiz_id"`
	UserID                 int64             `json:"user_id"`
	CompletionDate         time.Time         `json:"completion_date"`
	BasicInfo              map[string]Answer `json:"basic_info"`
	MainConcerns           []string          `json:"main_concerns"`
	Scores                 ConcernScores     `json:"scores"`
	OverallSeverity        Severity          `json:"overall_severity"`
	CriticalFlag           bool              `json:"critical_flag"`
	CriticalType           string            `json:"critical_type,omitempty"`
	PrimaryRecommendations []string          `json:"primary_recommendations"`
	SuggestedMood          string            `json:"suggested_mood"`
}

// crisisRecommendations replaces every per-concern recommendation list
// when the session carries the critical flag.
var crisisRecommendations = []string{
	"Your responses indicate you may need immediate professional support.",
	"Please consider contacting a mental health professional or crisis helpline.",
	"National Suicide Prevention Lifeline: 988",
	"Crisis Text Line: Text HOME to 741741",
	"You are not alone - help is available.",
}

// crisisPrimaryRecommendations is the summary-level crisis list.
var crisisPrimaryRecommendations = []string{
	"Immediate professional support recommended",
	"Contact crisis helpline or emergency services",
	"Reach out to trusted friends, family, or counselors",
	"You are not alone - help is available",
}

var fallbackRecommendations = []string{
	"Consider speaking with a healthcare professional for personalized advice.",
}

var concernRecommendations = map[string]map[Severity][]string{
	"Stress & Academic Pressure": {
		SeverityMild: {
			"Try time management techniques like the Pomodoro method",
			"Practice deep breathing exercises during stressful moments",
			"Create a study schedule with regular breaks",
			"Consider light physical exercise to reduce stress",
		},
		SeverityModerate: {
			"Implement structured stress management techniques",
			"Consider joining study groups for peer support",
			"Practice mindfulness or meditation daily",
			"Speak with academic advisors about workload management",
			"Consider counseling services if available",
		},
		SeveritySevere: {
			"Seek professional counseling or therapy",
			"Contact your institution's mental health services",
			"Consider temporary academic accommodations",
			"Involve trusted friends or family in your support system",
			"Professional stress management therapy may be beneficial",
		},
	},
	"Anxiety / Worry": {
		SeverityMild: {
			"Practice grounding techniques (5-4-3-2-1 method)",
			"Try progressive muscle relaxation",
			"Limit caffeine intake",
			"Maintain regular sleep schedule",
		},
		SeverityModerate: {
			"Learn cognitive behavioral techniques for anxiety",
			"Consider anxiety management apps or guided meditations",
			"Join anxiety support groups",
			"Practice exposure therapy for specific fears",
			"Consider counseling for anxiety management",
		},
		SeveritySevere: {
			"Seek professional mental health treatment",
			"Consider therapy (CBT, DBT) for anxiety disorders",
			"Consult with a psychiatrist about treatment options",
			"Implement comprehensive anxiety management plan",
			"Consider medication evaluation if appropriate",
		},
	},
	"Low Mood / Sadness": {
		SeverityMild: {
			"Engage in regular physical activity",
			"Maintain social connections",
			"Practice gratitude journaling",
			"Ensure adequate sunlight exposure",
		},
		SeverityModerate: {
			"Consider counseling or therapy",
			"Join support groups for mood management",
			"Implement behavioral activation techniques",
			"Monitor mood patterns and triggers",
			"Consider professional mental health evaluation",
		},
		SeveritySevere: {
			"Seek immediate professional mental health treatment",
			"Consider therapy for depression (CBT, IPT)",
			"Consult with a psychiatrist for comprehensive evaluation",
			"Develop safety plan with mental health professional",
			"Consider intensive outpatient or inpatient treatment if needed",
		},
	},
	"Sleep Problems": {
		SeverityMild: {
			"Maintain consistent sleep schedule",
			"Create relaxing bedtime routine",
			"Limit screen time before bed",
			"Keep bedroom cool and dark",
		},
		SeverityModerate: {
			"Implement comprehensive sleep hygiene practices",
			"Consider sleep tracking and analysis",
			"Try relaxation techniques before bed",
			"Evaluate and modify evening habits",
			"Consider brief counseling for sleep issues",
		},
		SeveritySevere: {
			"Consult with sleep specialist or physician",
			"Consider sleep study evaluation",
			"Explore underlying medical or psychological causes",
			"Consider cognitive behavioral therapy for insomnia (CBT-I)",
			"Professional sleep disorder treatment may be needed",
		},
	},
}

// FinalScores computes the per-concern weighted totals, severity
// buckets, and recommendation lists for every selected concern with at
// least one recorded response. Call it once navigation reports
// completion; it reads the state without mutating it.
func FinalScores(s *State) ConcernScores {
	var scores ConcernScores
	for _, label := range s.selections() {
		section, ok := concernLabels[label]
		if !ok {
			continue
		}
		if len(s.Responses[section]) == 0 {
			continue
		}
		total := sectionScore(s, section)
		sev := severityFor(total)
		scores = append(scores, ConcernScore{
			Concern:         label,
			Score:           total,
			Severity:        sev,
			Recommendations: recommendationsFor(label, sev, s.CriticalFlag),
		})
	}
	return scores
}

// sectionScore sums weighted scores over every answered question in
// all levels of a concern section. Levels never visited contribute
// nothing.
func sectionScore(s *State, section string) int {
	total := 0
	for level := 1; level <= MaxLevel; level++ {
		total += s.levelScore(section, level)
	}
	return total
}

func severityFor(score int) Severity {
	switch {
	case score <= mildUpperBound:
		return SeverityMild
	case score <= moderateUpperBound:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

func recommendationsFor(concern string, sev Severity, critical bool) []string {
	if critical {
		return crisisRecommendations
	}
	if recs, ok := concernRecommendations[concern][sev]; ok {
		return recs
	}
	return fallbackRecommendations
}

// Summarize builds the final report from a completed state and its
// computed scores. It performs no I/O and is total on any state the
// navigator can produce.
func Summarize(s *State, scores ConcernScores) *Summary {
	basicInfo := s.Responses[SectionBasicInfo]
	if basicInfo == nil {
		basicInfo = map[string]Answer{}
	}
	return &Summary{
		QuizID:                 s.QuizID,
		UserID:                 s.UserID,
		CompletionDate:         time.Now(),
		BasicInfo:              basicInfo,
		MainConcerns:           s.selections(),
		Scores:                 scores,
		OverallSeverity:        overallSeverity(scores),
		CriticalFlag:           s.CriticalFlag,
		CriticalType:           s.CriticalType,
		PrimaryRecommendations: PrimaryRecommendations(scores, s.CriticalFlag),
		SuggestedMood:          suggestedMood(scores),
	}
}

// overallSeverity is the worst bucket across all concerns; an empty
// score set is mild.
func overallSeverity(scores ConcernScores) Severity {
	overall := SeverityMild
	for _, cs := range scores {
		switch cs.Severity {
		case SeveritySevere:
			return SeveritySevere
		case SeverityModerate:
			overall = SeverityModerate
		}
	}
	return overall
}

// PrimaryRecommendations selects the top recommendations across all
// scored concerns: two per concern in order, deduplicated first-seen,
// capped at six. A critical result always yields the crisis list.
func PrimaryRecommendations(scores ConcernScores, critical bool) []string {
	if critical {
		return crisisPrimaryRecommendations
	}
	seen := make(map[string]bool)
	var out []string
	for _, cs := range scores {
		top := cs.Recommendations
		if len(top) > 2 {
			top = top[:2]
		}
		for _, rec := range top {
			if !seen[rec] {
				seen[rec] = true
				out = append(out, rec)
			}
		}
	}
	if len(out) > 6 {
		out = out[:6]
	}
	return out
}

// suggestedMood maps the highest-scoring concern to a mood label,
// first seen wins on ties, neutral when nothing scored.
func suggestedMood(scores ConcernScores) string {
	best := ""
	bestScore := -1
	for _, cs := range scores {
		if cs.Score > bestScore {
			bestScore = cs.Score
			best = cs.Concern
		}
	}
	if mood, ok := concernMoods[best]; ok {
		return mood
	}
	return "neutral"
}
