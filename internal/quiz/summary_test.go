package quiz

import (
	"reflect"
	"testing"
)

func TestSeverityBuckets(t *testing.T) {
	tests := []struct {
		score int
		want  Severity
	}{
		{0, SeverityMild},
		{4, SeverityMild},
		{5, SeverityModerate},
		{8, SeverityModerate},
		{9, SeveritySevere},
		{30, SeveritySevere},
	}
	for _, tt := range tests {
		if got := severityFor(tt.score); got != tt.want {
			t.Errorf("severityFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

// Sleep-only session landing exactly on the moderate bound: both
// level-1 questions affirmative (4 points each at weight 2), then no
// further signal. The section advances to level 2, totals 8, and
// buckets as moderate.
func TestSleepOnlyModerateScenario(t *testing.T) {
	st := Start(7)
	selectConcerns(t, st, "Sleep Problems")

	for _, id := range []string{"sleep_falling_asleep", "sleep_wake_unrested"} {
		q := NextQuestion(st)
		if q.ID != id {
			t.Fatalf("question = %q, want %q", q.ID, id)
		}
		SubmitAnswer(st, q.ID, BoolAnswer(true))
	}

	// Level-1 score 8 >= 2, so level 2 must open.
	q := NextQuestion(st)
	if q == nil || q.Level != 2 {
		t.Fatalf("expected level-2 question, got %+v", q)
	}
	for q != nil {
		SubmitAnswer(st, q.ID, lowAnswer(*q))
		q = NextQuestion(st)
	}

	scores := FinalScores(st)
	if len(scores) != 1 {
		t.Fatalf("len(scores) = %d, want 1", len(scores))
	}
	if scores[0].Score != 8 {
		t.Errorf("sleep score = %d, want 8", scores[0].Score)
	}
	if scores[0].Severity != SeverityModerate {
		t.Errorf("severity = %s, want moderate", scores[0].Severity)
	}

	sum := Summarize(st, scores)
	if sum.OverallSeverity != SeverityModerate {
		t.Errorf("overall severity = %s, want moderate", sum.OverallSeverity)
	}
	if sum.CriticalFlag {
		t.Error("critical flag set without a critical answer")
	}
	if sum.SuggestedMood != "tired" {
		t.Errorf("suggested mood = %q, want tired", sum.SuggestedMood)
	}
}

// Any session with mood_suicidal answered "Very often" is critical and
// every recommendation output collapses to the crisis lists.
func TestSuicidalAnswerForcesCrisisOutput(t *testing.T) {
	st := Start(9)
	selectConcerns(t, st, "Low Mood / Sadness")
	runToCompletion(t, st, func(q Question) Answer {
		if q.ID == "mood_suicidal" {
			return TextAnswer("Very often")
		}
		return highAnswer(q)
	})

	if !st.CriticalFlag {
		t.Fatal("critical flag not set")
	}
	if st.CriticalType != CriticalSuicidalIdeation {
		t.Fatalf("critical type = %q", st.CriticalType)
	}

	scores := FinalScores(st)
	for _, cs := range scores {
		if !reflect.DeepEqual(cs.Recommendations, crisisRecommendations) {
			t.Errorf("concern %q recommendations not overridden by crisis list", cs.Concern)
		}
	}

	sum := Summarize(st, scores)
	if !reflect.DeepEqual(sum.PrimaryRecommendations, crisisPrimaryRecommendations) {
		t.Errorf("primary recommendations = %v, want crisis list", sum.PrimaryRecommendations)
	}
}

func TestOverallSeverity(t *testing.T) {
	tests := []struct {
		name   string
		scores ConcernScores
		want   Severity
	}{
		{"empty", nil, SeverityMild},
		{"all mild", ConcernScores{{Severity: SeverityMild}, {Severity: SeverityMild}}, SeverityMild},
		{"one moderate", ConcernScores{{Severity: SeverityMild}, {Severity: SeverityModerate}}, SeverityModerate},
		{"severe wins", ConcernScores{{Severity: SeverityModerate}, {Severity: SeveritySevere}}, SeveritySevere},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overallSeverity(tt.scores); got != tt.want {
				t.Errorf("overallSeverity() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPrimaryRecommendationsDedupAndCap(t *testing.T) {
	scores := ConcernScores{
		{Concern: "a", Recommendations: []string{"r1", "r2", "r3"}},
		{Concern: "b", Recommendations: []string{"r2", "r4"}},
		{Concern: "c", Recommendations: []string{"r5", "r6"}},
		{Concern: "d", Recommendations: []string{"r7", "r8"}},
	}
	got := PrimaryRecommendations(scores, false)
	want := []string{"r1", "r2", "r4", "r5", "r6", "r7"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PrimaryRecommendations = %v, want %v", got, want)
	}
}

func TestSuggestedMoodHighestScoreFirstSeenWins(t *testing.T) {
	tests := []struct {
		name   string
		scores ConcernScores
		want   string
	}{
		{"empty", nil, "neutral"},
		{
			"highest wins",
			ConcernScores{
				{Concern: "Sleep Problems", Score: 3},
				{Concern: "Anxiety / Worry", Score: 10},
			},
			"anxious",
		},
		{
			"tie keeps first seen",
			ConcernScores{
				{Concern: "Low Mood / Sadness", Score: 6},
				{Concern: "Stress & Academic Pressure", Score: 6},
			},
			"sad",
		},
		{
			"unknown concern falls back",
			ConcernScores{{Concern: "Other", Score: 5}},
			"neutral",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := suggestedMood(tt.scores); got != tt.want {
				t.Errorf("suggestedMood = %q, want %q", got, tt.want)
			}
		})
	}
}

// Replaying the identical answer sequence from a fresh start yields an
// identical report apart from ids and timestamps.
func TestDeterministicReplay(t *testing.T) {
	play := func() (*State, ConcernScores) {
		st := Start(3)
		selectConcerns(t, st, "Stress & Academic Pressure", "Sleep Problems")
		runToCompletion(t, st, highAnswer)
		return st, FinalScores(st)
	}

	st1, scores1 := play()
	st2, scores2 := play()

	if !reflect.DeepEqual(scores1, scores2) {
		t.Errorf("scores differ between replays:\n%v\n%v", scores1, scores2)
	}
	sum1 := Summarize(st1, scores1)
	sum2 := Summarize(st2, scores2)
	if sum1.OverallSeverity != sum2.OverallSeverity ||
		sum1.SuggestedMood != sum2.SuggestedMood ||
		!reflect.DeepEqual(sum1.PrimaryRecommendations, sum2.PrimaryRecommendations) ||
		!reflect.DeepEqual(sum1.MainConcerns, sum2.MainConcerns) {
		t.Error("summaries differ between replays")
	}
}

// A selected concern with no recorded responses is skipped rather than
// reported, and the summary stays well-formed.
func TestFinalScoresSkipsUnansweredConcern(t *testing.T) {
	st := Start(5)
	selectConcerns(t, st, "Sleep Problems", "Anxiety / Worry")
	// Abandon mid-quiz: only sleep answered.
	for range 10 {
		q := NextQuestion(st)
		if q == nil || q.Section != SectionSleep {
			break
		}
		SubmitAnswer(st, q.ID, BoolAnswer(false))
	}

	scores := FinalScores(st)
	for _, cs := range scores {
		if cs.Concern == "Anxiety / Worry" {
			t.Error("unanswered concern present in scores")
		}
	}
}
