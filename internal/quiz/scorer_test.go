package quiz

import "testing"

func TestScoreByType(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		ans  Answer
		want int
	}{
		{"yes_no true", Question{Type: TypeYesNo}, BoolAnswer(true), 2},
		{"yes_no false", Question{Type: TypeYesNo}, BoolAnswer(false), 0},
		{"yes_no literal yes", Question{Type: TypeYesNo}, TextAnswer("yes"), 2},
		{"yes_no literal Yes", Question{Type: TypeYesNo}, TextAnswer("Yes"), 2},
		{"yes_no literal no", Question{Type: TypeYesNo}, TextAnswer("no"), 0},
		{"yes_no arbitrary text", Question{Type: TypeYesNo}, TextAnswer("maybe"), 0},
		{"frequency never", Question{Type: TypeFrequency}, TextAnswer("Never"), 0},
		{"frequency rarely", Question{Type: TypeFrequency}, TextAnswer("Rarely"), 0},
		{"frequency sometimes", Question{Type: TypeFrequency}, TextAnswer("Sometimes"), 1},
		{"frequency often", Question{Type: TypeFrequency}, TextAnswer("Often"), 2},
		{"frequency always", Question{Type: TypeFrequency}, TextAnswer("Always"), 3},
		{"frequency almost daily", Question{Type: TypeFrequency}, TextAnswer("Almost daily"), 3},
		{"frequency very often", Question{Type: TypeFrequency}, TextAnswer("Very often"), 3},
		{"frequency unmapped", Question{Type: TypeFrequency}, TextAnswer("Whenever"), 0},
		{"frequency wrong kind", Question{Type: TypeFrequency}, NumberAnswer(2), 0},
		{"impact not at all", Question{Type: TypeImpact}, TextAnswer("Not at all"), 0},
		{"impact a little", Question{Type: TypeImpact}, TextAnswer("A little"), 1},
		{"impact moderately", Question{Type: TypeImpact}, TextAnswer("Moderately"), 2},
		{"impact a lot", Question{Type: TypeImpact}, TextAnswer("A lot"), 3},
		{"impact empty", Question{Type: TypeImpact}, TextAnswer(""), 0},
		{"scale in range", Question{Type: TypeScale}, NumberAnswer(2), 2},
		{"scale capped", Question{Type: TypeScale}, NumberAnswer(7), 3},
		{"scale negative", Question{Type: TypeScale}, NumberAnswer(-5), 0},
		{"scale fractional", Question{Type: TypeScale}, NumberAnswer(1.9), 1},
		{"scale non-numeric", Question{Type: TypeScale}, TextAnswer("3"), 0},
		{"choice severe", Question{Type: TypeSingleChoice}, TextAnswer("Severe insomnia"), 2},
		{"choice a lot", Question{Type: TypeSingleChoice}, TextAnswer("A lot of pressure"), 2},
		{"choice moderate", Question{Type: TypeSingleChoice}, TextAnswer("Moderate workload"), 1},
		{"choice sometimes", Question{Type: TypeSingleChoice}, TextAnswer("Only sometimes"), 1},
		{"choice neutral", Question{Type: TypeSingleChoice}, TextAnswer("Exams"), 0},
		{"multi choice with severe item", Question{Type: TypeMultipleChoice}, ListAnswer("Exams", "Severe pressure"), 2},
		{"multi choice plain items", Question{Type: TypeMultipleChoice}, ListAnswer("Exams", "Assignments"), 0},
		{"empty list", Question{Type: TypeMultipleChoice}, ListAnswer(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.q, tt.ans); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Scoring must be total: any answer kind against any question type
// yields a score in [0,3] and never panics.
func TestScoreTotality(t *testing.T) {
	types := []QuestionType{TypeYesNo, TypeFrequency, TypeImpact, TypeScale, TypeSingleChoice, TypeMultipleChoice}
	answers := []Answer{
		BoolAnswer(true), BoolAnswer(false),
		TextAnswer(""), TextAnswer("garbage"), TextAnswer("yes"),
		NumberAnswer(-100), NumberAnswer(0), NumberAnswer(3.5), NumberAnswer(1e9),
		ListAnswer(), ListAnswer("a", "b"),
		{}, // zero value
	}
	for _, qt := range types {
		for _, ans := range answers {
			got := Score(Question{Type: qt}, ans)
			if got < 0 || got > 3 {
				t.Errorf("Score(%s, %v) = %d, out of range", qt, ans, got)
			}
		}
	}
}

func TestSubmitAnswerRecordsResponse(t *testing.T) {
	st := Start(1)
	SubmitAnswer(st, "age_group", TextAnswer("18-20"))

	ans, ok := st.Responses[SectionBasicInfo]["age_group"]
	if !ok {
		t.Fatal("expected response recorded in basic_info")
	}
	if ans.Text != "18-20" {
		t.Errorf("recorded answer = %q, want 18-20", ans.Text)
	}
	if st.CriticalFlag {
		t.Error("demographic answer must not set critical flag")
	}
}

func TestCriticalDetection(t *testing.T) {
	tests := []struct {
		name       string
		section    string
		questionID string
		ans        Answer
		wantFlag   bool
		wantType   string
	}{
		{"suicidal often", SectionLowMood, "mood_suicidal", TextAnswer("Often"), true, CriticalSuicidalIdeation},
		{"suicidal very often", SectionLowMood, "mood_suicidal", TextAnswer("Very often"), true, CriticalSuicidalIdeation},
		{"suicidal sometimes", SectionLowMood, "mood_suicidal", TextAnswer("Sometimes"), false, ""},
		{"suicidal never", SectionLowMood, "mood_suicidal", TextAnswer("Never"), false, ""},
		{"anxiety physical yes", SectionAnxiety, "anxiety_physical", BoolAnswer(true), true, CriticalSevereAnxiety},
		{"anxiety physical no", SectionAnxiety, "anxiety_physical", BoolAnswer(false), false, ""},
		{"stress physical yes", SectionStress, "stress_physical", BoolAnswer(true), true, CriticalSevereDistress},
		{"stress physical yes literal", SectionStress, "stress_physical", TextAnswer("yes"), true, CriticalSevereDistress},
		{"mood impact a lot", SectionLowMood, "mood_impact", TextAnswer("A lot"), true, CriticalSevereDepression},
		{"mood impact moderately", SectionLowMood, "mood_impact", TextAnswer("Moderately"), false, ""},
		{"non-registry question", SectionStress, "stress_overwhelmed", BoolAnswer(true), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Start(1)
			st.CurrentSection = tt.section
			SubmitAnswer(st, tt.questionID, tt.ans)
			if st.CriticalFlag != tt.wantFlag {
				t.Fatalf("CriticalFlag = %v, want %v", st.CriticalFlag, tt.wantFlag)
			}
			if st.CriticalType != tt.wantType {
				t.Errorf("CriticalType = %q, want %q", st.CriticalType, tt.wantType)
			}
		})
	}
}

// Once set, the critical flag survives any later answer; the type is
// overwritten by the most recent trigger.
func TestCriticalFlagMonotonic(t *testing.T) {
	st := Start(1)
	st.CurrentSection = SectionStress
	SubmitAnswer(st, "stress_physical", BoolAnswer(true))
	if !st.CriticalFlag || st.CriticalType != CriticalSevereDistress {
		t.Fatalf("setup: flag=%v type=%q", st.CriticalFlag, st.CriticalType)
	}

	// A harmless answer must not clear the flag.
	SubmitAnswer(st, "stress_overwhelmed", BoolAnswer(false))
	if !st.CriticalFlag {
		t.Error("critical flag cleared by later answer")
	}

	// A second trigger rewrites the type (last one wins).
	st.CurrentSection = SectionLowMood
	SubmitAnswer(st, "mood_suicidal", TextAnswer("Very often"))
	if st.CriticalType != CriticalSuicidalIdeation {
		t.Errorf("CriticalType = %q, want %q", st.CriticalType, CriticalSuicidalIdeation)
	}
}
