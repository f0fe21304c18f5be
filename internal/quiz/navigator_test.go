package quiz

import "testing"

// answerBasicInfo walks the three demographic questions.
func answerBasicInfo(t *testing.T, st *State) {
	t.Helper()
	for _, want := range []string{"age_group", "year_of_study", "living_situation"} {
		q := NextQuestion(st)
		if q == nil {
			t.Fatal("quiz ended during basic_info")
		}
		if q.ID != want {
			t.Fatalf("basic_info question = %q, want %q", q.ID, want)
		}
		SubmitAnswer(st, q.ID, TextAnswer(q.Options[0]))
	}
}

// selectConcerns answers basic_info and the concern multi-select.
func selectConcerns(t *testing.T, st *State, labels ...string) {
	t.Helper()
	answerBasicInfo(t, st)
	q := NextQuestion(st)
	if q == nil || q.ID != "concern_selection" {
		t.Fatalf("expected concern_selection, got %+v", q)
	}
	SubmitAnswer(st, q.ID, ListAnswer(labels...))
}

// lowAnswer produces the lowest-signal answer for any question.
func lowAnswer(q Question) Answer {
	switch q.Type {
	case TypeYesNo:
		return BoolAnswer(false)
	case TypeFrequency, TypeImpact, TypeSingleChoice:
		return TextAnswer(q.Options[0])
	case TypeScale:
		return NumberAnswer(0)
	case TypeMultipleChoice:
		if len(q.Options) > 0 {
			return ListAnswer(q.Options[0])
		}
		return ListAnswer()
	}
	return TextAnswer("")
}

// highAnswer produces the strongest answer for any question.
func highAnswer(q Question) Answer {
	switch q.Type {
	case TypeYesNo:
		return BoolAnswer(true)
	case TypeFrequency, TypeImpact, TypeSingleChoice:
		return TextAnswer(q.Options[len(q.Options)-1])
	case TypeScale:
		return NumberAnswer(float64(q.Scale[len(q.Scale)-1]))
	case TypeMultipleChoice:
		return ListAnswer(q.Options...)
	}
	return TextAnswer("")
}

// runToCompletion drives the question/answer loop until the navigator
// reports done, failing the test if it does not terminate.
func runToCompletion(t *testing.T, st *State, answer func(Question) Answer) int {
	t.Helper()
	asked := 0
	for range 200 {
		q := NextQuestion(st)
		if q == nil {
			return asked
		}
		asked++
		SubmitAnswer(st, q.ID, answer(*q))
	}
	t.Fatal("quiz did not terminate")
	return 0
}

func TestStartState(t *testing.T) {
	st := Start(42)
	if st.UserID != 42 {
		t.Errorf("UserID = %d, want 42", st.UserID)
	}
	if st.QuizID == "" {
		t.Error("QuizID not generated")
	}
	if st.CurrentSection != SectionBasicInfo || st.CurrentLevel != 1 {
		t.Errorf("start position = %s/%d, want basic_info/1", st.CurrentSection, st.CurrentLevel)
	}
	if q := NextQuestion(st); q == nil || q.ID != "age_group" {
		t.Errorf("first question = %+v, want age_group", q)
	}
}

func TestNextQuestionIdempotent(t *testing.T) {
	st := Start(1)
	first := NextQuestion(st)
	second := NextQuestion(st)
	if first.ID != second.ID {
		t.Errorf("repeated NextQuestion: %q then %q", first.ID, second.ID)
	}

	// Same at a section boundary: basic_info answered, not yet the
	// concern selection.
	answerBasicInfo(t, st)
	first = NextQuestion(st)
	second = NextQuestion(st)
	if first.ID != "concern_selection" || second.ID != "concern_selection" {
		t.Errorf("boundary questions = %q, %q", first.ID, second.ID)
	}
}

func TestNoConcernsSelectedCompletesImmediately(t *testing.T) {
	st := Start(1)
	selectConcerns(t, st, "Other")
	if q := NextQuestion(st); q != nil {
		t.Errorf("expected completion, got %q", q.ID)
	}
	if !st.sectionCompleted(SectionMainConcerns) {
		t.Error("main_concerns not marked completed")
	}
}

func TestEmptySelectionCompletes(t *testing.T) {
	st := Start(1)
	selectConcerns(t, st)
	if q := NextQuestion(st); q != nil {
		t.Errorf("expected completion, got %q", q.ID)
	}
}

func TestUnrecognizedConcernSkipped(t *testing.T) {
	st := Start(1)
	selectConcerns(t, st, "Other", "Sleep Problems", "Something made up")
	q := NextQuestion(st)
	if q == nil || q.Section != SectionSleep {
		t.Fatalf("expected sleep_problems question, got %+v", q)
	}
}

func TestSelectionOrderDrivesSectionOrder(t *testing.T) {
	st := Start(1)
	// Reverse of catalog definition order on purpose.
	selectConcerns(t, st, "Sleep Problems", "Stress & Academic Pressure")

	q := NextQuestion(st)
	if q.Section != SectionSleep {
		t.Fatalf("first concern section = %q, want sleep_problems", q.Section)
	}

	// Answer sleep with no signal so it completes after level 1.
	for q != nil && q.Section == SectionSleep {
		SubmitAnswer(st, q.ID, lowAnswer(*q))
		q = NextQuestion(st)
	}
	if q == nil || q.Section != SectionStress {
		t.Fatalf("second concern section = %+v, want stress_academic", q)
	}
}

func TestLevelGateHoldsOnLowSignal(t *testing.T) {
	st := Start(1)
	selectConcerns(t, st, "Anxiety / Worry")

	// Both level-1 answers "no": level score 0 < 2, no level 2.
	for _, id := range []string{"anxiety_nervous", "anxiety_overthink"} {
		q := NextQuestion(st)
		if q.ID != id {
			t.Fatalf("question = %q, want %q", q.ID, id)
		}
		SubmitAnswer(st, q.ID, BoolAnswer(false))
	}
	if q := NextQuestion(st); q != nil {
		t.Errorf("expected completion after shallow level, got %q", q.ID)
	}
	if st.CurrentLevel != 1 {
		t.Errorf("CurrentLevel = %d, want 1", st.CurrentLevel)
	}
}

func TestLevelGateAdvancesOnSignal(t *testing.T) {
	st := Start(1)
	selectConcerns(t, st, "Anxiety / Worry")

	// One "yes" at weight 2 scores 4 >= 2: level 2 opens.
	q := NextQuestion(st)
	SubmitAnswer(st, q.ID, BoolAnswer(true))
	q = NextQuestion(st)
	SubmitAnswer(st, q.ID, BoolAnswer(false))

	q = NextQuestion(st)
	if q == nil || q.Level != 2 {
		t.Fatalf("expected level-2 question, got %+v", q)
	}
	if q.ID != "anxiety_frequency" {
		t.Errorf("level-2 question = %q, want anxiety_frequency", q.ID)
	}
}

// current_level only ever moves forward within a section and never
// beyond 3, regardless of the answers given.
func TestLevelBound(t *testing.T) {
	st := Start(1)
	selectConcerns(t, st, "Low Mood / Sadness")

	lastLevel := 1
	for range 50 {
		q := NextQuestion(st)
		if q == nil {
			break
		}
		if q.Level < lastLevel {
			t.Fatalf("level decreased from %d to %d", lastLevel, q.Level)
		}
		if q.Level > MaxLevel {
			t.Fatalf("level %d exceeds maximum", q.Level)
		}
		lastLevel = q.Level
		SubmitAnswer(st, q.ID, highAnswer(*q))
	}
	if lastLevel != MaxLevel {
		t.Errorf("strong answers stopped at level %d, want %d", lastLevel, MaxLevel)
	}
}

func TestTerminationAllConcernsAllAnswerStyles(t *testing.T) {
	styles := map[string]func(Question) Answer{
		"lowest":  lowAnswer,
		"highest": highAnswer,
		"garbage": func(Question) Answer { return TextAnswer("???") },
	}
	selections := [][]string{
		{},
		{"Sleep Problems"},
		{"Stress & Academic Pressure", "Anxiety / Worry"},
		{"Stress & Academic Pressure", "Anxiety / Worry", "Low Mood / Sadness", "Sleep Problems"},
	}
	for name, style := range styles {
		for _, sel := range selections {
			st := Start(1)
			selectConcerns(t, st, sel...)
			runToCompletion(t, st, style)
			if q := NextQuestion(st); q != nil {
				t.Errorf("%s/%v: question after completion: %q", name, sel, q.ID)
			}
		}
	}
}

func TestCompletedSectionsAppearOnce(t *testing.T) {
	st := Start(1)
	selectConcerns(t, st, "Stress & Academic Pressure", "Sleep Problems")
	runToCompletion(t, st, highAnswer)

	seen := make(map[string]int)
	for _, sec := range st.CompletedSections {
		seen[sec]++
	}
	for sec, n := range seen {
		if n != 1 {
			t.Errorf("section %q completed %d times", sec, n)
		}
	}
	for _, want := range []string{SectionBasicInfo, SectionMainConcerns, SectionStress, SectionSleep} {
		if seen[want] != 1 {
			t.Errorf("section %q missing from completed set", want)
		}
	}
}

func TestQuestionsNeverRepeat(t *testing.T) {
	st := Start(1)
	selectConcerns(t, st, "Anxiety / Worry", "Low Mood / Sadness")

	asked := make(map[string]bool)
	for range 200 {
		q := NextQuestion(st)
		if q == nil {
			return
		}
		if asked[q.ID] {
			t.Fatalf("question %q asked twice", q.ID)
		}
		asked[q.ID] = true
		SubmitAnswer(st, q.ID, highAnswer(*q))
	}
	t.Fatal("quiz did not terminate")
}

func TestUnknownSectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for undefined catalog section")
		}
	}()
	levelQuestions("made_up_section", 1)
}

func TestUnknownLevelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for undefined catalog level")
		}
	}()
	levelQuestions(SectionSleep, 4)
}
