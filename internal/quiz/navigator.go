package quiz

// Level-advance thresholds: the weighted score a level must reach
// before the deeper level is asked. Literal values, not derived from
// the weights present at each level.
const (
	level1AdvanceThreshold = 2
	level2AdvanceThreshold = 3
)

// navigationBound caps the transition loop: at most six sections of
// three levels each are ever traversed, so hitting the bound means the
// catalog is misconfigured.
const navigationBound = 32

// NextQuestion returns the next question to ask, or nil when the quiz
// is complete. It never touches recorded responses but advances
// current_section, current_level, and completed_sections as a side
// effect, so calling it repeatedly on the same state returns the same
// question.
func NextQuestion(s *State) *Question {
	for range navigationBound {
		switch s.CurrentSection {
		case SectionBasicInfo:
			for _, q := range basicInfoQuestions {
				if !s.answered(SectionBasicInfo, q.ID) {
					next := q
					return &next
				}
			}
			s.markCompleted(SectionBasicInfo)
			s.CurrentSection = SectionMainConcerns

		case SectionMainConcerns:
			if !s.answered(SectionMainConcerns, concernSelection.ID) {
				next := concernSelection
				return &next
			}
			s.markCompleted(SectionMainConcerns)
			if !s.enterNextConcern() {
				return nil
			}

		default:
			for _, q := range levelQuestions(s.CurrentSection, s.CurrentLevel) {
				if !s.answered(s.CurrentSection, q.ID) {
					next := q
					return &next
				}
			}
			// Level fully answered: probe deeper only when the level's
			// weighted score shows enough signal.
			if s.CurrentLevel < MaxLevel && s.levelScore(s.CurrentSection, s.CurrentLevel) >= advanceThreshold(s.CurrentLevel) {
				s.CurrentLevel++
				continue
			}
			s.markCompleted(s.CurrentSection)
			if !s.enterNextConcern() {
				return nil
			}
		}
	}
	panic("quiz: navigation did not terminate")
}

// enterNextConcern moves to the first selected concern section not yet
// completed, in the user's selection order, resetting the level to 1.
// It reports false when none remain.
func (s *State) enterNextConcern() bool {
	for _, section := range selectedSections(s.selections()) {
		if !s.sectionCompleted(section) {
			s.CurrentSection = section
			s.CurrentLevel = 1
			return true
		}
	}
	return false
}

// levelScore sums weighted scores over the answered questions of one
// level of a concern section.
func (s *State) levelScore(section string, level int) int {
	total := 0
	for _, q := range levelQuestions(section, level) {
		if ans, ok := s.Responses[section][q.ID]; ok {
			total += Score(q, ans) * q.Weight
		}
	}
	return total
}

func advanceThreshold(level int) int {
	if level == 1 {
		return level1AdvanceThreshold
	}
	return level2AdvanceThreshold
}
