package quiz

import (
	"fmt"
	"time"
)

// State is the full session state of one quiz. The engine holds no
// storage of its own: the caller passes the state into every call and
// owns its persistence and per-session serialization.
type State struct {
	UserID            int64                        `json:"user_id"`
	QuizID            string                       `json:"quiz_id"`
	CurrentSection    string                       `json:"current_section"`
	CurrentLevel      int                          `json:"current_level"`
	Responses         map[string]map[string]Answer `json:"responses"`
	CompletedSections []string                     `json:"completed_sections"`
	CriticalFlag      bool                         `json:"critical_flag,omitempty"`
	CriticalType      string                       `json:"critical_type,omitempty"`
}

// Start creates a fresh session positioned at the first basic_info
// question. The quiz id is derived from the user id and the current
// time.
func Start(userID int64) *State {
	return &State{
		UserID:            userID,
		QuizID:            fmt.Sprintf("quiz_%d_%d", userID, time.Now().Unix()),
		CurrentSection:    SectionBasicInfo,
		CurrentLevel:      1,
		Responses:         make(map[string]map[string]Answer),
		CompletedSections: []string{},
	}
}

// answered reports whether a question has a recorded response.
func (s *State) answered(section, questionID string) bool {
	_, ok := s.Responses[section][questionID]
	return ok
}

// sectionCompleted reports membership in the completed set.
func (s *State) sectionCompleted(section string) bool {
	for _, c := range s.CompletedSections {
		if c == section {
			return true
		}
	}
	return false
}

// markCompleted appends a section to the completed set at most once.
func (s *State) markCompleted(section string) {
	if !s.sectionCompleted(section) {
		s.CompletedSections = append(s.CompletedSections, section)
	}
}

// selections returns the concern labels chosen on the main_concerns
// multi-select, in the order the user listed them. A plain-text answer
// counts as a single selection.
func (s *State) selections() []string {
	ans, ok := s.Responses[SectionMainConcerns][concernSelection.ID]
	if !ok {
		return nil
	}
	switch ans.Kind {
	case KindList:
		return ans.List
	case KindText:
		if ans.Text == "" {
			return nil
		}
		return []string{ans.Text}
	}
	return nil
}
