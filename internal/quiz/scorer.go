package quiz

import "strings"

// Critical classification values.
const (
	CriticalSuicidalIdeation = "suicidal_ideation"
	CriticalSevereAnxiety    = "severe_anxiety"
	CriticalSevereDepression = "severe_depression"
	CriticalSevereDistress   = "severe_distress"
)

var frequencyScores = map[string]int{
	"Never":        0,
	"Rarely":       0,
	"Sometimes":    1,
	"Often":        2,
	"Always":       3,
	"Almost daily": 3,
	"Very often":   3,
}

var impactScores = map[string]int{
	"Not at all": 0,
	"A little":   1,
	"Moderately": 2,
	"A lot":      3,
}

// Score converts a raw answer into its unweighted contribution for the
// question's type. It is total: any answer value, including malformed
// or mismatched ones, yields a finite score in [0,3]. Unmapped
// literals score zero so a quiz can always be completed.
func Score(q Question, ans Answer) int {
	switch q.Type {
	case TypeYesNo:
		if ans.Truthy() {
			return 2
		}
		return 0
	case TypeFrequency:
		return frequencyScores[ans.String()]
	case TypeImpact:
		return impactScores[ans.String()]
	case TypeScale:
		if ans.Kind != KindNumber {
			return 0
		}
		n := int(ans.Number)
		if n < 0 {
			return 0
		}
		if n > 3 {
			return 3
		}
		return n
	case TypeSingleChoice, TypeMultipleChoice:
		// Coarse severity heuristic over the choice text.
		text := strings.ToLower(ans.String())
		if strings.Contains(text, "severe") || strings.Contains(text, "a lot") {
			return 2
		}
		if strings.Contains(text, "moderate") || strings.Contains(text, "sometimes") {
			return 1
		}
		return 0
	}
	return 0
}

// SubmitAnswer records an answer against the state's current section
// and runs critical detection. The caller must have verified that the
// question id belongs to the current section; the engine trusts it.
// The critical flag is monotonic: once set it never clears, and the
// last triggering answer determines the critical type.
func SubmitAnswer(s *State, questionID string, ans Answer) {
	section := s.CurrentSection
	if s.Responses[section] == nil {
		s.Responses[section] = make(map[string]Answer)
	}
	s.Responses[section][questionID] = ans

	if isCriticalResponse(questionID, ans) {
		s.CriticalFlag = true
		s.CriticalType = classifyCritical(section, questionID)
	}
}

// isCriticalResponse checks the fixed registry of question ids whose
// answers indicate a crisis.
func isCriticalResponse(questionID string, ans Answer) bool {
	switch questionID {
	case "mood_suicidal":
		v := ans.String()
		return v == "Often" || v == "Very often"
	case "anxiety_physical", "stress_physical":
		return ans.Truthy()
	case "mood_impact":
		return ans.String() == "A lot"
	}
	return false
}

func classifyCritical(section, questionID string) string {
	if strings.Contains(questionID, "suicidal") {
		return CriticalSuicidalIdeation
	}
	switch section {
	case SectionAnxiety:
		return CriticalSevereAnxiety
	case SectionLowMood:
		return CriticalSevereDepression
	}
	return CriticalSevereDistress
}
