package emotion

import "strings"

// Crisis categories.
const (
	CrisisSuicide        = "suicide"
	CrisisSelfHarm       = "self_harm"
	CrisisViolence       = "violence"
	CrisisSevereDistress = "severe_distress"
)

// Crisis severities.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// crisisKeywords is checked in a fixed order so suicide phrasing wins
// over the broader distress category.
var crisisCategories = []struct {
	name     string
	keywords []string
}{
	{CrisisSuicide, []string{
		"suicide", "kill myself", "end my life", "want to die", "better off dead",
		"not worth living", "end it all", "take my own life",
	}},
	{CrisisSelfHarm, []string{
		"cut myself", "hurt myself", "self harm", "self-harm", "harm myself",
		"cut my", "razor", "blade",
	}},
	{CrisisViolence, []string{
		"kill someone", "hurt someone", "murder", "violence", "weapon",
		"gun", "knife", "attack",
	}},
	{CrisisSevereDistress, []string{
		"can't take it", "give up", "hopeless", "no point", "worthless",
		"hate myself", "nobody cares",
	}},
}

// CrisisInfo describes a detected crisis situation in a message.
type CrisisInfo struct {
	Detected              bool   `json:"crisis_detected"`
	Type                  string `json:"crisis_type,omitempty"`
	Severity              string `json:"severity"`
	RequiresImmediateHelp bool   `json:"requires_immediate_help"`
}

// DetectCrisis scans a message for crisis language. The first matching
// category wins.
func DetectCrisis(message string) CrisisInfo {
	lower := strings.ToLower(message)
	for _, cat := range crisisCategories {
		for _, kw := range cat.keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			severity := SeverityMedium
			if cat.name != CrisisSevereDistress {
				severity = SeverityHigh
			}
			return CrisisInfo{
				Detected:              true,
				Type:                  cat.name,
				Severity:              severity,
				RequiresImmediateHelp: severity == SeverityHigh,
			}
		}
	}
	return CrisisInfo{Severity: SeverityLow}
}
