package quiz

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AnswerKind discriminates the variants an answer value can take on
// the wire: boolean, free text, number, or a list of strings.
type AnswerKind int

const (
	KindBool AnswerKind = iota
	KindText
	KindNumber
	KindList
)

// Answer is a tagged answer value. Scoring dispatches on the owning
// question's type, never on the answer's kind, so any kind may be
// submitted for any question; mismatches simply score zero.
type Answer struct {
	Kind   AnswerKind
	Bool   bool
	Text   string
	Number float64
	List   []string
}

// BoolAnswer wraps a yes/no value.
func BoolAnswer(v bool) Answer { return Answer{Kind: KindBool, Bool: v} }

// TextAnswer wraps a single textual answer.
func TextAnswer(s string) Answer { return Answer{Kind: KindText, Text: s} }

// NumberAnswer wraps a numeric answer.
func NumberAnswer(n float64) Answer { return Answer{Kind: KindNumber, Number: n} }

// ListAnswer wraps a multi-select answer.
func ListAnswer(items ...string) Answer { return Answer{Kind: KindList, List: items} }

// Truthy reports whether the answer counts as an affirmative for
// yes_no scoring and for the critical-response registry.
func (a Answer) Truthy() bool {
	switch a.Kind {
	case KindBool:
		return a.Bool
	case KindText:
		switch strings.ToLower(strings.TrimSpace(a.Text)) {
		case "yes", "true", "y":
			return true
		}
		return false
	case KindNumber:
		return a.Number != 0
	}
	return false
}

// String renders the answer as text for the choice-scoring substring
// heuristic and for literal comparisons in the critical registry.
func (a Answer) String() string {
	switch a.Kind {
	case KindBool:
		if a.Bool {
			return "yes"
		}
		return "no"
	case KindText:
		return a.Text
	case KindNumber:
		return strconv.FormatFloat(a.Number, 'f', -1, 64)
	case KindList:
		return strings.Join(a.List, ", ")
	}
	return ""
}

// MarshalJSON emits the bare variant value, matching what the SPA
// submits: true, "Often", 3, or ["Exams", "Other"].
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case KindBool:
		return json.Marshal(a.Bool)
	case KindText:
		return json.Marshal(a.Text)
	case KindNumber:
		return json.Marshal(a.Number)
	case KindList:
		if a.List == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(a.List)
	}
	return nil, fmt.Errorf("unknown answer kind %d", a.Kind)
}

// UnmarshalJSON accepts any of the four variant shapes.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*a = BoolAnswer(b)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = NumberAnswer(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = TextAnswer(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = Answer{Kind: KindList, List: list}
		return nil
	}
	return fmt.Errorf("answer must be a boolean, string, number, or string list: %s", data)
}
