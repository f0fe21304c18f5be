package model

import "time"

// ResultsExport is the top-level JSON structure for assessment export.
type ResultsExport struct {
	InstanceID     string       `json:"instance_id"`
	CatalogVersion string       `json:"catalog_version"`
	Date           string       `json:"date"`
	NumResults     int          `json:"num_results"`
	Results        []UserResult `json:"results"`
}

// UserResult holds one user's completed assessment for export.
type UserResult struct {
	Email           string          `json:"email"`
	Name            string          `json:"name"`
	QuizID          string          `json:"quiz_id"`
	MainConcerns    []string        `json:"main_concerns"`
	Scores          []ConcernExport `json:"scores"`
	OverallSeverity string          `json:"overall_severity"`
	CriticalFlag    bool            `json:"critical_flag"`
	CriticalType    string          `json:"critical_type,omitempty"`
	CompletedAt     time.Time       `json:"completed_at"`
}

// ConcernExport holds per-concern score data for export.
type ConcernExport struct {
	Concern         string   `json:"concern"`
	Score           int      `json:"score"`
	Severity        string   `json:"severity"`
	Recommendations []string `json:"recommendations"`
}
