package store

import (
	"encoding/json"
	"fmt"

	"github.com/curacore/curacore/internal/model"
)

// ExportAllResults builds export-ready assessment results for every user.
func (s *Store) ExportAllResults() ([]model.UserResult, error) {
	results, err := s.ListAllQuizResults()
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	var out []model.UserResult
	for _, r := range results {
		user, err := s.GetUserByID(r.UserID)
		if err != nil {
			return nil, fmt.Errorf("get user %d: %w", r.UserID, err)
		}

		var email, name string
		if user != nil {
			email = user.Email
			name = user.Name
		}

		var scores []model.ConcernExport
		if len(r.Scores) > 0 {
			if err := json.Unmarshal(r.Scores, &scores); err != nil {
				return nil, fmt.Errorf("decode scores for %s: %w", r.QuizID, err)
			}
		}

		out = append(out, model.UserResult{
			Email:           email,
			Name:            name,
			QuizID:          r.QuizID,
			MainConcerns:    r.MainConcerns,
			Scores:          scores,
			OverallSeverity: r.OverallSeverity,
			CriticalFlag:    r.CriticalFlag,
			CriticalType:    r.CriticalType,
			CompletedAt:     r.CompletedAt,
		})
	}

	return out, nil
}
