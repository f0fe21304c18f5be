package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/curacore/curacore/internal/model"
)

// SaveQuizState upserts the serialized navigator state for an in-progress assessment.
func (s *Store) SaveQuizState(quizID string, userID int64, state []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO quiz_sessions (quiz_id, user_id, state, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(quiz_id) DO UPDATE SET state = ?, updated_at = ?`,
		quizID, userID, string(state), time.Now(), string(state), time.Now(),
	)
	return err
}

// GetQuizState returns the serialized state for a quiz, or nil if not found.
func (s *Store) GetQuizState(quizID string) ([]byte, int64, error) {
	var state string
	var userID int64
	err := s.db.QueryRow(
		`SELECT state, user_id FROM quiz_sessions WHERE quiz_id = ?`, quizID,
	).Scan(&state, &userID)
	if err == sql.ErrNoRows {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	return []byte(state), userID, nil
}

// DeleteQuizState removes an in-progress assessment.
func (s *Store) DeleteQuizState(quizID string) error {
	_, err := s.db.Exec(`DELETE FROM quiz_sessions WHERE quiz_id = ?`, quizID)
	return err
}

// InsertQuizResult stores a completed assessment.
func (s *Store) InsertQuizResult(r model.QuizResult) (int64, error) {
	concerns, err := json.Marshal(r.MainConcerns)
	if err != nil {
		return 0, err
	}
	basicInfo, err := json.Marshal(r.BasicInfo)
	if err != nil {
		return 0, err
	}
	scores := r.Scores
	if len(scores) == 0 {
		scores = []byte("[]")
	}
	completedAt := r.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}
	res, err := s.db.Exec(
		`INSERT INTO quiz_results (quiz_id, user_id, main_concerns, scores, overall_severity, critical_flag, critical_type, suggested_mood, basic_info, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.QuizID, r.UserID, string(concerns), string(scores), r.OverallSeverity,
		r.CriticalFlag, r.CriticalType, r.SuggestedMood, string(basicInfo), completedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuizResult(rows scanner) (model.QuizResult, error) {
	var r model.QuizResult
	var concerns, scores, basicInfo string
	err := rows.Scan(&r.ID, &r.QuizID, &r.UserID, &concerns, &scores, &r.OverallSeverity,
		&r.CriticalFlag, &r.CriticalType, &r.SuggestedMood, &basicInfo, &r.CompletedAt)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal([]byte(concerns), &r.MainConcerns); err != nil {
		return r, err
	}
	if err := json.Unmarshal([]byte(basicInfo), &r.BasicInfo); err != nil {
		return r, err
	}
	r.Scores = []byte(scores)
	return r, nil
}

const quizResultColumns = `id, quiz_id, user_id, main_concerns, scores, overall_severity, critical_flag, critical_type, suggested_mood, basic_info, completed_at`

// LatestQuizResult returns the most recent completed assessment for a user, or nil.
func (s *Store) LatestQuizResult(userID int64) (*model.QuizResult, error) {
	row := s.db.QueryRow(
		`SELECT `+quizResultColumns+` FROM quiz_results WHERE user_id = ? ORDER BY id DESC LIMIT 1`, userID,
	)
	r, err := scanQuizResult(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// QuizHistory returns all completed assessments for a user, newest first.
func (s *Store) QuizHistory(userID int64) ([]model.QuizResult, error) {
	rows, err := s.db.Query(
		`SELECT `+quizResultColumns+` FROM quiz_results WHERE user_id = ? ORDER BY id DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var results []model.QuizResult
	for rows.Next() {
		r, err := scanQuizResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ListCriticalResults returns all assessments with the critical flag set, newest first.
func (s *Store) ListCriticalResults() ([]model.QuizResult, error) {
	rows, err := s.db.Query(
		`SELECT ` + quizResultColumns + ` FROM quiz_results WHERE critical_flag = 1 ORDER BY id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var results []model.QuizResult
	for rows.Next() {
		r, err := scanQuizResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ListAllQuizResults returns every completed assessment, newest first.
func (s *Store) ListAllQuizResults() ([]model.QuizResult, error) {
	rows, err := s.db.Query(`SELECT ` + quizResultColumns + ` FROM quiz_results ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var results []model.QuizResult
	for rows.Next() {
		r, err := scanQuizResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
