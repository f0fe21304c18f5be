package store

import (
	"time"

	"github.com/curacore/curacore/internal/model"
)

// AddMoodEntry records a mood check-in.
func (s *Store) AddMoodEntry(e model.MoodEntry) (int64, error) {
	source := e.Source
	if source == "" {
		source = model.MoodSourceManual
	}
	res, err := s.db.Exec(
		`INSERT INTO mood_entries (user_id, mood, note, source, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.UserID, e.Mood, e.Note, source, time.Now(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// MoodHistory returns the most recent mood entries for a user, newest first.
// A limit of 0 returns everything.
func (s *Store) MoodHistory(userID int64, limit int) ([]model.MoodEntry, error) {
	query := `SELECT id, user_id, mood, note, source, created_at FROM mood_entries WHERE user_id = ? ORDER BY id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []model.MoodEntry
	for rows.Next() {
		var e model.MoodEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Mood, &e.Note, &e.Source, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// MoodCounts returns how often each mood was recorded for a user.
func (s *Store) MoodCounts(userID int64) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT mood, COUNT(*) FROM mood_entries WHERE user_id = ? GROUP BY mood`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var mood string
		var n int
		if err := rows.Scan(&mood, &n); err != nil {
			return nil, err
		}
		counts[mood] = n
	}
	return counts, rows.Err()
}
