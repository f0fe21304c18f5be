package store

import (
	"encoding/json"
	"time"

	"github.com/curacore/curacore/internal/model"
)

// AddChatEntry stores one user/bot exchange.
func (s *Store) AddChatEntry(e model.ChatEntry) (int64, error) {
	scores, err := json.Marshal(e.EmotionScores)
	if err != nil {
		return 0, err
	}
	res, err := s.db.Exec(
		`INSERT INTO chat_log (user_id, user_message, bot_response, mood, detected_emotion, emotion_scores, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.UserID, e.UserMessage, e.BotResponse, e.Mood, e.DetectedEmotion, string(scores), time.Now(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ChatHistory returns the most recent chat entries for a user, oldest first.
// A limit of 0 returns everything.
func (s *Store) ChatHistory(userID int64, limit int) ([]model.ChatEntry, error) {
	query := `SELECT id, user_id, user_message, bot_response, mood, detected_emotion, emotion_scores, created_at
	          FROM chat_log WHERE user_id = ? ORDER BY id`
	args := []any{userID}
	if limit > 0 {
		query = `SELECT id, user_id, user_message, bot_response, mood, detected_emotion, emotion_scores, created_at
		         FROM (SELECT * FROM chat_log WHERE user_id = ? ORDER BY id DESC LIMIT ?) ORDER BY id`
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []model.ChatEntry
	for rows.Next() {
		var e model.ChatEntry
		var scores string
		if err := rows.Scan(&e.ID, &e.UserID, &e.UserMessage, &e.BotResponse, &e.Mood, &e.DetectedEmotion, &scores, &e.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(scores), &e.EmotionScores); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ChatEntryCount returns the number of chat exchanges for a user.
func (s *Store) ChatEntryCount(userID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM chat_log WHERE user_id = ?`, userID).Scan(&count)
	return count, err
}
