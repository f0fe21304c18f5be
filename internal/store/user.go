package store

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/curacore/curacore/internal/model"
)

// CreateUser inserts a new user.
func (s *Store) CreateUser(u model.User) (int64, error) {
	badges, err := json.Marshal(u.Badges)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	joinDate := u.JoinDate
	if joinDate.IsZero() {
		joinDate = now
	}
	res, err := s.db.Exec(
		`INSERT INTO users (name, email, password_hash, role, active, streak, badges, join_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Name, u.Email, u.PasswordHash, u.Role, u.Active, u.Streak, string(badges), joinDate, now,
	)
	if err != nil {
		slog.Error("failed to create user", "email", u.Email, "error", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	slog.Info("created user", "id", id, "email", u.Email, "role", u.Role)
	return id, nil
}

func scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	var badges string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Active, &u.Streak, &badges, &u.JoinDate, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(badges), &u.Badges); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail returns a user by email, or nil if not found.
func (s *Store) GetUserByEmail(email string) (*model.User, error) {
	return scanUser(s.db.QueryRow(
		`SELECT id, name, email, password_hash, role, active, streak, badges, join_date, created_at
		 FROM users WHERE email = ?`, email,
	))
}

// GetUserByID returns a user by ID, or nil if not found.
func (s *Store) GetUserByID(id int64) (*model.User, error) {
	return scanUser(s.db.QueryRow(
		`SELECT id, name, email, password_hash, role, active, streak, badges, join_date, created_at
		 FROM users WHERE id = ?`, id,
	))
}

// ListUsers returns all users.
func (s *Store) ListUsers() ([]model.User, error) {
	rows, err := s.db.Query(
		`SELECT id, name, email, password_hash, role, active, streak, badges, join_date, created_at
		 FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []model.User
	for rows.Next() {
		var u model.User
		var badges string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Active, &u.Streak, &badges, &u.JoinDate, &u.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(badges), &u.Badges); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ToggleUserActive flips the active flag on a user.
func (s *Store) ToggleUserActive(id int64) error {
	_, err := s.db.Exec(`UPDATE users SET active = NOT active WHERE id = ?`, id)
	return err
}

// UpdateStreak sets a user's check-in streak.
func (s *Store) UpdateStreak(id int64, streak int) error {
	_, err := s.db.Exec(`UPDATE users SET streak = ? WHERE id = ?`, streak, id)
	return err
}

// AddBadge appends a badge to a user's badge list if not already present.
func (s *Store) AddBadge(id int64, badge string) error {
	u, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return sql.ErrNoRows
	}
	for _, b := range u.Badges {
		if b == badge {
			return nil
		}
	}
	badges, err := json.Marshal(append(u.Badges, badge))
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`UPDATE users SET badges = ? WHERE id = ?`, string(badges), id)
	return err
}

// UserCount returns the total number of users.
func (s *Store) UserCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
