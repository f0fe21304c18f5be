package store

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
)

// Metadata keys.
const (
	MetaInstanceID     = "instance_id"
	MetaCatalogVersion = "catalog_version"
)

// SetMetadata upserts a key-value pair in the app_metadata table.
func (s *Store) SetMetadata(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO app_metadata (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = ?`,
		key, value, value,
	)
	return err
}

// GetMetadata returns the value for a metadata key.
// Returns empty string and nil error if the key is missing.
func (s *Store) GetMetadata(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM app_metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// EnsureInstanceID returns the instance identifier, generating and
// persisting one on first use.
func (s *Store) EnsureInstanceID() (string, error) {
	id, err := s.GetMetadata(MetaInstanceID)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	id = "curacore-" + hex.EncodeToString(b)
	if err := s.SetMetadata(MetaInstanceID, id); err != nil {
		return "", err
	}
	return id, nil
}
