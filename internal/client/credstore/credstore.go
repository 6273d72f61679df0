// Package credstore persists the session credential (bearer token plus
// serialized user profile) across restarts of the client.
package credstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

// formatVersion tags the on-disk document so a future shape change can be
// detected instead of silently misparsed.
const formatVersion = 1

// document is the on-disk projection of the session: the two fixed keys
// plus a format tag. The profile is kept as a raw blob so a profile that
// no longer parses can be detected and healed on load.
type document struct {
	Version int             `json:"version"`
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
}

// Store reads and writes the credential document at a fixed path.
// The session manager is its only caller; UI code and API endpoints must
// never touch it directly.
type Store struct {
	path string
}

// New returns a Store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the stored credential. ok is false when nothing usable is
// stored: the file is missing, either key is empty, the format version is
// unknown, or the profile blob does not parse. Every one of those except
// a plain missing file also clears the store, so a corrupted document can
// never leave a live token behind with no usable identity.
func (s *Store) Load() (token string, profile *models.UserProfile, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, false, nil
		}
		return "", nil, false, fmt.Errorf("read credentials: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", nil, false, s.Clear()
	}
	if doc.Version != formatVersion || doc.Token == "" || len(doc.User) == 0 {
		return "", nil, false, s.Clear()
	}

	var user models.UserProfile
	if err := json.Unmarshal(doc.User, &user); err != nil {
		return "", nil, false, s.Clear()
	}

	return doc.Token, &user, true, nil
}

// Save writes the token and profile as one document, atomically replacing
// any previous one.
func (s *Store) Save(token string, profile *models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	data, err := json.Marshal(document{Version: formatVersion, Token: token, User: raw})
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a torn document.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace credentials: %w", err)
	}
	return nil
}

// Clear removes the stored credential. A missing file is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
