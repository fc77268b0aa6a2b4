package opencode

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// BackupInfix sits between the document filename and the timestamp in
// backup names: oh-my-opencode.json.bak.2026-01-02T15-04-05-123Z
const BackupInfix = ".bak."

var (
	// ErrNotFound means the document does not exist at the store's path.
	ErrNotFound = errors.New("config file not found")

	// ErrNoBackups means no backup of the document exists yet.
	ErrNoBackups = errors.New("no backup files found")
)

// Store handles persistence of one oh-my-opencode document. Every command
// invocation reads fresh from disk; the store keeps no document state.
type Store struct {
	path string
}

// NewStore creates a store for the document at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document's location.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the document.
func (s *Store) Load() (*Config, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", s.path, err)
	}

	return &cfg, nil
}

// Save writes the document back to disk, creating a timestamped backup first
// when the policy calls for one: force always backs up, otherwise only the
// first save of a document without an existing backup does. Returns the path
// of the backup it created, or "" when the backup was skipped.
func (s *Store) Save(cfg *Config, forceBackup bool) (string, error) {
	backupPath := ""
	if forceBackup || !s.HasBackup() {
		// Only an existing live file can be backed up
		if _, err := os.Stat(s.path); err == nil {
			backupPath = s.path + BackupInfix + BackupTimestamp(time.Now())
			if err := copyFile(s.path, backupPath); err != nil {
				return "", fmt.Errorf("failed to create backup at %s: %w", backupPath, err)
			}
		}
	}

	data, err := cfg.Encode()
	if err != nil {
		return backupPath, err
	}

	// Write to temp file first, then rename over the live path
	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return backupPath, fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return backupPath, fmt.Errorf("failed to write config file: %w", err)
	}

	return backupPath, nil
}

// HasBackup reports whether any backup of this document exists alongside it.
func (s *Store) HasBackup() bool {
	backups, err := s.ListBackups()
	return err == nil && len(backups) > 0
}

// ListBackups returns the paths of this document's backups, sorted lexically.
// The timestamp format makes lexical order chronological order.
func (s *Store) ListBackups() ([]string, error) {
	dir := filepath.Dir(s.path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	prefix := filepath.Base(s.path) + BackupInfix
	backups := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			backups = append(backups, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(backups)
	return backups, nil
}

// LatestBackup returns the most recent backup of the document.
func (s *Store) LatestBackup() (string, error) {
	backups, err := s.ListBackups()
	if err != nil {
		return "", err
	}
	if len(backups) == 0 {
		return "", ErrNoBackups
	}
	return backups[len(backups)-1], nil
}

// Restore copies the chosen backup over the live document. The backup file
// itself is never touched.
func (s *Store) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	if err := copyFile(backupPath, s.path); err != nil {
		return fmt.Errorf("failed to restore from backup %s: %w", backupPath, err)
	}

	return nil
}

// BackupTimestamp formats t the way backup filenames embed it: UTC at
// millisecond precision, dashes instead of colons so the name is portable,
// lexically sortable.
func BackupTimestamp(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s-%03dZ", t.Format("2006-01-02T15-04-05"), t.Nanosecond()/int(time.Millisecond))
}

// copyFile writes an independent copy of src at dst.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
