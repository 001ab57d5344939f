// Package jsonfile persists user preferences in a single JSON document.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/colonyops/hrevu/internal/core/styles"
)

// ThemeKey is the preference key holding the theme name.
const ThemeKey = "hrevu-theme"

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("preference not found")

// PrefsFile is the root JSON structure stored on disk.
type PrefsFile struct {
	Values map[string]json.RawMessage `json:"values"`
}

// PrefsStore is a key/value preference store backed by a JSON file. Every
// call reads the file, so edits made by other processes are picked up.
type PrefsStore struct {
	path string
	mu   sync.RWMutex
}

// NewPrefsStore creates a store at the given path. The file is created on
// the first write.
func NewPrefsStore(path string) *PrefsStore {
	return &PrefsStore{path: path}
}

// Get decodes the value stored under key into dest.
func (s *PrefsStore) Get(key string, dest any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return err
	}

	raw, ok := file.Values[key]
	if !ok {
		return fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode preference %s: %w", key, err)
	}
	return nil
}

// Set stores value under key.
func (s *PrefsStore) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode preference %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}
	if file.Values == nil {
		file.Values = make(map[string]json.RawMessage)
	}
	file.Values[key] = data

	return s.save(file)
}

// Theme returns the stored theme. ok is false when nothing usable is
// stored: a missing key, an unreadable file, or an unknown theme name.
func (s *PrefsStore) Theme() (theme string, ok bool) {
	if err := s.Get(ThemeKey, &theme); err != nil {
		return "", false
	}
	if _, known := styles.GetPalette(theme); !known {
		return "", false
	}
	return theme, true
}

// SaveTheme stores the theme name.
func (s *PrefsStore) SaveTheme(theme string) error {
	return s.Set(ThemeKey, theme)
}

// load reads the preferences file from disk.
// Returns an empty PrefsFile if the file doesn't exist.
func (s *PrefsStore) load() (PrefsFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return PrefsFile{}, nil
		}
		return PrefsFile{}, fmt.Errorf("read preferences: %w", err)
	}

	if len(data) == 0 {
		return PrefsFile{}, nil
	}

	var file PrefsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return PrefsFile{}, fmt.Errorf("parse preferences %s: %w", s.path, err)
	}

	return file, nil
}

// save writes the preferences file to disk atomically.
func (s *PrefsStore) save(file PrefsFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
