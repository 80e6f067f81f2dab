// Package settings holds the site-wide theme preference as explicit
// process-local state: loaded from a JSON file at startup, written back on
// every change.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Themes the portfolio understands.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings is the persisted shape of the settings file.
type Settings struct {
	Theme string `json:"theme"`
}

// Store guards the current settings and their on-disk copy.
type Store struct {
	mu   sync.Mutex
	path string
	cur  Settings
}

// NewStore loads the settings file at path. A missing file is not an error:
// the store starts with the dark theme and creates the file on first change.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, cur: Settings{Theme: ThemeDark}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	if !validTheme(loaded.Theme) {
		return nil, fmt.Errorf("settings %s: unknown theme %q", path, loaded.Theme)
	}

	s.cur = loaded
	return s, nil
}

// Theme returns the current theme.
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Theme
}

// SetTheme validates, persists and applies a new theme.
func (s *Store) SetTheme(theme string) error {
	if !validTheme(theme) {
		return fmt.Errorf("unknown theme %q", theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := Settings{Theme: theme}
	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings %s: %w", s.path, err)
	}

	s.cur = next
	return nil
}

func validTheme(theme string) bool {
	return theme == ThemeDark || theme == ThemeLight
}
