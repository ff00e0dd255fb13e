// Package profile remembers the player between runs. Data lives in the
// per-user application data directory managed by gdata, encoded as YAML.
package profile

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName names the application data directory.
const AppName = "catcher_arcade"

// MaxNameLen is the longest accepted player name, in runes.
const MaxNameLen = 16

const (
	profileObject   = "profile"
	profileProperty = "player"
)

// Profile is the persisted player record.
type Profile struct {
	Name        string `yaml:"name"`
	GamesPlayed int    `yaml:"games_played"`
	BestScore   int    `yaml:"best_score"`
}

// Manager loads and saves the profile. A Manager without a gdata backend
// keeps the profile in memory only.
type Manager struct {
	data    *gdata.Manager
	profile Profile
}

// Open opens the profile store for appName. When the data directory is
// unavailable the returned Manager works in memory and err explains why.
func Open(appName string) (*Manager, error) {
	data, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Manager{}, fmt.Errorf("profile: cannot open data dir: %w", err)
	}
	return NewManager(data)
}

// NewManager wraps an opened gdata manager and loads the saved profile.
// data may be nil.
func NewManager(data *gdata.Manager) (*Manager, error) {
	m := &Manager{data: data}
	return m, m.Load()
}

// Load reads the saved profile. A missing profile is not an error.
func (m *Manager) Load() error {
	m.profile = Profile{}
	if m.data == nil || !m.data.ObjectPropExists(profileObject, profileProperty) {
		return nil
	}

	raw, err := m.data.LoadObjectProp(profileObject, profileProperty)
	if err != nil {
		return fmt.Errorf("profile: cannot load: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("profile: cannot parse: %w", err)
	}
	p.Name, _ = NormalizeName(p.Name)
	m.profile = p
	return nil
}

// Save writes the profile.
func (m *Manager) Save() error {
	if m.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(m.profile)
	if err != nil {
		return fmt.Errorf("profile: cannot encode: %w", err)
	}
	if err := m.data.SaveObjectProp(profileObject, profileProperty, raw); err != nil {
		return fmt.Errorf("profile: cannot save: %w", err)
	}
	return nil
}

// Profile returns a copy of the current profile.
func (m *Manager) Profile() Profile {
	return m.profile
}

// Name returns the remembered player name, or "" if none.
func (m *Manager) Name() string {
	return m.profile.Name
}

// SetName normalizes and stores name. An empty name is rejected.
func (m *Manager) SetName(name string) error {
	n, ok := NormalizeName(name)
	if !ok {
		return fmt.Errorf("profile: invalid player name %q", name)
	}
	m.profile.Name = n
	return m.Save()
}

// Clear forgets the player and their totals.
func (m *Manager) Clear() error {
	m.profile = Profile{}
	return m.Save()
}

// RecordGame counts a finished game and keeps the best score.
func (m *Manager) RecordGame(score int) error {
	m.profile.GamesPlayed++
	m.profile.BestScore = max(m.profile.BestScore, score)
	return m.Save()
}

// NormalizeName trims name, drops control characters and truncates it
// to MaxNameLen runes. It reports false when nothing usable is left.
func NormalizeName(name string) (string, bool) {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLen]))
	}
	return name, name != ""
}
