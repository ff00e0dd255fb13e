package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

func openTestData(t *testing.T) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("catcher_profile_test_%d", time.Now().UnixNano())
	data, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return data
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"ann", "ann", true},
		{"  ann  ", "ann", true},
		{"", "", false},
		{"   ", "", false},
		{"a\tb\x1bc", "abc", true},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnop", true},
		{"ёжикёжикёжикёжикёжик", "ёжикёжикёжикёжик", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeName(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("NormalizeName(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestManagerInMemory(t *testing.T) {
	m, err := NewManager(nil)
	if err != nil {
		t.Fatalf("NewManager(nil) error = %v", err)
	}
	if m.Name() != "" {
		t.Errorf("Name() = %q, expected empty", m.Name())
	}
	if err := m.SetName("ann"); err != nil {
		t.Fatalf("SetName() error = %v", err)
	}
	if m.Name() != "ann" {
		t.Errorf("Name() = %q", m.Name())
	}
	if err := m.SetName("  "); err == nil {
		t.Error("expected an error for a blank name")
	}
	if m.Name() != "ann" {
		t.Error("rejected name must not replace the current one")
	}
}

func TestManagerPersists(t *testing.T) {
	data := openTestData(t)

	m, err := NewManager(data)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if err := m.SetName("ann"); err != nil {
		t.Fatalf("SetName() error = %v", err)
	}
	m.RecordGame(300)
	m.RecordGame(100)

	again, err := NewManager(data)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	p := again.Profile()
	if p.Name != "ann" || p.GamesPlayed != 2 || p.BestScore != 300 {
		t.Errorf("Profile() = %+v", p)
	}

	if err := again.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	cleared, _ := NewManager(data)
	if cleared.Name() != "" {
		t.Errorf("Name() after clear = %q", cleared.Name())
	}
}
