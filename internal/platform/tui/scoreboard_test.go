package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func scoreboardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestScoreboardMarksPlayer(t *testing.T) {
	store := openStore(t)
	store.SaveScore(fakeGameID, "ann", 300, map[string]int{"max_level": 2})
	store.SaveScore(fakeGameID, "zed", 900, nil)

	view := NewScoreboardModel(store, "ann", 80, 24).View()
	for _, want := range []string{"*ann", "zed", "900", "best 900", "2 games"} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "*zed") {
		t.Error("only the current player's rows are marked")
	}
}

func TestScoreboardRefresh(t *testing.T) {
	store := openStore(t)
	m := NewScoreboardModel(store, "ann", 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Fatal("empty leaderboard should say so")
	}

	store.SaveScore(fakeGameID, "ann", 42, nil)
	m = scoreboardUpdate(t, m, runeKey("r"))
	if !strings.Contains(m.View(), "42") {
		t.Errorf("refresh should load the new score:\n%s", m.View())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "ann", 80, 24)
	if !strings.Contains(m.View(), "Scores are not being kept") {
		t.Errorf("view = %q", m.View())
	}
}

func TestScoreboardKeys(t *testing.T) {
	tests := []struct {
		name     string
		key      tea.KeyMsg
		back     bool
		quitting bool
	}{
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"b goes back", runeKey("b"), true, false},
		{"q quits", runeKey("q"), false, true},
		{"down scrolls", tea.KeyMsg{Type: tea.KeyDown}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := scoreboardUpdate(t, NewScoreboardModel(nil, "", 80, 24), tt.key)
			if m.IsGoingBack() != tt.back || m.IsQuitting() != tt.quitting {
				t.Errorf("back = %v, quitting = %v", m.IsGoingBack(), m.IsQuitting())
			}
		})
	}
}
