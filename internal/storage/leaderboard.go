package storage

import (
	"fmt"
	"sync"
)

// Leaderboard is the scores store as seen by one game: fetch the top
// scores and submit a finished run. A nil store yields an empty board
// and rejects submissions without error, so play continues without a
// database.
type Leaderboard struct {
	store  *Store
	gameID string
}

// NewLeaderboard binds store to gameID. store may be nil.
func NewLeaderboard(store *Store, gameID string) *Leaderboard {
	return &Leaderboard{store: store, gameID: gameID}
}

// GameID returns the game the board belongs to.
func (l *Leaderboard) GameID() string {
	return l.gameID
}

// Available reports whether a database backs the board.
func (l *Leaderboard) Available() bool {
	return l.store != nil
}

// FetchTopScores returns up to limit entries, best first.
func (l *Leaderboard) FetchTopScores(limit int) ([]ScoreEntry, error) {
	if l.store == nil {
		return nil, nil
	}
	return l.store.TopScores(l.gameID, limit)
}

// SubmitScore stores a finished run and reports whether it was saved.
func (l *Leaderboard) SubmitScore(name string, score int, stats map[string]int) (bool, error) {
	if l.store == nil {
		return false, nil
	}
	if _, err := l.store.SaveScore(l.gameID, name, score, stats); err != nil {
		return false, err
	}
	return true, nil
}

// ScoreSubmitter accepts finished runs.
type ScoreSubmitter interface {
	SubmitScore(name string, score int, stats map[string]int) (bool, error)
}

// Submitter forwards at most one score per session. The platform may
// observe the same game-over state on many frames; only the first call
// for a session reaches the sink, whether it succeeds or fails.
type Submitter struct {
	mu      sync.Mutex
	sink    ScoreSubmitter
	session uint64
	done    bool
}

// NewSubmitter creates a submitter writing to sink.
func NewSubmitter(sink ScoreSubmitter) *Submitter {
	return &Submitter{sink: sink}
}

// Submit sends the score for session unless that session was already
// submitted. It reports whether this call saved the score.
func (s *Submitter) Submit(session uint64, name string, score int, stats map[string]int) (bool, error) {
	s.mu.Lock()
	if s.done && s.session == session {
		s.mu.Unlock()
		return false, nil
	}
	s.session, s.done = session, true
	s.mu.Unlock()

	if s.sink == nil {
		return false, nil
	}
	ok, err := s.sink.SubmitScore(name, score, stats)
	if err != nil {
		return false, fmt.Errorf("storage: cannot submit score for session %d: %w", session, err)
	}
	return ok, nil
}

// Submitted reports whether session has been submitted.
func (s *Submitter) Submitted(session uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done && s.session == session
}
