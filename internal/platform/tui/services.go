package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catcher-arcade/internal/profile"
	"github.com/vovakirdan/catcher-arcade/internal/storage"
)

// Services are the collaborators shared by every screen of a session.
// Any of them may be nil: without a store scores are not kept, without a
// profile the player name is not remembered.
type Services struct {
	Store   *storage.Store
	Profile *profile.Manager
	Logger  *log.Logger
}

func (s Services) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// rememberName stores name in the profile, if there is one.
func (s Services) rememberName(name string) {
	if s.Profile == nil {
		return
	}
	if err := s.Profile.SetName(name); err != nil {
		s.logger().Warn("could not save player name", "error", err)
	}
}
