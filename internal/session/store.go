// Package session keeps one slideshow per viewer, addressed by a UUID.
package session

import (
	"context"
	"errors"

	"github.com/gmkornilov/crazymoves-backend/pkg/sequence"
	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Command runs against a session's slideshow and returns the resulting view.
type Command func(show *sequence.Slideshow) (sequence.View, error)

// Store creates slideshows and applies commands to them one at a time per session.
type Store interface {
	// Create starts a new slideshow (the page-load event) and returns its id.
	Create(ctx context.Context) (string, sequence.View, error)

	// Apply runs cmd under the session's lock. State changes are kept only
	// when cmd succeeds.
	Apply(ctx context.Context, id string, cmd Command) (sequence.View, error)

	Close() error
}

func newID() string {
	return uuid.New().String()
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// View is a read-only command.
func View(show *sequence.Slideshow) (sequence.View, error) {
	return show.View(), nil
}

func Reveal(show *sequence.Slideshow) (sequence.View, error) {
	return show.OnRevealAnswer(), nil
}

func Next(show *sequence.Slideshow) (sequence.View, error) {
	return show.OnNext(), nil
}

func Unlock(show *sequence.Slideshow) (sequence.View, error) {
	return show.OnUnlockNext()
}
