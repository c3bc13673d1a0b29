// Package launcher owns the show-to-close lifecycle of one query session.
// A Session is constructed per show and discarded on close; there is no
// ambient shared controller. The outcome is delivered once on a channel so
// callers can either select on it or block with a waiting helper.
package launcher

import (
	"context"
	"sync"

	"quickbar/internal/query"
)

// Session holds one launcher interaction: the item list copy, the query
// state, and the single terminal outcome.
type Session struct {
	state *query.State

	mu       sync.Mutex
	visible  bool
	resolved bool
	outcome  chan query.Outcome
}

// NewSession starts a session over a copy of items. The session is visible
// until it resolves.
func NewSession(items []query.Item) *Session {
	return &Session{
		state:   query.NewState(items),
		visible: true,
		outcome: make(chan query.Outcome, 1),
	}
}

// State exposes the session's query state for the presentation layer. The
// single-writer rule applies: only one input source may drive it.
func (s *Session) State() *query.State {
	return s.state
}

// Outcome returns the channel the terminal outcome is delivered on. It
// receives exactly one value.
func (s *Session) Outcome() <-chan query.Outcome {
	return s.outcome
}

// Resolve records the terminal outcome. Only the first call wins; later
// calls (a stray escape after submit, an external hide racing a keystroke)
// are ignored.
func (s *Session) Resolve(out query.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolved {
		return
	}
	s.resolved = true
	s.visible = false
	s.outcome <- out
}

// Hide dismisses the session programmatically, as if the user pressed
// escape.
func (s *Session) Hide() {
	s.Resolve(query.Outcome{Action: query.ActionDismissed})
}

// Visible reports whether the session is still showing.
func (s *Session) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Wait blocks until the session resolves or ctx is done. Context expiry
// hides the session and returns the dismissed outcome.
func (s *Session) Wait(ctx context.Context) query.Outcome {
	select {
	case out := <-s.outcome:
		return out
	case <-ctx.Done():
		s.Hide()
		// Resolve buffered the dismissal unless a submit won the race.
		return <-s.outcome
	}
}
