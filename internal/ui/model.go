// Package ui renders one launcher session as a Bubble Tea program: a
// centered modal with a search box and the filtered result list, painted
// over a dimmed scrim. All filtering and cursor logic lives in
// internal/query; this package only translates key events into state calls
// and draws the result.
package ui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quickbar/internal/debug"
	"quickbar/internal/launcher"
	"quickbar/internal/query"
)

// Options tune the launcher presentation.
type Options struct {
	Placeholder string
	MaxResults  int
}

// Model drives one session. It is the session state's single writer; every
// keystroke and cursor move is applied synchronously, in event order.
type Model struct {
	sess  *launcher.Session
	input textinput.Model
	keys  KeyMap

	maxResults int
	width      int
	height     int
	ready      bool
}

// New builds the model for a session.
func New(sess *launcher.Session, opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.Prompt = stylePrompt.Render("› ")
	ti.CharLimit = 200
	ti.Focus()

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = 8
	}

	return &Model{
		sess:       sess,
		input:      ti,
		keys:       DefaultKeyMap(),
		maxResults: maxResults,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.modalInnerWidth() - 2
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		state := m.sess.State()
		switch {
		case key.Matches(msg, m.keys.Escape):
			m.sess.Hide()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			state.Move(-1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			state.Move(1)
			return m, nil

		case key.Matches(msg, m.keys.Cmd):
			return m.resolve(query.ActionCommand)

		case key.Matches(msg, m.keys.Opt):
			return m.resolve(query.ActionOption)

		case key.Matches(msg, m.keys.Submit):
			return m.resolve(query.ActionSubmitted)

		case key.Matches(msg, m.keys.Copy):
			if item, ok := state.SelectedItem(); ok {
				if err := clipboard.WriteAll(item.Title); err != nil {
					debug.Logf("copy to clipboard: %v", err)
				}
			}
			return m, nil
		}

		// Everything else edits the query.
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			state.SetQuery(after)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) resolve(action query.Action) (tea.Model, tea.Cmd) {
	out := m.sess.State().Submit(action)
	debug.Logf("session resolved: action=%s query=%q", out.Action, out.Query)
	m.sess.Resolve(out)
	return m, tea.Quit
}

// Run shows the launcher and blocks until the session resolves. It is the
// waiting helper over the session's outcome channel; callers that want the
// non-blocking form start their own program and select on Session.Outcome.
func Run(ctx context.Context, sess *launcher.Session, opts Options) (query.Outcome, error) {
	p := tea.NewProgram(New(sess, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		sess.Hide()
		return <-sess.Outcome(), err
	}
	// The program can exit without resolving (context cancellation);
	// treat that as an external hide.
	sess.Hide()
	return <-sess.Outcome(), nil
}
