package query

// State holds the per-session query state: the full item list as supplied by
// the caller, the current query text, the derived filtered list, and the
// selection cursor. It is not safe for concurrent use; the presentation
// layer must apply keystrokes and cursor moves from a single writer, in
// input order.
type State struct {
	items    []Item
	query    string
	filtered []Item
	selected int
}

// NewState copies items and starts a session with an empty query, so the
// filtered list is the full list in caller order. The cursor starts at 0, or
// -1 when there are no items.
func NewState(items []Item) *State {
	s := &State{items: make([]Item, len(items))}
	copy(s.items, items)
	s.recompute()
	return s
}

// SetQuery replaces the query text, recomputes the filtered list, and resets
// the cursor to the top (or -1 when nothing matches).
func (s *State) SetQuery(text string) {
	s.query = text
	s.recompute()
}

func (s *State) recompute() {
	s.filtered = FilterAndRank(s.items, s.query)
	if len(s.filtered) == 0 {
		s.selected = -1
		return
	}
	s.selected = 0
}

// Query returns the current query text.
func (s *State) Query() string { return s.query }

// Filtered returns the current filtered list. The slice is owned by the
// state; callers must not mutate it.
func (s *State) Filtered() []Item { return s.filtered }

// Selected returns the cursor index into Filtered, or -1 when the filtered
// list is empty.
func (s *State) Selected() int { return s.selected }

// SelectedItem returns the item under the cursor, if any.
func (s *State) SelectedItem() (Item, bool) {
	if s.selected < 0 || s.selected >= len(s.filtered) {
		return Item{}, false
	}
	return s.filtered[s.selected], true
}

// Move shifts the cursor by delta, wrapping at both ends. The filtered list
// is untouched.
func (s *State) Move(delta int) {
	s.selected = MoveSelection(s.selected, delta, len(s.filtered))
}

// Submit resolves the session against the current filtered list and cursor,
// tagging the outcome with the supplied action.
func (s *State) Submit(action Action) Outcome {
	return Submit(s.filtered, s.selected, s.query, action)
}
