// Package query implements the launcher's filter, rank, and selection core:
// tiered matching of a typed query against candidate items, score-ordered
// results, and a wrapping selection cursor. The logic is synchronous and
// allocation-light; callers recompute on every keystroke.
package query

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Item is one candidate entry in the launcher list. Items are supplied once
// per session and never mutated. Icon is an opaque display hint; matching
// only ever looks at Title and Subtitle.
type Item struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

// Action classifies how a session ended.
type Action int

const (
	ActionDismissed Action = iota
	ActionSubmitted
	ActionCommand // modifier-qualified submit (alt+enter)
	ActionOption  // modifier-qualified submit (ctrl+o)
)

// String returns the machine-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionSubmitted:
		return "submitted"
	case ActionCommand:
		return "command"
	case ActionOption:
		return "option"
	default:
		return "dismissed"
	}
}

// Outcome is the terminal result of a session. Item is nil when the session
// resolved without a selection; Query is empty when the input was blank or
// whitespace-only.
type Outcome struct {
	Action Action
	Query  string
	Item   *Item
}

// Scoring constants. Prefix hits outrank substring hits outrank subsequence
// hits; within the first two tiers shorter text wins. The length penalty is
// intentionally unclamped, so titles longer than 100 runes score below the
// tier base but keep their relative order.
const (
	prefixBase     = 1000
	substringBase  = 500
	lengthBonus    = 100
	subseqHit      = 10
	subseqRunBonus = 5
)

// Match reports whether query matches text and with what score. Matching is
// case-insensitive. An empty query always matches with score 0.
func Match(query, text string) (bool, int) {
	if query == "" {
		return true, 0
	}
	q := strings.ToLower(query)
	t := strings.ToLower(text)
	if strings.HasPrefix(t, q) {
		return true, prefixBase + lengthBonus - utf8.RuneCountInString(t)
	}
	if strings.Contains(t, q) {
		return true, substringBase + lengthBonus - utf8.RuneCountInString(t)
	}
	return matchSubsequence(q, t)
}

// matchSubsequence walks text once, consuming query characters in order.
// Every hit scores 10 plus a run bonus that grows by 5 per consecutive hit
// and resets on any miss. The match fails unless the whole query is consumed.
func matchSubsequence(query, text string) (bool, int) {
	runes := []rune(query)
	score := 0
	runBonus := 0
	next := 0
	for _, r := range text {
		if next < len(runes) && r == runes[next] {
			score += subseqHit + runBonus
			runBonus += subseqRunBonus
			next++
			continue
		}
		runBonus = 0
	}
	if next != len(runes) {
		return false, 0
	}
	return true, score
}

// FilterAndRank returns the items matching query, ordered best-first. An
// item's score is the better of its title and subtitle matches. The input
// slice is never mutated.
//
// An empty query is a distinct path: every item is included in caller order,
// with no score-based reordering.
func FilterAndRank(items []Item, query string) []Item {
	if query == "" {
		out := make([]Item, len(items))
		copy(out, items)
		return out
	}

	type scored struct {
		item  Item
		score int
	}
	matched := make([]scored, 0, len(items))
	for _, item := range items {
		ok, best := Match(query, item.Title)
		if item.Subtitle != "" {
			if subOK, subScore := Match(query, item.Subtitle); subOK {
				if !ok || subScore > best {
					best = subScore
				}
				ok = true
			}
		}
		if ok {
			matched = append(matched, scored{item: item, score: best})
		}
	}

	// Stable: equal scores keep their relative input order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	out := make([]Item, len(matched))
	for i, s := range matched {
		out[i] = s.item
	}
	return out
}

// MoveSelection returns the cursor position after moving delta steps through
// a list of count entries, wrapping at both ends. A non-positive count means
// there is nothing to select and yields -1.
func MoveSelection(current, delta, count int) int {
	if count <= 0 {
		return -1
	}
	next := (current + delta) % count
	if next < 0 {
		next += count
	}
	return next
}

// Submit resolves a session. If selected indexes a valid entry of filtered,
// the outcome carries that item plus the trimmed query; otherwise a non-empty
// trimmed query is carried alone; otherwise the session is dismissed. The
// action tag is supplied by the presentation layer (plain vs. modified
// submit) and is ignored for the dismissed case.
func Submit(filtered []Item, selected int, rawQuery string, action Action) Outcome {
	trimmed := strings.TrimSpace(rawQuery)
	if selected >= 0 && selected < len(filtered) {
		item := filtered[selected]
		return Outcome{Action: action, Query: trimmed, Item: &item}
	}
	if trimmed != "" {
		return Outcome{Action: action, Query: trimmed}
	}
	return Outcome{Action: ActionDismissed}
}
