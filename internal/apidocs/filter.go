package apidocs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/sahilm/fuzzy"
)

// Filter returns the registry entries passing the platform and kind
// predicates. An empty predicate accepts everything; "all"-platform entries
// pass any platform predicate.
func Filter(entries []Entry, platform, kind string) []Entry {
	platform = strings.ToLower(strings.TrimSpace(platform))
	kind = strings.ToLower(strings.TrimSpace(kind))

	var out []Entry
	for _, entry := range entries {
		if platform != "" && entry.Platform != platform && entry.Platform != "all" {
			continue
		}
		if kind != "" && entry.Kind != kind {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// Rank orders entries by fuzzy relevance of their names to query. Entries
// that do not match at all are dropped; an empty query keeps the registry
// order untouched.
func Rank(entries []Entry, query string) []Entry {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" || len(entries) == 0 {
		return entries
	}
	targets := make([]string, len(entries))
	for i, entry := range entries {
		targets[i] = strings.ToLower(entry.Name)
	}
	matches := fuzzy.Find(query, targets)
	ranked := make([]Entry, 0, len(matches))
	for _, match := range matches {
		if match.Index >= 0 && match.Index < len(entries) {
			ranked = append(ranked, entries[match.Index])
		}
	}
	return ranked
}

// Markdown renders entries as a table for glamour.
func Markdown(entries []Entry) string {
	if len(entries) == 0 {
		return "No matching APIs.\n"
	}
	var b strings.Builder
	b.WriteString("| API | Platform | Kind | Summary |\n")
	b.WriteString("|-----|----------|------|---------|\n")
	for _, entry := range entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", entry.Name, entry.Platform, entry.Kind, entry.Summary)
	}
	return b.String()
}

// Render produces styled terminal output for entries. style is a glamour
// standard style name.
func Render(entries []Entry, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithStandardStyle(style),
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("build markdown renderer: %w", err)
	}
	out, err := renderer.Render(Markdown(entries))
	if err != nil {
		return "", fmt.Errorf("render api table: %w", err)
	}
	return out, nil
}
