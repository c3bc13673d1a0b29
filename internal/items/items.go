// Package items loads the launcher's candidate entries from a JSON file.
package items

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	stderrors "errors"

	"quickbar/internal/errors"
	"quickbar/internal/query"
)

// Load reads a JSON array of items from path. Entries missing an id or a
// title are rejected; duplicate ids are allowed and treated as distinct by
// position, per the session contract.
func Load(path string) ([]query.Item, error) {
	//nolint:gosec // G304: Items path comes from user configuration
	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.New(errors.CodeNotFound, fmt.Sprintf("items file %s does not exist", path), err)
	}
	if err != nil {
		return nil, fmt.Errorf("read items file: %w", err)
	}

	var loaded []query.Item
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, errors.New(errors.CodeParseFailed, fmt.Sprintf("parse items file %s", path), err)
	}

	for i, item := range loaded {
		if strings.TrimSpace(item.ID) == "" {
			return nil, errors.New(errors.CodeParseFailed, fmt.Sprintf("item %d has no id", i), nil)
		}
		if strings.TrimSpace(item.Title) == "" {
			return nil, errors.New(errors.CodeParseFailed, fmt.Sprintf("item %q has no title", item.ID), nil)
		}
	}
	return loaded, nil
}

// Builtin returns the fallback entries used when no items file is configured,
// so a fresh install still shows something searchable.
func Builtin() []query.Item {
	return []query.Item{
		{ID: "flow", Title: "Flow checklists", Subtitle: "step-based checklists", Icon: "✓"},
		{ID: "apidocs", Title: "API docs", Subtitle: "platform API reference", Icon: "📖"},
		{ID: "snapclip", Title: "Screenshot to clipboard", Subtitle: "capture and copy", Icon: "📷"},
		{ID: "history", Title: "Launcher history", Subtitle: "recent submissions", Icon: "⏱"},
	}
}
