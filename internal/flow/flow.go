// Package flow implements step-based checklists stored as JSON files, one
// file per checklist under the configured flows directory.
package flow

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	stderrors "errors"

	"quickbar/internal/errors"
)

// Step is one entry of a checklist.
type Step struct {
	Title  string     `json:"title"`
	Done   bool       `json:"done"`
	DoneAt *time.Time `json:"done_at,omitempty"`
}

// Checklist is a named, ordered list of steps.
type Checklist struct {
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
	Steps   []Step    `json:"steps"`
}

// New builds a checklist from step titles. Blank titles are rejected.
func New(name string, stepTitles []string) (*Checklist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New(errors.CodeParseFailed, "checklist name is empty", nil)
	}
	if len(stepTitles) == 0 {
		return nil, errors.New(errors.CodeParseFailed, "checklist has no steps", nil)
	}
	steps := make([]Step, 0, len(stepTitles))
	for i, title := range stepTitles {
		title = strings.TrimSpace(title)
		if title == "" {
			return nil, errors.New(errors.CodeParseFailed, fmt.Sprintf("step %d is blank", i+1), nil)
		}
		steps = append(steps, Step{Title: title})
	}
	return &Checklist{Name: name, Created: time.Now().UTC(), Steps: steps}, nil
}

// Next returns the index of the first unchecked step, or -1 when the
// checklist is complete.
func (c *Checklist) Next() int {
	for i, step := range c.Steps {
		if !step.Done {
			return i
		}
	}
	return -1
}

// Check marks the step at index done, recording the completion time.
// Checking an already done step is a no-op.
func (c *Checklist) Check(index int) error {
	if index < 0 || index >= len(c.Steps) {
		return errors.New(errors.CodeNotFound, fmt.Sprintf("no step %d in %q", index+1, c.Name), nil)
	}
	if c.Steps[index].Done {
		return nil
	}
	now := time.Now().UTC()
	c.Steps[index].Done = true
	c.Steps[index].DoneAt = &now
	return nil
}

// Uncheck clears the step at index.
func (c *Checklist) Uncheck(index int) error {
	if index < 0 || index >= len(c.Steps) {
		return errors.New(errors.CodeNotFound, fmt.Sprintf("no step %d in %q", index+1, c.Name), nil)
	}
	c.Steps[index].Done = false
	c.Steps[index].DoneAt = nil
	return nil
}

// Reset clears every step.
func (c *Checklist) Reset() {
	for i := range c.Steps {
		c.Steps[i].Done = false
		c.Steps[i].DoneAt = nil
	}
}

// Done reports how many steps are checked.
func (c *Checklist) Done() int {
	done := 0
	for _, step := range c.Steps {
		if step.Done {
			done++
		}
	}
	return done
}

// Path returns the JSON file for a checklist name inside dir.
func Path(dir, name string) string {
	return filepath.Join(dir, name+".json")
}

// Load reads a checklist by name from dir.
func Load(dir, name string) (*Checklist, error) {
	path := Path(dir, name)
	//nolint:gosec // G304: Flow files live under the configured flows directory
	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.New(errors.CodeNotFound, fmt.Sprintf("no checklist named %q", name), err)
	}
	if err != nil {
		return nil, fmt.Errorf("read checklist: %w", err)
	}
	var c Checklist
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.New(errors.CodeParseFailed, fmt.Sprintf("parse checklist %s", path), err)
	}
	return &c, nil
}

// Save writes the checklist to dir atomically (temp file plus rename), so a
// crash mid-write never leaves a truncated checklist behind.
func Save(dir string, c *Checklist) error {
	//nolint:gosec // G301: User data directory needs standard permissions
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.New(errors.CodeWriteFailed, "create flows directory", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeWriteFailed, "encode checklist", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, "."+c.Name+"-*.tmp")
	if err != nil {
		return errors.New(errors.CodeWriteFailed, "create temp file", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.New(errors.CodeWriteFailed, "write checklist", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.New(errors.CodeWriteFailed, "close temp file", err)
	}
	if err := os.Rename(tmpPath, Path(dir, c.Name)); err != nil {
		_ = os.Remove(tmpPath)
		return errors.New(errors.CodeWriteFailed, "replace checklist file", err)
	}
	return nil
}

// List returns the checklist names found in dir, sorted.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read flows directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a checklist file.
func Delete(dir, name string) error {
	err := os.Remove(Path(dir, name))
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.New(errors.CodeNotFound, fmt.Sprintf("no checklist named %q", name), err)
	}
	return err
}
