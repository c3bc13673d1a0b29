package flow

import (
	"os"
	"strings"
	"testing"

	"quickbar/internal/errors"
)

func TestNew(t *testing.T) {
	t.Run("BuildsUncheckedSteps", func(t *testing.T) {
		c, err := New("release", []string{"bump version", "tag", "push"})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if len(c.Steps) != 3 {
			t.Fatalf("got %d steps, want 3", len(c.Steps))
		}
		for _, step := range c.Steps {
			if step.Done || step.DoneAt != nil {
				t.Errorf("new step %+v should be unchecked", step)
			}
		}
		if c.Created.IsZero() {
			t.Error("created timestamp should be set")
		}
	})

	t.Run("RejectsBlankInput", func(t *testing.T) {
		if _, err := New("  ", []string{"a"}); !errors.IsCode(err, errors.CodeParseFailed) {
			t.Errorf("blank name: code = %q", errors.CodeOf(err))
		}
		if _, err := New("x", nil); !errors.IsCode(err, errors.CodeParseFailed) {
			t.Errorf("no steps: code = %q", errors.CodeOf(err))
		}
		if _, err := New("x", []string{"a", " "}); !errors.IsCode(err, errors.CodeParseFailed) {
			t.Errorf("blank step: code = %q", errors.CodeOf(err))
		}
	})
}

func TestChecklist_CheckAndNext(t *testing.T) {
	c, err := New("deploy", []string{"build", "test", "ship"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := c.Next(); got != 0 {
		t.Errorf("Next = %d, want 0", got)
	}

	if err := c.Check(0); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !c.Steps[0].Done || c.Steps[0].DoneAt == nil {
		t.Errorf("step 0 = %+v, want done with timestamp", c.Steps[0])
	}
	if got := c.Next(); got != 1 {
		t.Errorf("Next = %d, want 1", got)
	}

	// Checking twice keeps the original timestamp.
	first := *c.Steps[0].DoneAt
	if err := c.Check(0); err != nil {
		t.Fatalf("re-Check failed: %v", err)
	}
	if !c.Steps[0].DoneAt.Equal(first) {
		t.Error("re-checking must not move the timestamp")
	}

	for i := range c.Steps {
		_ = c.Check(i)
	}
	if got := c.Next(); got != -1 {
		t.Errorf("Next = %d, want -1 for complete checklist", got)
	}
	if got := c.Done(); got != 3 {
		t.Errorf("Done = %d, want 3", got)
	}

	if err := c.Check(7); !errors.IsCode(err, errors.CodeNotFound) {
		t.Errorf("out-of-range Check: code = %q", errors.CodeOf(err))
	}
}

func TestChecklist_UncheckAndReset(t *testing.T) {
	c, _ := New("morning", []string{"coffee", "email"})
	_ = c.Check(0)
	_ = c.Check(1)

	if err := c.Uncheck(1); err != nil {
		t.Fatalf("Uncheck failed: %v", err)
	}
	if c.Steps[1].Done || c.Steps[1].DoneAt != nil {
		t.Errorf("step 1 = %+v, want cleared", c.Steps[1])
	}

	c.Reset()
	if c.Done() != 0 {
		t.Errorf("Done = %d after reset, want 0", c.Done())
	}

	if err := c.Uncheck(-1); !errors.IsCode(err, errors.CodeNotFound) {
		t.Errorf("out-of-range Uncheck: code = %q", errors.CodeOf(err))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, _ := New("release", []string{"bump", "tag"})
	_ = c.Check(0)

	if err := Save(dir, c); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir, "release")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Name != "release" || len(loaded.Steps) != 2 {
		t.Fatalf("loaded = %+v", loaded)
	}
	if !loaded.Steps[0].Done || loaded.Steps[0].DoneAt == nil {
		t.Errorf("step state lost in round trip: %+v", loaded.Steps[0])
	}
	if loaded.Steps[1].Done {
		t.Errorf("step 1 should still be unchecked")
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	c, _ := New("tidy", []string{"a"})
	if err := Save(dir, c); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir(), "ghost")
	if !errors.IsCode(err, errors.CodeNotFound) {
		t.Errorf("code = %q, want %q", errors.CodeOf(err), errors.CodeNotFound)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir, "broken"), []byte("{nope"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(dir, "broken")
	if !errors.IsCode(err, errors.CodeParseFailed) {
		t.Errorf("code = %q, want %q", errors.CodeOf(err), errors.CodeParseFailed)
	}
}

func TestListAndDelete(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta", "alpha"} {
		c, _ := New(name, []string{"step"})
		if err := Save(dir, c); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	names, err := List(dir)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("names = %v, want sorted [alpha zeta]", names)
	}

	if err := Delete(dir, "alpha"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	names, _ = List(dir)
	if len(names) != 1 || names[0] != "zeta" {
		t.Errorf("names after delete = %v", names)
	}

	if err := Delete(dir, "alpha"); !errors.IsCode(err, errors.CodeNotFound) {
		t.Errorf("double delete: code = %q", errors.CodeOf(err))
	}
}

func TestList_MissingDirIsEmpty(t *testing.T) {
	names, err := List(t.TempDir() + "/does-not-exist")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if names != nil {
		t.Errorf("names = %v, want nil", names)
	}
}

func TestMarkdown(t *testing.T) {
	c, _ := New("release", []string{"bump", "tag"})
	_ = c.Check(0)

	md := Markdown(c)
	for _, want := range []string{"# release", "- [x] 1. bump", "- [ ] 2. tag", "1/2 done", "Next: **tag**"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	_ = c.Check(1)
	if md := Markdown(c); strings.Contains(md, "Next:") {
		t.Errorf("complete checklist should have no next step:\n%s", md)
	}
}

func TestRender(t *testing.T) {
	c, _ := New("release", []string{"bump", "tag"})
	out, err := Render(c, "notty", 60)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "release") || !strings.Contains(out, "bump") {
		t.Errorf("rendered output missing content:\n%s", out)
	}
}
