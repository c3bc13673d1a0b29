package snapshot

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"quickbar/internal/errors"
)

type fakeRun struct {
	name string
	args []string
	err  error
}

func stubPlatform(t *testing.T, os string, available map[string]bool) *fakeRun {
	t.Helper()
	run := &fakeRun{}

	origGoos, origLook, origRun, origClip, origTemp := goos, lookPath, runCommand, writeClipboard, tempDir
	t.Cleanup(func() {
		goos, lookPath, runCommand, writeClipboard, tempDir = origGoos, origLook, origRun, origClip, origTemp
	})

	goos = os
	lookPath = func(name string) (string, error) {
		if available[name] {
			return "/usr/bin/" + name, nil
		}
		return "", stderrors.New("not found")
	}
	runCommand = func(ctx context.Context, name string, args ...string) error {
		run.name = name
		run.args = args
		return run.err
	}
	writeClipboard = func(string) error { return nil }
	tempDir = func() string { return t.TempDir() }
	return run
}

func TestCapture_Darwin(t *testing.T) {
	t.Run("FullScreenUsesClipboardFlag", func(t *testing.T) {
		run := stubPlatform(t, "darwin", map[string]bool{"screencapture": true})
		path, err := Capture(context.Background(), Options{})
		if err != nil {
			t.Fatalf("Capture failed: %v", err)
		}
		if path != "" {
			t.Errorf("path = %q, want empty on darwin", path)
		}
		if run.name != "screencapture" {
			t.Errorf("ran %q, want screencapture", run.name)
		}
		if len(run.args) != 1 || run.args[0] != "-c" {
			t.Errorf("args = %v, want [-c]", run.args)
		}
	})

	t.Run("InteractiveAddsRegionFlag", func(t *testing.T) {
		run := stubPlatform(t, "darwin", map[string]bool{"screencapture": true})
		if _, err := Capture(context.Background(), Options{Interactive: true}); err != nil {
			t.Fatalf("Capture failed: %v", err)
		}
		joined := strings.Join(run.args, " ")
		if !strings.Contains(joined, "-i") || !strings.Contains(joined, "-c") {
			t.Errorf("args = %v, want both -c and -i", run.args)
		}
	})

	t.Run("MissingToolCode", func(t *testing.T) {
		stubPlatform(t, "darwin", nil)
		_, err := Capture(context.Background(), Options{})
		if !errors.IsCode(err, errors.CodeNoCaptureTool) {
			t.Errorf("code = %q, want %q", errors.CodeOf(err), errors.CodeNoCaptureTool)
		}
	})

	t.Run("ToolFailureCode", func(t *testing.T) {
		run := stubPlatform(t, "darwin", map[string]bool{"screencapture": true})
		run.err = stderrors.New("exit status 1")
		_, err := Capture(context.Background(), Options{})
		if !errors.IsCode(err, errors.CodeCaptureFailed) {
			t.Errorf("code = %q, want %q", errors.CodeOf(err), errors.CodeCaptureFailed)
		}
	})
}

func TestCapture_Linux(t *testing.T) {
	t.Run("PrefersGnomeScreenshot", func(t *testing.T) {
		run := stubPlatform(t, "linux", map[string]bool{"gnome-screenshot": true, "scrot": true})
		path, err := Capture(context.Background(), Options{})
		if err != nil {
			t.Fatalf("Capture failed: %v", err)
		}
		if run.name != "gnome-screenshot" {
			t.Errorf("ran %q, want gnome-screenshot", run.name)
		}
		if path == "" || !strings.HasSuffix(path, ".png") {
			t.Errorf("path = %q, want a png path", path)
		}
	})

	t.Run("FallsBackToScrot", func(t *testing.T) {
		run := stubPlatform(t, "linux", map[string]bool{"scrot": true})
		if _, err := Capture(context.Background(), Options{}); err != nil {
			t.Fatalf("Capture failed: %v", err)
		}
		if run.name != "scrot" {
			t.Errorf("ran %q, want scrot", run.name)
		}
	})

	t.Run("InteractiveSelectsRegion", func(t *testing.T) {
		run := stubPlatform(t, "linux", map[string]bool{"scrot": true})
		if _, err := Capture(context.Background(), Options{Interactive: true}); err != nil {
			t.Fatalf("Capture failed: %v", err)
		}
		if len(run.args) == 0 || run.args[0] != "-s" {
			t.Errorf("args = %v, want -s first", run.args)
		}
	})

	t.Run("NoToolCode", func(t *testing.T) {
		stubPlatform(t, "linux", nil)
		_, err := Capture(context.Background(), Options{})
		if !errors.IsCode(err, errors.CodeNoCaptureTool) {
			t.Errorf("code = %q, want %q", errors.CodeOf(err), errors.CodeNoCaptureTool)
		}
	})

	t.Run("ClipboardFailureCode", func(t *testing.T) {
		stubPlatform(t, "linux", map[string]bool{"scrot": true})
		writeClipboard = func(string) error { return stderrors.New("no display") }
		_, err := Capture(context.Background(), Options{})
		if !errors.IsCode(err, errors.CodeClipboardFailed) {
			t.Errorf("code = %q, want %q", errors.CodeOf(err), errors.CodeClipboardFailed)
		}
	})
}

func TestCapture_UnsupportedPlatform(t *testing.T) {
	stubPlatform(t, "plan9", nil)
	_, err := Capture(context.Background(), Options{})
	if !errors.IsCode(err, errors.CodeNoCaptureTool) {
		t.Errorf("code = %q, want %q", errors.CodeOf(err), errors.CodeNoCaptureTool)
	}
}
