package main

import (
	"strings"
	"testing"

	"quickbar/internal/config"
)

func runDocs(t *testing.T, platform, kind, query string) (string, error) {
	t.Helper()
	var out strings.Builder
	err := run(&out, platform, kind, query, true, 100)
	return out.String(), err
}

func TestRun_UnfilteredListsRegistry(t *testing.T) {
	defer config.ResetForTesting(t)()

	out, err := runDocs(t, "", "", "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{"NSWindow", "UIWindow", "FileManager"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRun_PlatformFilter(t *testing.T) {
	defer config.ResetForTesting(t)()

	out, err := runDocs(t, "ios", "", "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if strings.Contains(out, "NSWindow") {
		t.Error("macos-only entries should be filtered out")
	}
	if !strings.Contains(out, "UIWindow") {
		t.Error("ios entries should remain")
	}
	if !strings.Contains(out, "FileManager") {
		t.Error("cross-platform entries should remain")
	}
}

func TestRun_QueryRanks(t *testing.T) {
	defer config.ResetForTesting(t)()

	out, err := runDocs(t, "", "", "pasteboard")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "NSPasteboard") || !strings.Contains(out, "UIPasteboard") {
		t.Errorf("output should keep pasteboard entries:\n%s", out)
	}
	if strings.Contains(out, "FileManager") {
		t.Error("non-matching entries should be dropped")
	}
}

func TestRun_RejectsUnknownPredicates(t *testing.T) {
	defer config.ResetForTesting(t)()

	if _, err := runDocs(t, "windows", "", ""); err == nil || !strings.Contains(err.Error(), "unknown platform") {
		t.Errorf("unknown platform error = %v", err)
	}
	if _, err := runDocs(t, "", "enum", ""); err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Errorf("unknown kind error = %v", err)
	}
}
