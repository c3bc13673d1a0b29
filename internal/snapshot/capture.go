// Package snapshot takes a one-shot screenshot and places it on the
// clipboard. On macOS the system capture tool writes straight to the
// clipboard; elsewhere the capture lands in a file whose path is copied.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/atotto/clipboard"

	"quickbar/internal/debug"
	"quickbar/internal/errors"
)

// Options tune the capture.
type Options struct {
	// Interactive lets the user drag-select a region instead of grabbing
	// the whole screen.
	Interactive bool
	// OutDir overrides where non-macOS captures are written. Empty means
	// the system temp directory.
	OutDir string
}

// Function variables to allow overriding in tests.
var (
	goos           = runtime.GOOS
	lookPath       = exec.LookPath
	runCommand     = defaultRunCommand
	writeClipboard = clipboard.WriteAll
	tempDir        = defaultTempDir
)

func defaultTempDir() string {
	return os.TempDir()
}

func defaultRunCommand(ctx context.Context, name string, args ...string) error {
	//nolint:gosec // G204: Tool name and args are fixed per platform, not user input
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w (%s)", name, err, string(out))
	}
	return nil
}

// Capture takes a screenshot and puts it on the clipboard. The returned path
// is empty on macOS, where the image itself lands on the clipboard; on other
// platforms it is the capture file whose path was copied.
func Capture(ctx context.Context, opts Options) (string, error) {
	switch goos {
	case "darwin":
		return "", captureDarwin(ctx, opts)
	case "linux":
		return captureLinux(ctx, opts)
	default:
		return "", errors.New(errors.CodeNoCaptureTool, fmt.Sprintf("no screenshot support on %s", goos), nil)
	}
}

// captureDarwin shells out to screencapture, which can write to the
// clipboard directly.
func captureDarwin(ctx context.Context, opts Options) error {
	if _, err := lookPath("screencapture"); err != nil {
		return errors.New(errors.CodeNoCaptureTool, "screencapture not found", err)
	}
	args := []string{"-c"}
	if opts.Interactive {
		args = append(args, "-i")
	}
	debug.Logf("capture: screencapture %v", args)
	if err := runCommand(ctx, "screencapture", args...); err != nil {
		return errors.New(errors.CodeCaptureFailed, "screencapture failed", err)
	}
	return nil
}

// linuxTools lists the capture tools tried in order, with the arguments that
// write a full-screen or region capture to the given file.
var linuxTools = []struct {
	name string
	args func(opts Options, outPath string) []string
}{
	{"gnome-screenshot", func(opts Options, outPath string) []string {
		args := []string{"-f", outPath}
		if opts.Interactive {
			args = append([]string{"-a"}, args...)
		}
		return args
	}},
	{"scrot", func(opts Options, outPath string) []string {
		if opts.Interactive {
			return []string{"-s", outPath}
		}
		return []string{outPath}
	}},
}

func captureLinux(ctx context.Context, opts Options) (string, error) {
	dir := opts.OutDir
	if dir == "" {
		dir = tempDir()
	}
	outPath := filepath.Join(dir, fmt.Sprintf("snap-%s.png", time.Now().Format("20060102-150405")))

	for _, tool := range linuxTools {
		if _, err := lookPath(tool.name); err != nil {
			continue
		}
		debug.Logf("capture: %s -> %s", tool.name, outPath)
		if err := runCommand(ctx, tool.name, tool.args(opts, outPath)...); err != nil {
			return "", errors.New(errors.CodeCaptureFailed, tool.name+" failed", err)
		}
		if err := writeClipboard(outPath); err != nil {
			return "", errors.New(errors.CodeClipboardFailed, "copy capture path", err)
		}
		return outPath, nil
	}
	return "", errors.New(errors.CodeNoCaptureTool, "no screenshot tool found (tried gnome-screenshot, scrot)", nil)
}
