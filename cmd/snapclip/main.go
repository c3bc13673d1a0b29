// Command snapclip takes a screenshot and puts it on the clipboard. On
// macOS the image goes to the clipboard directly; on other platforms the
// capture is written to a file whose path is copied.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"quickbar/internal/debug"
	"quickbar/internal/snapshot"
)

const captureTimeout = 2 * time.Minute

func main() {
	interactiveFlag := flag.Bool("i", false, "Drag-select a region instead of capturing the whole screen")
	outDirFlag := flag.String("dir", "", "Directory for capture files on non-macOS platforms")
	debugFlag := flag.Bool("debug", false, "Write debug logs to ~/.quickbar/debug.log")
	flag.Parse()

	if err := debug.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing debug log: %v\n", err)
		os.Exit(1)
	}
	defer debug.Close()

	ctx, cancel := context.WithTimeout(context.Background(), captureTimeout)
	defer cancel()

	path, err := snapshot.Capture(ctx, snapshot.Options{
		Interactive: *interactiveFlag,
		OutDir:      *outDirFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if path != "" {
		fmt.Println(path)
	}
}
