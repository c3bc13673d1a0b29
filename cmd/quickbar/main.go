// Command quickbar shows a launcher modal over the terminal: type to filter
// the configured items, move with the arrow keys, confirm with enter (or a
// modifier variant). The resolved outcome is printed to stdout as
// action<TAB>item-id<TAB>query; a dismissed session prints nothing and exits
// with status 1.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"quickbar/internal/config"
	"quickbar/internal/debug"
	"quickbar/internal/errors"
	"quickbar/internal/history"
	"quickbar/internal/items"
	"quickbar/internal/launcher"
	"quickbar/internal/query"
	"quickbar/internal/ui"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	debugFlag := flag.Bool("debug", false, "Write debug logs to ~/.quickbar/debug.log")
	itemsFlag := flag.String("items", config.GetString(config.KeyItemsPath), "Path to the items JSON file")
	placeholderFlag := flag.String("placeholder", config.GetString(config.KeyLauncherPlaceholder), "Search box placeholder text")
	maxResultsFlag := flag.Int("max-results", config.GetInt(config.KeyLauncherMaxResults), "Maximum result rows to display")
	historyFlag := flag.Int("history", 0, "Print the N most recent submissions and exit")
	topFlag := flag.Int("top", 0, "Print the N most used items and exit")
	noHistoryFlag := flag.Bool("no-history", false, "Do not record this session")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	if err := debug.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing debug log: %v\n", err)
		os.Exit(1)
	}
	defer debug.Close()

	if *historyFlag > 0 || *topFlag > 0 {
		if err := printHistory(os.Stdout, *historyFlag, *topFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	out, err := runLauncher(runtimeOptions{
		itemsPath:     *itemsFlag,
		placeholder:   *placeholderFlag,
		maxResults:    sanitizeMaxResults(*maxResultsFlag),
		recordHistory: !*noHistoryFlag && config.GetBool(config.KeyHistoryEnabled),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if out.Action == query.ActionDismissed {
		os.Exit(1)
	}
	fmt.Println(formatOutcome(out))
}

type runtimeOptions struct {
	itemsPath     string
	placeholder   string
	maxResults    int
	recordHistory bool
}

func runLauncher(opts runtimeOptions) (query.Outcome, error) {
	list, err := loadItems(opts.itemsPath)
	if err != nil {
		return query.Outcome{}, err
	}

	sess := launcher.NewSession(list)
	out, err := ui.Run(context.Background(), sess, ui.Options{
		Placeholder: opts.placeholder,
		MaxResults:  opts.maxResults,
	})
	if err != nil {
		return query.Outcome{}, fmt.Errorf("run launcher: %w", err)
	}

	if opts.recordHistory {
		if err := recordOutcome(out); err != nil {
			// History is best-effort; the outcome still stands.
			debug.Logf("record history: %v", err)
		}
	}
	return out, nil
}

// loadItems falls back to the built-in entries when the configured items
// file does not exist yet, so a fresh install is still usable.
func loadItems(path string) ([]query.Item, error) {
	list, err := items.Load(path)
	if err == nil {
		return list, nil
	}
	if errors.IsCode(err, errors.CodeNotFound) {
		debug.Logf("items file %s missing, using builtins", path)
		return items.Builtin(), nil
	}
	return nil, err
}

func recordOutcome(out query.Outcome) error {
	ctx := context.Background()
	store, err := history.Open(ctx, config.GetString(config.KeyHistoryPath))
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()
	return store.Record(ctx, out)
}

func printHistory(w io.Writer, recent, top int) error {
	ctx := context.Background()
	store, err := history.Open(ctx, config.GetString(config.KeyHistoryPath))
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if recent > 0 {
		entries, err := store.Recent(ctx, recent)
		if err != nil {
			return err
		}
		for _, e := range entries {
			title := e.ItemTitle
			if title == "" {
				title = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%q\n", e.CreatedAt.Local().Format("Jan 02 15:04"), e.Action, title, e.Query)
		}
	}
	if top > 0 {
		counts, err := store.TopItems(ctx, top)
		if err != nil {
			return err
		}
		for _, c := range counts {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", c.Count, c.ItemID, c.ItemTitle)
		}
	}
	return tw.Flush()
}

// formatOutcome renders the resolved outcome as a single tab-separated line:
// action, item id (empty when the query alone was submitted), query.
func formatOutcome(out query.Outcome) string {
	id := ""
	if out.Item != nil {
		id = out.Item.ID
	}
	return strings.Join([]string{out.Action.String(), id, out.Query}, "\t")
}

func sanitizeMaxResults(n int) int {
	if n <= 0 {
		return config.DefaultMaxResults
	}
	return n
}
