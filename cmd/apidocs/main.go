// Command apidocs prints the static platform API registry, optionally
// filtered by platform and kind and ranked against a fuzzy name query.
//
// Usage:
//
//	apidocs [-platform macos|ios] [-kind class|protocol|function|property] [-plain] [query]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"quickbar/internal/apidocs"
	"quickbar/internal/config"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	platformFlag := flag.String("platform", "", "Filter by platform ("+strings.Join(apidocs.Platforms, ", ")+")")
	kindFlag := flag.String("kind", "", "Filter by kind ("+strings.Join(apidocs.Kinds, ", ")+")")
	plainFlag := flag.Bool("plain", false, "Plain markdown output without terminal styling")
	widthFlag := flag.Int("width", 100, "Word-wrap width for styled output")
	flag.Parse()

	query := strings.Join(flag.Args(), " ")
	if err := run(os.Stdout, *platformFlag, *kindFlag, query, *plainFlag, *widthFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(stdout io.Writer, platform, kind, query string, plain bool, width int) error {
	if err := validate(platform, apidocs.Platforms, "platform"); err != nil {
		return err
	}
	if err := validate(kind, apidocs.Kinds, "kind"); err != nil {
		return err
	}

	entries := apidocs.Filter(apidocs.Registry, platform, kind)
	entries = apidocs.Rank(entries, query)

	if plain {
		_, err := io.WriteString(stdout, apidocs.Markdown(entries))
		return err
	}
	style := strings.TrimSpace(config.GetString(config.KeyOutputFormat))
	if style == "" {
		style = "dark"
	}
	out, err := apidocs.Render(entries, style, width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, out)
	return err
}

func validate(value string, allowed []string, label string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range allowed {
		if normalized == candidate {
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q (expected one of: %s)", label, value, strings.Join(allowed, ", "))
}
