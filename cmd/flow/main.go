// Command flow manages step-based checklists stored as JSON files.
//
// Usage:
//
//	flow [-dir path] [-plain] <command> [args]
//
// Commands:
//
//	new <name> <step>...   create a checklist
//	list                   list checklists
//	show <name>            print a checklist
//	check <name> <step>    mark a step done (1-based)
//	uncheck <name> <step>  clear a step
//	next <name>            print the first unchecked step
//	reset <name>           clear every step
//	rm <name>              delete a checklist
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"quickbar/internal/config"
	"quickbar/internal/flow"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	dirFlag := flag.String("dir", config.GetString(config.KeyFlowsDir), "Directory holding checklist files")
	plainFlag := flag.Bool("plain", false, "Plain output without terminal styling")
	widthFlag := flag.Int("width", 80, "Word-wrap width for styled output")
	flag.Parse()

	if err := run(*dirFlag, *plainFlag, *widthFlag, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string, plain bool, width int, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given (try: new, list, show, check, uncheck, next, reset, rm)")
	}
	command, rest := args[0], args[1:]

	switch command {
	case "new":
		if len(rest) < 2 {
			return fmt.Errorf("usage: flow new <name> <step>...")
		}
		c, err := flow.New(rest[0], rest[1:])
		if err != nil {
			return err
		}
		if err := flow.Save(dir, c); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Created %q with %d steps\n", c.Name, len(c.Steps))
		return nil

	case "list":
		names, err := flow.List(dir)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(stdout, "No checklists yet")
			return nil
		}
		for _, name := range names {
			c, err := flow.Load(dir, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%s\t%d/%d\n", name, c.Done(), len(c.Steps))
		}
		return nil

	case "show":
		c, err := loadOne(dir, rest, command)
		if err != nil {
			return err
		}
		return show(stdout, c, plain, width)

	case "check", "uncheck":
		if len(rest) != 2 {
			return fmt.Errorf("usage: flow %s <name> <step-number>", command)
		}
		c, err := flow.Load(dir, rest[0])
		if err != nil {
			return err
		}
		step, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("step number %q is not a number", rest[1])
		}
		if command == "check" {
			err = c.Check(step - 1)
		} else {
			err = c.Uncheck(step - 1)
		}
		if err != nil {
			return err
		}
		if err := flow.Save(dir, c); err != nil {
			return err
		}
		return show(stdout, c, plain, width)

	case "next":
		c, err := loadOne(dir, rest, command)
		if err != nil {
			return err
		}
		next := c.Next()
		if next < 0 {
			fmt.Fprintf(stdout, "%q is complete\n", c.Name)
			return nil
		}
		fmt.Fprintf(stdout, "%d. %s\n", next+1, c.Steps[next].Title)
		return nil

	case "reset":
		c, err := loadOne(dir, rest, command)
		if err != nil {
			return err
		}
		c.Reset()
		if err := flow.Save(dir, c); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Reset %q\n", c.Name)
		return nil

	case "rm":
		if len(rest) != 1 {
			return fmt.Errorf("usage: flow rm <name>")
		}
		if err := flow.Delete(dir, rest[0]); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Deleted %q\n", rest[0])
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func loadOne(dir string, rest []string, command string) (*flow.Checklist, error) {
	if len(rest) != 1 {
		return nil, fmt.Errorf("usage: flow %s <name>", command)
	}
	return flow.Load(dir, rest[0])
}

func show(stdout io.Writer, c *flow.Checklist, plain bool, width int) error {
	if plain {
		_, err := io.WriteString(stdout, flow.Markdown(c))
		return err
	}
	style := strings.TrimSpace(config.GetString(config.KeyOutputFormat))
	if style == "" {
		style = "dark"
	}
	out, err := flow.Render(c, style, width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, out)
	return err
}
