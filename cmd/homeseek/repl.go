package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/mwidmann/homeseek"
)

// Run executes the repl command: an interactive search session. Free text
// submits a search; colon commands control the session.
func (c *ReplCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "homeseek interactive session. Type a query, or :recent, :open N, :new, :quit.")

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == ":quit" || line == ":q":
			return nil
		case line == ":new":
			deps.Session.NewSearch()
			fmt.Fprintln(deps.Stdout, "Started a new search.")
		case line == ":recent":
			fmt.Fprint(deps.Stdout, deps.Renderer.RenderRecent(deps.Session.State().RecentSearches))
		case line == ":open" || strings.HasPrefix(line, ":open "):
			c.open(deps, strings.TrimSpace(strings.TrimPrefix(line, ":open")))
		case strings.HasPrefix(line, ":"):
			fmt.Fprintf(deps.Stdout, "Unknown command %q. Available: :recent, :open N, :new, :quit.\n", line)
		default:
			c.search(deps, line)
		}
	}
}

func (c *ReplCmd) search(deps *Dependencies, query string) {
	if err := deps.Session.Submit(deps.Ctx, query); err != nil {
		fmt.Fprint(deps.Stdout, deps.Renderer.RenderError(deps.Session.State().ErrorMessage))
		return
	}
	fmt.Fprint(deps.Stdout, deps.Renderer.RenderResult(deps.Session.State().Results))
}

func (c *ReplCmd) open(deps *Dependencies, arg string) {
	number, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(deps.Stdout, "Usage: :open N, where N is an entry number from :recent.")
		return
	}

	recent := deps.Session.State().RecentSearches
	if number < 1 || number > len(recent) {
		fmt.Fprintf(deps.Stdout, "No recent search #%d.\n", number)
		return
	}

	entry := recent[number-1]
	if err := deps.Session.SelectRecent(deps.Ctx, entry); err != nil {
		fmt.Fprint(deps.Stdout, deps.Renderer.RenderError(homeseek.ErrorMessage(err)))
		return
	}
	if entry.StaticPageURL == "" {
		fmt.Fprint(deps.Stdout, deps.Renderer.RenderResult(deps.Session.State().Results))
	}
}
