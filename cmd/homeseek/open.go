package main

import (
	"fmt"

	"github.com/mwidmann/homeseek"
)

// Run executes the open command.
func (c *OpenCmd) Run(deps *Dependencies) error {
	recent := deps.Session.State().RecentSearches
	if c.Number < 1 || c.Number > len(recent) {
		err := homeseek.Errorf(homeseek.ENOTFOUND, "no recent search #%d. Run 'homeseek recent' to see the list.", c.Number)
		fmt.Fprint(deps.Stderr, deps.Renderer.RenderError(homeseek.ErrorMessage(err)))
		return err
	}
	entry := recent[c.Number-1]

	if err := deps.Session.SelectRecent(deps.Ctx, entry); err != nil {
		fmt.Fprint(deps.Stderr, deps.Renderer.RenderError(homeseek.ErrorMessage(err)))
		return err
	}

	// An entry without a saved page re-ran the search; show the result.
	if entry.StaticPageURL == "" {
		fmt.Fprint(deps.Stdout, deps.Renderer.RenderResult(deps.Session.State().Results))
	}
	return nil
}
