package main

import "fmt"

// Run executes the recent command.
func (c *RecentCmd) Run(deps *Dependencies) error {
	fmt.Fprint(deps.Stdout, deps.Renderer.RenderRecent(deps.Session.State().RecentSearches))
	return nil
}
