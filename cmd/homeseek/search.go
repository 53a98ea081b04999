package main

import (
	"fmt"
	"strings"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	if err := deps.Session.Submit(deps.Ctx, query); err != nil {
		fmt.Fprint(deps.Stderr, deps.Renderer.RenderError(deps.Session.State().ErrorMessage))
		return err
	}

	fmt.Fprint(deps.Stdout, deps.Renderer.RenderResult(deps.Session.State().Results))
	return nil
}
