package main

import (
	"fmt"

	"github.com/mwidmann/homeseek"
)

// Run executes the health command.
func (c *HealthCmd) Run(deps *Dependencies) error {
	if err := deps.Health.Health(deps.Ctx); err != nil {
		fmt.Fprint(deps.Stderr, deps.Renderer.RenderError(homeseek.ErrorMessage(err)))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Search service is healthy.")
	return nil
}
