package main

import (
	"context"
	"fmt"
	"io"

	"github.com/mwidmann/homeseek"
)

// Ensure PreviewNavigator implements homeseek.Navigator at compile time.
var _ homeseek.Navigator = (*PreviewNavigator)(nil)

// PreviewNavigator replays a saved static result page inside the terminal:
// it fetches the page HTML, converts it to markdown, and renders it.
type PreviewNavigator struct {
	Fetcher   homeseek.Fetcher
	Converter homeseek.Converter
	Renderer  homeseek.Renderer
	Out       io.Writer
}

// OpenPage fetches and renders the static page at path.
func (n *PreviewNavigator) OpenPage(ctx context.Context, path string) error {
	html, err := n.Fetcher.FetchPage(ctx, path)
	if err != nil {
		return err
	}

	md, err := n.Converter.Convert(html)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(n.Out, n.Renderer.RenderMarkdown(md))
	return err
}
