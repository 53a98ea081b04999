package mock

import "github.com/mwidmann/homeseek"

var _ homeseek.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of homeseek.Renderer.
type Renderer struct {
	RenderResultFn   func(result *homeseek.SearchResult) string
	RenderRecentFn   func(entries []*homeseek.RecentSearch) string
	RenderMarkdownFn func(md string) string
	RenderErrorFn    func(msg string) string
}

func (r *Renderer) RenderResult(result *homeseek.SearchResult) string {
	return r.RenderResultFn(result)
}

func (r *Renderer) RenderRecent(entries []*homeseek.RecentSearch) string {
	return r.RenderRecentFn(entries)
}

func (r *Renderer) RenderMarkdown(md string) string {
	return r.RenderMarkdownFn(md)
}

func (r *Renderer) RenderError(msg string) string {
	return r.RenderErrorFn(msg)
}
