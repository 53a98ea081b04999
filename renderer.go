package homeseek

// Renderer turns domain values into terminal output. Implementations own
// all presentation decisions (styling, fallback text for absent fields,
// price grouping); the rest of the code never formats for display.
type Renderer interface {
	// RenderResult renders a full search result: summary, property
	// listings, and the optional location overview.
	RenderResult(result *SearchResult) string

	// RenderRecent renders the recent-search list, most recent first,
	// numbered from 1.
	RenderRecent(entries []*RecentSearch) string

	// RenderMarkdown renders markdown text for the terminal. Raw HTML in
	// the input is stripped, never passed through.
	RenderMarkdown(md string) string

	// RenderError renders a user-facing error message.
	RenderError(msg string) string
}
