package lipgloss

import (
	"regexp"
	"strings"
)

// The markdown renderer is a sanitize-then-render pipeline with an explicit
// allow-list of constructs: headings, bullet and numbered lists, bold and
// italic emphasis, inline code, and plain paragraphs. Raw HTML is stripped
// before rendering and is never passed through to the terminal.
var (
	htmlTagRE  = regexp.MustCompile(`<[^>]*>`)
	boldRE     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRE   = regexp.MustCompile(`(^|[^*])\*([^*]+?)\*`)
	codeRE     = regexp.MustCompile("`([^`]*)`")
	bulletRE   = regexp.MustCompile(`^[-*+]\s+`)
	numberedRE = regexp.MustCompile(`^\d+\.\s+`)
	headingRE  = regexp.MustCompile(`^(#{1,6})\s+`)
)

// RenderMarkdown renders markdown text for the terminal.
func (r *Renderer) RenderMarkdown(md string) string {
	sanitized := htmlTagRE.ReplaceAllString(md, "")

	var b strings.Builder
	for _, line := range strings.Split(sanitized, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			b.WriteString("\n")
		case headingRE.MatchString(trimmed):
			text := headingRE.ReplaceAllString(trimmed, "")
			b.WriteString(r.heading.Render(r.renderInline(text)))
			b.WriteString("\n")
		case bulletRE.MatchString(trimmed):
			text := bulletRE.ReplaceAllString(trimmed, "")
			b.WriteString("  • " + r.renderInline(text) + "\n")
		case numberedRE.MatchString(trimmed):
			marker := numberedRE.FindString(trimmed)
			text := strings.TrimPrefix(trimmed, marker)
			b.WriteString("  " + strings.TrimSpace(marker) + " " + r.renderInline(text) + "\n")
		default:
			b.WriteString(r.renderInline(trimmed) + "\n")
		}
	}
	return b.String()
}

// renderInline resolves emphasis and inline code to styled plain text.
func (r *Renderer) renderInline(text string) string {
	text = boldRE.ReplaceAllStringFunc(text, func(m string) string {
		return r.title.Render(strings.TrimSuffix(strings.TrimPrefix(m, "**"), "**"))
	})
	text = italicRE.ReplaceAllString(text, "$1$2")
	text = codeRE.ReplaceAllString(text, "$1")
	return text
}
