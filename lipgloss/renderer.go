// Package lipgloss renders search results, recent searches, and markdown
// location overviews for the terminal using charmbracelet/lipgloss.
package lipgloss

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwidmann/homeseek"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display fallbacks for absent listing fields.
const (
	fallbackTitle    = "Property"
	fallbackLocation = "Location not specified"
)

// Ensure Renderer implements homeseek.Renderer at compile time.
var _ homeseek.Renderer = (*Renderer)(nil)

// Renderer renders domain values with lipgloss styles. Prices use locale
// grouping ($1,800,000).
type Renderer struct {
	printer *message.Printer

	title    lipgloss.Style
	price    lipgloss.Style
	location lipgloss.Style
	feature  lipgloss.Style
	summary  lipgloss.Style
	faint    lipgloss.Style
	errStyle lipgloss.Style
	heading  lipgloss.Style
}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		printer:  message.NewPrinter(language.English),
		title:    lipgloss.NewStyle().Bold(true),
		price:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		location: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		feature:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		summary:  lipgloss.NewStyle().Italic(true),
		faint:    lipgloss.NewStyle().Faint(true),
		errStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		heading:  lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

// RenderResult renders a full search result: summary line, property
// listings in backend relevance order, and the optional location overview.
func (r *Renderer) RenderResult(result *homeseek.SearchResult) string {
	var b strings.Builder

	if result.SearchSummary != "" {
		b.WriteString(r.summary.Render(result.SearchSummary))
		b.WriteString("\n\n")
	}

	if len(result.Properties) == 0 {
		b.WriteString("No properties found.\n")
	}
	for i, p := range result.Properties {
		b.WriteString(r.renderProperty(&p))
		if i < len(result.Properties)-1 {
			b.WriteString("\n")
		}
	}

	if result.LocationOverview != "" {
		b.WriteString("\n")
		b.WriteString(r.heading.Render("Location Overview"))
		b.WriteString("\n")
		b.WriteString(r.RenderMarkdown(result.LocationOverview))
	}

	if result.StaticPageURL != "" {
		b.WriteString("\n")
		b.WriteString(r.faint.Render("Saved result page: " + result.StaticPageURL))
		b.WriteString("\n")
	}

	return b.String()
}

func (r *Renderer) renderProperty(p *homeseek.Property) string {
	title := p.Title
	if title == "" {
		title = fallbackTitle
	}
	location := p.Location
	if location == "" {
		location = fallbackLocation
	}

	var b strings.Builder
	b.WriteString(r.title.Render(title))
	b.WriteString("\n  ")
	b.WriteString(r.price.Render(r.FormatPrice(p.Price)))
	b.WriteString("  ")
	b.WriteString(r.location.Render(location))
	b.WriteString("\n")
	if p.Summary != "" {
		b.WriteString("  " + p.Summary + "\n")
	}
	if len(p.Features) > 0 {
		badges := make([]string, 0, len(p.Features))
		for _, f := range p.Features {
			badges = append(badges, r.feature.Render("["+f+"]"))
		}
		b.WriteString("  " + strings.Join(badges, " ") + "\n")
	}
	if p.ImageURL != "" {
		b.WriteString("  " + r.faint.Render("Image: "+p.ImageURL) + "\n")
	}
	return b.String()
}

// RenderRecent renders the recent-search list, numbered from 1.
func (r *Renderer) RenderRecent(entries []*homeseek.RecentSearch) string {
	if len(entries) == 0 {
		return "No recent searches.\n"
	}

	var b strings.Builder
	for i, e := range entries {
		b.WriteString(r.printer.Sprintf("%d. ", i+1))
		b.WriteString(r.title.Render(e.Query))
		if !e.Timestamp.IsZero() {
			b.WriteString("  " + r.faint.Render(e.Timestamp.Local().Format("Jan 2, 2006 15:04")))
		}
		if e.StaticPageURL != "" {
			b.WriteString("  " + r.faint.Render("(saved page)"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderError renders a user-facing error message.
func (r *Renderer) RenderError(msg string) string {
	return r.errStyle.Render("Error: "+msg) + "\n"
}

// FormatPrice formats a price with locale grouping, e.g. 1800000 becomes
// "$1,800,000". An absent price renders as "$0".
func (r *Renderer) FormatPrice(price int) string {
	return r.printer.Sprintf("$%d", price)
}
