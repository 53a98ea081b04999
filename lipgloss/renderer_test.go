package lipgloss_test

import (
	"testing"
	"time"

	"github.com/mwidmann/homeseek"
	"github.com/mwidmann/homeseek/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderer_FormatPrice(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer()

	assert.Equal(t, "$1,800,000", r.FormatPrice(1800000))
	assert.Equal(t, "$950", r.FormatPrice(950))
	assert.Equal(t, "$0", r.FormatPrice(0))
}

func TestRenderer_RenderResult(t *testing.T) {
	t.Parallel()

	t.Run("renders a full result", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer()
		out := r.RenderResult(&homeseek.SearchResult{
			Properties: []homeseek.Property{{
				Title:    "Beach Villa",
				Price:    1800000,
				Location: "Maui, HI",
				Summary:  "Oceanfront villa with private beach access.",
				Features: []string{"oceanfront", "3BR"},
				ImageURL: "https://img.example/v.jpg",
			}},
			StaticPageURL:    "/pages/abc123",
			SearchSummary:    "Found 1 match",
			LocationOverview: "## Maui\nPopular coastal area.",
		})

		assert.Contains(t, out, "Found 1 match")
		assert.Contains(t, out, "Beach Villa")
		assert.Contains(t, out, "$1,800,000")
		assert.Contains(t, out, "Maui, HI")
		assert.Contains(t, out, "[oceanfront]")
		assert.Contains(t, out, "[3BR]")
		assert.Contains(t, out, "https://img.example/v.jpg")
		assert.Contains(t, out, "Location Overview")
		assert.Contains(t, out, "Popular coastal area.")
		assert.Contains(t, out, "/pages/abc123")
	})

	t.Run("applies fallbacks for absent fields", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer()
		out := r.RenderResult(&homeseek.SearchResult{
			Properties: []homeseek.Property{{}},
		})

		assert.Contains(t, out, "Property")
		assert.Contains(t, out, "$0")
		assert.Contains(t, out, "Location not specified")
	})

	t.Run("empty result", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer()
		out := r.RenderResult(&homeseek.SearchResult{})

		assert.Contains(t, out, "No properties found.")
	})
}

func TestRenderer_RenderRecent(t *testing.T) {
	t.Parallel()

	t.Run("numbers entries from one", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer()
		out := r.RenderRecent([]*homeseek.RecentSearch{
			{Query: "beach house in Maui", StaticPageURL: "/pages/a", Timestamp: time.Now()},
			{Query: "condos in Chicago"},
		})

		assert.Contains(t, out, "1. ")
		assert.Contains(t, out, "beach house in Maui")
		assert.Contains(t, out, "(saved page)")
		assert.Contains(t, out, "2. ")
		assert.Contains(t, out, "condos in Chicago")
	})

	t.Run("empty history", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer()
		assert.Contains(t, r.RenderRecent(nil), "No recent searches.")
	})
}

func TestRenderer_RenderMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("renders headings and lists", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer()
		out := r.RenderMarkdown("## Maui\n\n- warm climate\n- strong rental market\n\n1. first\n2. second\n\nPopular coastal area.")

		assert.Contains(t, out, "Maui")
		assert.NotContains(t, out, "##")
		assert.Contains(t, out, "• warm climate")
		assert.Contains(t, out, "1. first")
		assert.Contains(t, out, "Popular coastal area.")
	})

	t.Run("strips raw HTML", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer()
		out := r.RenderMarkdown(`Before <script>alert("x")</script> after <img src="y"> done.`)

		assert.NotContains(t, out, "<script>")
		assert.NotContains(t, out, "<img")
		assert.Contains(t, out, "Before")
		assert.Contains(t, out, "after")
		assert.Contains(t, out, "done.")
	})

	t.Run("resolves emphasis markers", func(t *testing.T) {
		t.Parallel()

		r := lipgloss.NewRenderer()
		out := r.RenderMarkdown("This is **bold** and *italic* and `code`.")

		assert.Contains(t, out, "bold")
		assert.Contains(t, out, "italic")
		assert.Contains(t, out, "code")
		assert.NotContains(t, out, "**")
		assert.NotContains(t, out, "`")
	})
}

func TestRenderer_RenderError(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer()
	assert.Contains(t, r.RenderError("search index unavailable"), "Error: search index unavailable")
}
