// Package htmltomarkdown converts backend-generated static result pages to
// Markdown so they can be replayed inside the terminal.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"github.com/mwidmann/homeseek"
)

// Ensure Converter implements homeseek.Converter at compile time.
var _ homeseek.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown with a goquery cleaning pass: script,
// style, and other non-content elements are removed and only the document
// body is converted.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms static page HTML into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", homeseek.Errorf(homeseek.EINVALID, "empty HTML input")
	}

	cleaned, err := clean(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(cleaned)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result) + "\n", nil
}

// clean removes non-content elements and returns the document body.
func clean(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", homeseek.Errorf(homeseek.EINTERNAL, "failed to parse static page HTML")
	}

	doc.Find("script, style, noscript, iframe, link, meta").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return html, nil
	}

	cleaned, err := body.Html()
	if err != nil {
		return "", homeseek.Errorf(homeseek.EINTERNAL, "failed to serialize static page HTML")
	}
	return cleaned, nil
}
