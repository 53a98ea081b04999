package homeseek

// Converter converts HTML to Markdown.
// Used to replay cached static result pages inside the terminal.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Script, style, and other non-content elements are discarded;
	// only the document body is converted.
	Convert(html string) (string, error)
}
