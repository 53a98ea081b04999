// Package homeseek provides a CLI client for a natural-language real-estate
// search service. A free-text query is forwarded to the backend search
// endpoint, and the returned property listings, search summary, and location
// overview are rendered in the terminal. Past searches are kept in a small
// persisted history that can replay backend-generated static result pages.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, lipgloss/, htmltomarkdown/).
package homeseek
