package domain

import "strings"

// PageMeta is the request-scoped triple substituted into the HTML shell's
// social meta tags. It is computed per request and never persisted.
type PageMeta struct {
	Title       string
	Description string
	ImageURL    string
}

// ConceptMetadata is the enriched metadata the concept API returns for a slug.
type ConceptMetadata struct {
	Title               string `json:"title"`
	DescriptionMarkdown string `json:"description_markdown"`
}

// TitleFromSlug derives a human-readable title from a hyphenated slug:
// "network-protocols" becomes "Network Protocols". Slugs are URL-safe ASCII,
// so per-byte case conversion is sufficient.
func TitleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
