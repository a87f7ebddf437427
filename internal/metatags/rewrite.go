package metatags

import (
	"html"
	"regexp"

	"github.com/anujkhare/codecrafters-previews/internal/domain"
)

// Rule targets the meta tag whose Attr attribute equals Value and replaces
// that tag's content attribute value with Content.
type Rule struct {
	Attr    string
	Value   string
	Content string
}

var contentAttrPattern = regexp.MustCompile(`(?i)\bcontent=("[^"]*"|'[^']*')`)

// Apply folds the rules over the document text in order. Each step is a pure
// text-to-text substitution: it rewrites only the content attribute of meta
// tags matching the rule and leaves the rest of the document byte-for-byte
// intact. Replacing an already-replaced tag with the same rule is a no-op,
// so applying the same rule twice yields the same document.
func Apply(doc string, rules []Rule) string {
	for _, rule := range rules {
		doc = rule.apply(doc)
	}
	return doc
}

func (r Rule) apply(doc string) string {
	// Tags may carry their attributes in any order and either quote style.
	tagPattern := regexp.MustCompile(
		`(?i)<meta\b[^>]*\b` + regexp.QuoteMeta(r.Attr) + `=["']` + regexp.QuoteMeta(r.Value) + `["'][^>]*/?>`,
	)

	content := html.EscapeString(r.Content)
	return tagPattern.ReplaceAllStringFunc(doc, func(tag string) string {
		return contentAttrPattern.ReplaceAllStringFunc(tag, func(string) string {
			return `content="` + content + `"`
		})
	})
}

// PreviewRules is the ordered substitution list applied to the HTML shell for
// a matched preview route: the plain description tag, the Open Graph triple,
// and the Twitter card triple.
func PreviewRules(meta domain.PageMeta) []Rule {
	return []Rule{
		{Attr: "name", Value: "description", Content: meta.Description},
		{Attr: "property", Value: "og:title", Content: meta.Title},
		{Attr: "property", Value: "og:description", Content: meta.Description},
		{Attr: "property", Value: "og:image", Content: meta.ImageURL},
		{Attr: "name", Value: "twitter:title", Content: meta.Title},
		{Attr: "name", Value: "twitter:description", Content: meta.Description},
		{Attr: "name", Value: "twitter:image", Content: meta.ImageURL},
	}
}
