package router

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/anujkhare/codecrafters-previews/internal/datasources"
	"github.com/anujkhare/codecrafters-previews/internal/domain"
	"github.com/anujkhare/codecrafters-previews/internal/metatags"
)

// Segment is any run of characters excluding "/" and "?".
var (
	userRoutePattern    = regexp.MustCompile(`^/users/([^/?]+)$`)
	conceptRoutePattern = regexp.MustCompile(`^/concepts/([^/?]+)$`)
)

// NewPreviewMiddleware creates a middleware that intercepts user-profile and
// concept page requests and responds with the HTML shell, its social meta
// tags rewritten for the requested page. Requests matching neither route pass
// through to the next handler unmodified.
//
// The shell is loaded on every invocation rather than cached, so a deploy
// that replaces it takes effect immediately.
func NewPreviewMiddleware(
	shell datasources.ShellLoader,
	concepts datasources.ConceptMetadataFetcher,
	ogImageBaseURL string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := domain.LoggerFromContext(r.Context())

			meta, matched := previewMetaForPath(r, concepts, ogImageBaseURL)
			if !matched {
				logger.ErrorContext(r.Context(), "unable to parse URL for preview rewrite", "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}

			doc, err := shell.LoadShell(r.Context())
			if err != nil {
				logger.ErrorContext(r.Context(), "unable to load HTML shell", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			rewritten := metatags.Apply(doc, metatags.PreviewRules(meta))

			w.Header().Set("Content-Type", "text/html")
			if _, err := w.Write([]byte(rewritten)); err != nil {
				logger.ErrorContext(r.Context(), "unable to write rewritten shell to response", "error", err)
			}
		})
	}
}

// previewMetaForPath derives the title, description and image for the
// requested page. The second return value reports whether the path matched a
// preview route at all.
func previewMetaForPath(
	r *http.Request,
	concepts datasources.ConceptMetadataFetcher,
	ogImageBaseURL string,
) (domain.PageMeta, bool) {
	if m := userRoutePattern.FindStringSubmatch(r.URL.Path); m != nil {
		username := m[1]
		return domain.PageMeta{
			Title:       fmt.Sprintf("%s's Profile", username),
			Description: fmt.Sprintf("View %s's profile on CodeCrafters.", username),
			ImageURL:    fmt.Sprintf("%s/users/%s.png", ogImageBaseURL, username),
		}, true
	}

	if m := conceptRoutePattern.FindStringSubmatch(r.URL.Path); m != nil {
		slug := m[1]
		title := domain.TitleFromSlug(slug)
		meta := domain.PageMeta{
			Title:       title,
			Description: fmt.Sprintf("View the %s concept on CodeCrafters.", title),
			ImageURL:    fmt.Sprintf("%s/concepts/%s.png", ogImageBaseURL, slug),
		}

		enriched, err := concepts.FetchConceptMetadata(r.Context(), slug)
		if err != nil {
			// Non-fatal: fall back to the slug-derived values.
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "unable to fetch concept metadata, using fallback",
				"slug", slug,
				"error", err,
			)
			return meta, true
		}

		meta.Title = enriched.Title
		meta.Description = enriched.DescriptionMarkdown
		return meta, true
	}

	return domain.PageMeta{}, false
}
