package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/anujkhare/codecrafters-previews/internal/datasources"
	"github.com/anujkhare/codecrafters-previews/internal/transport/web/controller"
)

func MakeRouter(
	downvotes datasources.DownvoteRepository,
	shell datasources.ShellLoader,
	concepts datasources.ConceptMetadataFetcher,
	ogImageBaseURL string,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	rssCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/downvotes", requireAuthMiddleware(controller.DownvotesList{
		Lister: downvotes,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/downvotes/{target_type}/{target_id}/{downvote}", requireAuthMiddleware(controller.DownvoteSet{
		Setter: downvotes,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/rss/downvotes", controller.DownvotesRSS{
		FeedHostname:    rssFeedBaseURL,
		FeedPath:        "/rss/downvotes",
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		Lister:          downvotes,
		CacheMaxAge:     rssCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	// Everything else is a page request: preview routes get their meta tags
	// rewritten, the rest fall through to the plain shell.
	previews := NewPreviewMiddleware(shell, concepts, ogImageBaseURL)
	r.PathPrefix("/").Handler(previews(controller.ShellPage{
		Shell: shell,
	})).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
