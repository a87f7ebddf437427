package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"

	"github.com/anujkhare/codecrafters-previews/internal/datasources"
	"github.com/anujkhare/codecrafters-previews/internal/domain"
)

const rssFeedPageSize = 50

// DownvotesRSS publishes recent downvotes as an RSS feed so the content team
// can watch for pages that need attention.
type DownvotesRSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.DownvoteLister
	CacheMaxAge     time.Duration
}

func (c DownvotesRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Recent Downvotes",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of recent downvotes recorded against concepts and profiles",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	filters := downvoteFiltersFromQuery(r.URL.Query())

	downvotes, err := c.Lister.ListRecentDownvotes(r.Context(), filters, domain.DownvoteListOptions{
		Page:     1,
		PageSize: rssFeedPageSize,
	})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch downvotes for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, d := range downvotes {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          d.ID,
			IsPermaLink: "false",
			Title:       fmt.Sprintf("%s downvoted [%s]", d.TargetID, d.TargetType),
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/%ss/%s", c.FeedHostname, d.TargetType, d.TargetID)},
			Description: fmt.Sprintf("Downvoted by user %s", d.UserID),
			Created:     d.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
