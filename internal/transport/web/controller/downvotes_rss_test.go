package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anujkhare/codecrafters-previews/internal/datasources/mocks"
	"github.com/anujkhare/codecrafters-previews/internal/domain"
)

func TestDownvotesRSS_ServeHTTP(t *testing.T) {
	testTime := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("successful_feed", func(t *testing.T) {
		lister := mocks.NewMockDownvoteLister(t)
		lister.EXPECT().
			ListRecentDownvotes(mock.Anything, domain.DownvoteFilters{}, domain.DownvoteListOptions{
				Page:     1,
				PageSize: rssFeedPageSize,
			}).
			Return([]domain.Downvote{
				{
					ID:         "2c1743a3-91b7-4c36-87f8-7f04c4bc9f52",
					TargetID:   "network-protocols",
					TargetType: "concept",
					UserID:     "user456",
					CreatedAt:  testTime,
				},
			}, nil)

		controller := DownvotesRSS{
			FeedHostname:    "https://app.example.com",
			FeedPath:        "/rss/downvotes",
			FeedAuthorName:  "Content Team",
			FeedAuthorEmail: "content@example.com",
			Lister:          lister,
			CacheMaxAge:     time.Hour,
		}

		req := testContext()(httptest.NewRequest(http.MethodGet, "/rss/downvotes", nil))
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
		assert.Equal(t, "max-age=3600", rec.Header().Get("Cache-Control"))

		body := rec.Body.String()
		assert.Contains(t, body, "network-protocols downvoted [concept]")
		assert.Contains(t, body, "https://app.example.com/concepts/network-protocols")
		assert.Contains(t, body, "Downvoted by user user456")
	})

	t.Run("storage_error", func(t *testing.T) {
		lister := mocks.NewMockDownvoteLister(t)
		lister.EXPECT().
			ListRecentDownvotes(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("database error"))

		controller := DownvotesRSS{Lister: lister}

		req := testContext()(httptest.NewRequest(http.MethodGet, "/rss/downvotes", nil))
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
