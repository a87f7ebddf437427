package controller

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/anujkhare/codecrafters-previews/internal/datasources"
	"github.com/anujkhare/codecrafters-previews/internal/domain"
)

type DownvotesList struct {
	Lister datasources.DownvoteLister
}

type DownvotesListResponse struct {
	Data []domain.Downvote `json:"data"`
}

func (c DownvotesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	filters := downvoteFiltersFromQuery(r.URL.Query())

	downvotes, err := c.Lister.ListRecentDownvotes(r.Context(), filters, domain.DownvoteListOptions{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch downvotes", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(DownvotesListResponse{
		Data: downvotes,
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write downvotes to response", "error", err)
	}
}

func downvoteFiltersFromQuery(q url.Values) domain.DownvoteFilters {
	var filters domain.DownvoteFilters

	if q.Has("target_type") {
		filters.TargetType = q.Get("target_type")
	}

	return filters
}
