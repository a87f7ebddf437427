package datasources

import (
	"context"

	"github.com/anujkhare/codecrafters-previews/internal/domain"
)

type DownvoteRepository interface {
	DownvoteSetter
	DownvoteLister
}

type DownvoteSetter interface {
	// SetDownvote records (true) or clears (false) the user's downvote on the
	// target, keeping at most one active row per user and target.
	SetDownvote(ctx context.Context, targetType, targetID, userID string, downvoted bool, metadata map[string]any) error
}

type DownvoteLister interface {
	ListRecentDownvotes(ctx context.Context, filters domain.DownvoteFilters, options domain.DownvoteListOptions) ([]domain.Downvote, error)
}
