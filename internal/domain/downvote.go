package domain

import "time"

// Downvote records a user voting down a target entity, such as a concept.
// Metadata is an open key-value bag owned by the caller; this layer stores it
// opaquely and never inspects its contents.
type Downvote struct {
	ID         string         `json:"id"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	TargetID   string         `json:"target_id"`
	TargetType string         `json:"target_type"`
	UserID     string         `json:"user_id"`
	CreatedAt  time.Time      `json:"created_at"`
}

type DownvoteFilters struct {
	TargetType string
}

type DownvoteListOptions struct {
	Page, PageSize int
}
