package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/anujkhare/codecrafters-previews/internal/datasources"
	"github.com/anujkhare/codecrafters-previews/internal/domain"
)

var _ datasources.DownvoteRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// The downvotes table carries a unique key on (user_id, target_type,
// target_id), so a repeat downvote refreshes the stored metadata rather than
// inserting a second row.
const upsertDownvoteSQL = `
INSERT INTO downvotes (id, user_id, target_id, target_type, metadata, created_at)
VALUES (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE metadata = VALUES(metadata)`

const deleteDownvoteSQL = `
DELETE FROM downvotes WHERE user_id = ? AND target_type = ? AND target_id = ?`

func (r *Repository) SetDownvote(
	ctx context.Context, targetType, targetID, userID string,
	downvoted bool, metadata map[string]any,
) error {
	if !downvoted {
		if _, err := r.db.ExecContext(ctx, deleteDownvoteSQL, userID, targetType, targetID); err != nil {
			return fmt.Errorf("deleting downvote: %w", err)
		}
		return nil
	}

	var metadataJSON sql.NullString
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("marshalling downvote metadata: %w", err)
		}
		metadataJSON = sql.NullString{String: string(b), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, upsertDownvoteSQL,
		uuid.NewString(), userID, targetID, targetType, metadataJSON, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upserting downvote: %w", err)
	}

	return nil
}

func (r *Repository) ListRecentDownvotes(
	ctx context.Context,
	filters domain.DownvoteFilters,
	options domain.DownvoteListOptions,
) ([]domain.Downvote, error) {
	sb := sqlbuilder.Select("id", "user_id", "target_id", "target_type", "metadata", "created_at")
	sb.From("downvotes")

	if filters.TargetType != "" {
		sb.Where(sb.Equal("target_type", filters.TargetType))
	}

	sb.OrderBy("created_at DESC")
	sb.Offset((options.Page - 1) * options.PageSize)
	sb.Limit(options.PageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running downvotes query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	downvotes := []domain.Downvote{}
	for rows.Next() {
		var (
			d            domain.Downvote
			metadataJSON sql.NullString
		)
		if err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.TargetID,
			&d.TargetType,
			&metadataJSON,
			&d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning downvotes: %w", err)
		}

		if metadataJSON.Valid {
			if err := json.Unmarshal([]byte(metadataJSON.String), &d.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshalling downvote metadata: %w", err)
			}
		}

		downvotes = append(downvotes, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return downvotes, nil
}
