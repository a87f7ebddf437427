package mysql

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/anujkhare/codecrafters-previews/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}

	db, err := Connect(context.Background(), os.Getenv("MYSQL_URI"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS downvotes (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		user_id VARCHAR(255) NOT NULL,
		target_id VARCHAR(255) NOT NULL,
		target_type VARCHAR(64) NOT NULL,
		metadata JSON NULL,
		created_at DATETIME NOT NULL,
		UNIQUE KEY downvotes_user_target (user_id, target_type, target_id)
	)`)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = db.Exec("DELETE FROM downvotes")
		_ = db.Close()
	})

	return db
}

func TestRepository_SetDownvote_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	err := repo.SetDownvote(ctx, "concept", "network-protocols", "user123", true, map[string]any{
		"reason": "outdated",
	})
	require.NoError(t, err)

	downvotes, err := repo.ListRecentDownvotes(ctx, domain.DownvoteFilters{}, domain.DownvoteListOptions{
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, downvotes, 1)

	d := downvotes[0]
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "user123", d.UserID)
	assert.Equal(t, "network-protocols", d.TargetID)
	assert.Equal(t, "concept", d.TargetType)
	assert.Equal(t, map[string]any{"reason": "outdated"}, d.Metadata)
	assert.False(t, d.CreatedAt.IsZero())
}

func TestRepository_SetDownvote_RepeatKeepsSingleRow(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	require.NoError(t, repo.SetDownvote(ctx, "concept", "dns", "user123", true, nil))
	require.NoError(t, repo.SetDownvote(ctx, "concept", "dns", "user123", true, map[string]any{
		"reason": "second thoughts",
	}))

	downvotes, err := repo.ListRecentDownvotes(ctx, domain.DownvoteFilters{}, domain.DownvoteListOptions{
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, downvotes, 1)
	assert.Equal(t, map[string]any{"reason": "second thoughts"}, downvotes[0].Metadata)
}

func TestRepository_SetDownvote_ClearRemovesRow(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	require.NoError(t, repo.SetDownvote(ctx, "concept", "dns", "user123", true, nil))
	require.NoError(t, repo.SetDownvote(ctx, "concept", "dns", "user123", false, nil))

	downvotes, err := repo.ListRecentDownvotes(ctx, domain.DownvoteFilters{}, domain.DownvoteListOptions{
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, downvotes)
}

func TestRepository_ListRecentDownvotes_FilterByTargetType(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	require.NoError(t, repo.SetDownvote(ctx, "concept", "dns", "user123", true, nil))
	require.NoError(t, repo.SetDownvote(ctx, "course", "build-your-own-dns", "user123", true, nil))

	downvotes, err := repo.ListRecentDownvotes(ctx,
		domain.DownvoteFilters{TargetType: "concept"},
		domain.DownvoteListOptions{Page: 1, PageSize: 10},
	)
	require.NoError(t, err)
	require.Len(t, downvotes, 1)
	assert.Equal(t, "dns", downvotes[0].TargetID)
}
