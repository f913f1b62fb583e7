package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

func TestHistoryStore_SaveAndGet(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	analysis := &domain.DocumentAnalysis{
		ID:        "doc-1",
		Score:     82,
		Feedback:  "Solid contract.",
		Timestamp: time.Now(),
	}
	require.NoError(t, store.SaveAnalysis(ctx, analysis))

	got, err := store.GetAnalysis(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, 82, got.Score)
}

func TestHistoryStore_GetMissing(t *testing.T) {
	store := NewHistoryStore()

	_, err := store.GetAnalysis(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryStore_SaveReplacesByID(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.SaveAnalysis(ctx, &domain.DocumentAnalysis{ID: "doc-1", Score: 50}))
	require.NoError(t, store.SaveAnalysis(ctx, &domain.DocumentAnalysis{ID: "doc-1", Score: 90}))

	got, err := store.GetAnalysis(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, 90, got.Score)

	list, err := store.ListAnalyses(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestHistoryStore_ListNewestFirst(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, store.SaveAnalysis(ctx, &domain.DocumentAnalysis{ID: "old", Timestamp: base.Add(-time.Hour)}))
	require.NoError(t, store.SaveAnalysis(ctx, &domain.DocumentAnalysis{ID: "new", Timestamp: base}))

	list, err := store.ListAnalyses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "old", list[1].ID)
}

func TestHistoryStore_SaveInvalid(t *testing.T) {
	store := NewHistoryStore()

	assert.ErrorIs(t, store.SaveAnalysis(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.SaveAnalysis(context.Background(), &domain.DocumentAnalysis{}), domain.ErrInvalidInput)
}
