package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonindia/office-assistant/internal/adapters/database"
	"github.com/simonindia/office-assistant/internal/domain/entities"
)

func TestLearningMemoryAdapter_ListNewestFirst(t *testing.T) {
	repo := database.NewLearningMemoryAdapter(newTestClient(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)
	for i, text := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, repo.Create(ctx, &entities.LearningMemory{
			Context:    text,
			Correction: "fix " + text,
			Category:   "brief_length",
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}))
	}

	memories, err := repo.List(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, memories, 3)
	assert.Equal(t, "newest", memories[0].Context)
	assert.Equal(t, "oldest", memories[2].Context)
}

func TestLearningMemoryAdapter_CategoryFilter(t *testing.T) {
	repo := database.NewLearningMemoryAdapter(newTestClient(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.LearningMemory{
		Context: "tone", Correction: "be warmer", Category: "email_tone",
	}))
	require.NoError(t, repo.Create(ctx, &entities.LearningMemory{
		Context: "length", Correction: "shorter", Category: "brief_length",
	}))

	memories, err := repo.List(ctx, "email_tone", 10)
	require.NoError(t, err)
	require.Len(t, memories, 1)
	assert.Equal(t, "tone", memories[0].Context)

	memories, err = repo.List(ctx, "unknown_category", 10)
	require.NoError(t, err)
	assert.Empty(t, memories)
	assert.NotNil(t, memories)
}

func TestLearningMemoryAdapter_Limit(t *testing.T) {
	repo := database.NewLearningMemoryAdapter(newTestClient(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &entities.LearningMemory{
			Context:    "entry",
			Correction: "fix",
			Category:   "misc",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	memories, err := repo.List(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, memories, 2)
}
