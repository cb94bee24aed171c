package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepo_LoadEmpty(t *testing.T) {
	repo := NewCredentialRepo(setupTestDB(t))

	entries, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestCredentialRepo_RoundTrip(t *testing.T) {
	repo := NewCredentialRepo(setupTestDB(t))
	ctx := context.Background()

	want := map[string]string{
		"github": "Sup3r$ecret1",
		"email":  "An0ther!Secret",
	}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCredentialRepo_SaveReplacesWholesale(t *testing.T) {
	repo := NewCredentialRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, map[string]string{"stale": "entry", "kept": "old"}))
	require.NoError(t, repo.Save(ctx, map[string]string{"kept": "new"}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"kept": "new"}, got)
}

func TestCredentialRepo_SaveEmptyClearsStore(t *testing.T) {
	repo := NewCredentialRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, map[string]string{"github": "x"}))
	require.NoError(t, repo.Save(ctx, map[string]string{}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
