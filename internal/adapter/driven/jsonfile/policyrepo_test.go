package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/passvault/internal/domain/model"
)

func settingsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "settings.json")
}

func TestPolicyRepo_LoadMissingFileYieldsDefaults(t *testing.T) {
	repo := NewPolicyRepo(settingsPath(t))

	policy, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.DefaultPolicy(), policy)
}

func TestPolicyRepo_RoundTrip(t *testing.T) {
	repo := NewPolicyRepo(settingsPath(t))
	ctx := context.Background()

	want := model.Policy{
		MinLength:      12,
		MaxLength:      64,
		RequireSpecial: false,
		RequireCapital: true,
		RequireNumber:  false,
	}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPolicyRepo_PartialFileOverlaysDefaults(t *testing.T) {
	path := settingsPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"min_length": 10}`), 0o600))

	policy, err := NewPolicyRepo(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, policy.MinLength)
	assert.Equal(t, model.DefaultMaxLength, policy.MaxLength)
	assert.True(t, policy.RequireSpecial)
	assert.True(t, policy.RequireCapital)
	assert.True(t, policy.RequireNumber)
}

func TestPolicyRepo_UnknownKeysIgnored(t *testing.T) {
	path := settingsPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"max_length": 30, "theme": "dark"}`), 0o600))

	policy, err := NewPolicyRepo(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 30, policy.MaxLength)
	assert.Equal(t, model.DefaultMinLength, policy.MinLength)
}

func TestPolicyRepo_MalformedFileYieldsDefaults(t *testing.T) {
	path := settingsPath(t)
	require.NoError(t, os.WriteFile(path, []byte("min_length = 10"), 0o600))

	policy, err := NewPolicyRepo(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.DefaultPolicy(), policy)
}

func TestPolicyRepo_SaveWritesEveryKey(t *testing.T) {
	path := settingsPath(t)
	repo := NewPolicyRepo(path)

	require.NoError(t, repo.Save(context.Background(), model.DefaultPolicy()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, key := range []string{"min_length", "max_length", "require_special", "require_capital", "require_number"} {
		assert.Contains(t, string(data), key)
	}
}
