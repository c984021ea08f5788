package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) Repository {
	t.Helper()
	db, repo, err := Open(context.Background(), "file:kv_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Clear(context.Background())
		_ = db.Close()
	})
	return repo
}

func TestSetGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "settings-storage", []byte(`{"darkMode":true}`)))

	got, err := repo.Get(ctx, "settings-storage")
	require.NoError(t, err)
	assert.JSONEq(t, `{"darkMode":true}`, string(got))
}

func TestGet_AbsentKey(t *testing.T) {
	repo := setupRepo(t)

	got, err := repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSet_Overwrites(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v1")))
	require.NoError(t, repo.Set(ctx, "k", []byte("v2")))

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))
}

func TestDeleteListClear(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, "a"))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "2", string(all["b"]))

	require.NoError(t, repo.Clear(ctx))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
