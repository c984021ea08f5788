package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkurbatov/filevault/internal/common"
	"github.com/dkurbatov/filevault/internal/models"
)

// memRepo is an in-memory kv.Repository that can fail a set number of times.
type memRepo struct {
	data     map[string][]byte
	failNext int
	sets     int
}

func newMemRepo() *memRepo {
	return &memRepo{data: map[string][]byte{}}
}

func (m *memRepo) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memRepo) Set(_ context.Context, key string, value []byte) error {
	m.sets++
	if m.failNext > 0 {
		m.failNext--
		return errors.New("transient failure")
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memRepo) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memRepo) List(_ context.Context) (map[string][]byte, error) {
	return m.data, nil
}

func (m *memRepo) Clear(_ context.Context) error {
	m.data = map[string][]byte{}
	return nil
}

func TestFilesRoundTrip(t *testing.T) {
	repo := newMemRepo()
	p := NewPersister(repo, 0, time.Millisecond)
	ctx := context.Background()

	files := []models.FileRecord{
		{ID: "a", Name: "a.txt", Path: "/a.txt", Type: models.FileTypeDocument},
		{ID: "b", Name: "b.jpg", Path: "/b.jpg", Type: models.FileTypeImage, IsSecure: true},
	}
	secure := files[1:]

	require.NoError(t, p.SaveFiles(ctx, files, secure))

	loaded, err := p.LoadFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, files, loaded)
}

func TestSettingsRoundTrip(t *testing.T) {
	repo := newMemRepo()
	p := NewPersister(repo, 0, time.Millisecond)
	ctx := context.Background()

	pin := "argon2id$aa$bb"
	in := models.Settings{DarkMode: true, AppLockEnabled: true, Pin: &pin}
	require.NoError(t, p.SaveSettings(ctx, in))

	out, found, err := p.LoadSettings(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestLoad_FreshInstall(t *testing.T) {
	p := NewPersister(newMemRepo(), 0, time.Millisecond)
	ctx := context.Background()

	files, err := p.LoadFiles(ctx)
	require.NoError(t, err)
	assert.Nil(t, files)

	_, found, err := p.LoadSettings(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSave_RetriesTransientFailures(t *testing.T) {
	repo := newMemRepo()
	repo.failNext = 2
	p := NewPersister(repo, 3, time.Millisecond)

	err := p.SaveSettings(context.Background(), models.Settings{})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.sets)
}

func TestSave_ExhaustedRetries(t *testing.T) {
	repo := newMemRepo()
	repo.failNext = 10
	p := NewPersister(repo, 2, time.Millisecond)

	err := p.SaveSettings(context.Background(), models.Settings{})
	require.ErrorIs(t, err, common.ErrPersistence)
}

func TestLoad_CorruptSnapshot(t *testing.T) {
	repo := newMemRepo()
	repo.data[filesKey] = []byte("{not json")
	repo.data[settingsKey] = []byte("]")
	p := NewPersister(repo, 0, time.Millisecond)
	ctx := context.Background()

	_, err := p.LoadFiles(ctx)
	require.ErrorIs(t, err, common.ErrPersistence)

	_, _, err = p.LoadSettings(ctx)
	require.ErrorIs(t, err, common.ErrPersistence)
}

func TestSaveFiles_WritesSecureProjection(t *testing.T) {
	repo := newMemRepo()
	p := NewPersister(repo, 0, time.Millisecond)
	ctx := context.Background()

	files := []models.FileRecord{
		{ID: "a", Name: "plain.txt"},
		{ID: "b", Name: "secret.txt", IsSecure: true},
	}
	require.NoError(t, p.SaveFiles(ctx, files, files[1:]))

	assert.Contains(t, string(repo.data[filesKey]), `"secureFiles"`)
	assert.Contains(t, string(repo.data[filesKey]), `"secret.txt"`)
}
