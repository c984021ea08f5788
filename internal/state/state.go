// Package state maps the in-memory store and settings onto the durable
// key-value layout shared with the mobile client: one record for settings
// and one for files. Saves are retried with exponential backoff; a save
// that still fails is reported as a persistence error for the caller to
// log, never to surface.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dkurbatov/filevault/internal/common"
	"github.com/dkurbatov/filevault/internal/models"
	"github.com/dkurbatov/filevault/internal/repositories/kv"
)

const (
	// Key names match the original AsyncStorage records.
	settingsKey = "settings-storage"
	filesKey    = "file-storage"
)

// fileSnapshot is the persisted file record. secureFiles duplicates the
// records with isSecure set; it is written as a projection for layout
// compatibility and ignored as authoritative on load.
type fileSnapshot struct {
	Files       []models.FileRecord `json:"files"`
	SecureFiles []models.FileRecord `json:"secureFiles"`
}

// Persister reads and writes both snapshot records through a kv.Repository.
type Persister struct {
	repo        kv.Repository
	maxRetries  uint64
	baseBackoff time.Duration
}

// NewPersister constructs a Persister. maxRetries is the number of retries
// after the first attempt; baseBackoff seeds the exponential backoff.
func NewPersister(repo kv.Repository, maxRetries uint64, baseBackoff time.Duration) *Persister {
	if baseBackoff <= 0 {
		baseBackoff = 50 * time.Millisecond
	}
	return &Persister{repo: repo, maxRetries: maxRetries, baseBackoff: baseBackoff}
}

// SaveFiles persists the full record set and the secure projection.
func (p *Persister) SaveFiles(ctx context.Context, files, secureFiles []models.FileRecord) error {
	data, err := json.Marshal(fileSnapshot{Files: files, SecureFiles: secureFiles})
	if err != nil {
		return fmt.Errorf("%w: marshal files: %w", common.ErrPersistence, err)
	}
	return p.set(ctx, filesKey, data)
}

// SaveSettings persists the settings record.
func (p *Persister) SaveSettings(ctx context.Context, s models.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: marshal settings: %w", common.ErrPersistence, err)
	}
	return p.set(ctx, settingsKey, data)
}

// LoadFiles returns the persisted record set, or nil when no snapshot
// exists yet (fresh install).
func (p *Persister) LoadFiles(ctx context.Context) ([]models.FileRecord, error) {
	data, err := p.repo.Get(ctx, filesKey)
	if err != nil {
		return nil, fmt.Errorf("%w: load files: %w", common.ErrPersistence, err)
	}
	if data == nil {
		return nil, nil
	}
	var snap fileSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: decode files: %w", common.ErrPersistence, err)
	}
	return snap.Files, nil
}

// LoadSettings returns the persisted settings record. found is false on a
// fresh install, in which case the zero-value defaults apply.
func (p *Persister) LoadSettings(ctx context.Context) (s models.Settings, found bool, err error) {
	data, err := p.repo.Get(ctx, settingsKey)
	if err != nil {
		return s, false, fmt.Errorf("%w: load settings: %w", common.ErrPersistence, err)
	}
	if data == nil {
		return s, false, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, false, fmt.Errorf("%w: decode settings: %w", common.ErrPersistence, err)
	}
	return s, true, nil
}

func (p *Persister) set(ctx context.Context, key string, value []byte) error {
	backoff := retry.WithMaxRetries(p.maxRetries, retry.NewExponential(p.baseBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := p.repo.Set(ctx, key, value); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: set %s: %w", common.ErrPersistence, key, err)
	}
	return nil
}
