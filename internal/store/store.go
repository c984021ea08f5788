// Package store implements the single source of truth for all file and
// folder records. The secure view is a live projection over the IsSecure
// flag, so the full set and the secure subset cannot diverge.
//
// The store assumes a single logical writer (the interactive user) and is
// not safe for unsynchronized concurrent mutation.
package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkurbatov/filevault/internal/common"
	"github.com/dkurbatov/filevault/internal/logging"
	"github.com/dkurbatov/filevault/internal/models"
)

// Snapshotter persists the current record set. Implementations retry and
// log failures internally; mutations never fail because of persistence.
type Snapshotter interface {
	SaveFiles(ctx context.Context, files, secureFiles []models.FileRecord) error
}

// Store owns every FileRecord plus the current selection set.
type Store struct {
	log       logging.Logger
	snapshots Snapshotter

	records map[string]models.FileRecord
	order   []string // insertion order for stable listing
	selected []string

	now   func() time.Time
	newID func() string
}

// Option customizes a Store; used mostly by tests.
type Option func(*Store)

// WithClock overrides the time source used for ModifiedTime stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id factory used for Add and Copy.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New constructs an empty Store. snapshots may be nil, in which case
// mutations are kept in memory only.
func New(log logging.Logger, snapshots Snapshotter, opts ...Option) *Store {
	s := &Store{
		log:       log,
		snapshots: snapshots,
		records:   make(map[string]models.FileRecord),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load replaces the in-memory record set with a persisted snapshot.
// The legacy secureFiles list is ignored as authoritative; membership is
// taken from each record's IsSecure flag.
func (s *Store) Load(files []models.FileRecord) {
	s.records = make(map[string]models.FileRecord, len(files))
	s.order = s.order[:0]
	for _, r := range files {
		if _, ok := s.records[r.ID]; ok {
			continue
		}
		s.records[r.ID] = r
		s.order = append(s.order, r.ID)
	}
}

// Add inserts a new record. An empty ID is assigned; an empty Type is
// derived from the name's extension. Duplicate names are allowed; a
// duplicate id fails with common.ErrDuplicateID.
func (s *Store) Add(ctx context.Context, rec models.FileRecord) (models.FileRecord, error) {
	if rec.ID == "" {
		rec.ID = s.newID()
	}
	if _, exists := s.records[rec.ID]; exists {
		return models.FileRecord{}, common.ErrDuplicateID
	}
	if rec.Type == "" {
		rec.Type = models.DetectFileType(rec.Name)
	}
	if rec.ModifiedTime.IsZero() {
		rec.ModifiedTime = s.now()
	}
	s.records[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	s.save(ctx)
	return rec, nil
}

// Remove deletes a record from the store. Removing an absent id is a no-op,
// so the operation is idempotent.
func (s *Store) Remove(ctx context.Context, id string) {
	if _, ok := s.records[id]; !ok {
		return
	}
	delete(s.records, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.save(ctx)
}

// Patch carries the mutable fields of a partial update. Nil fields are
// left untouched. Refreshing ModifiedTime is the caller's responsibility.
type Patch struct {
	Name         *string
	Path         *string
	Size         *int64
	Type         *models.FileType
	ModifiedTime *time.Time
	URI          *string
	Thumbnail    *string
	IsSecure     *bool
}

// Update merges the patch into the matching record. Absent ids are a no-op.
func (s *Store) Update(ctx context.Context, id string, p Patch) {
	rec, ok := s.records[id]
	if !ok {
		return
	}
	if p.Name != nil {
		rec.Name = *p.Name
	}
	if p.Path != nil {
		rec.Path = *p.Path
	}
	if p.Size != nil {
		rec.Size = *p.Size
	}
	if p.Type != nil {
		rec.Type = *p.Type
	}
	if p.ModifiedTime != nil {
		rec.ModifiedTime = *p.ModifiedTime
	}
	if p.URI != nil {
		rec.URI = *p.URI
	}
	if p.Thumbnail != nil {
		rec.Thumbnail = *p.Thumbnail
	}
	if p.IsSecure != nil {
		rec.IsSecure = *p.IsSecure
	}
	s.records[id] = rec
	s.save(ctx)
}

// MoveToSecure marks a record as secure. Absent ids are a no-op.
func (s *Store) MoveToSecure(ctx context.Context, id string) {
	s.setSecure(ctx, id, true)
}

// RemoveFromSecure clears the secure flag. Absent or already-plain records
// are a no-op.
func (s *Store) RemoveFromSecure(ctx context.Context, id string) {
	s.setSecure(ctx, id, false)
}

func (s *Store) setSecure(ctx context.Context, id string, secure bool) {
	rec, ok := s.records[id]
	if !ok || rec.IsSecure == secure {
		return
	}
	rec.IsSecure = secure
	s.records[id] = rec
	s.save(ctx)
}

// Copy creates a new record in the destination folder: same content fields,
// a freshly minted id, the destination-derived path and a fresh
// ModifiedTime. The destination must exist and be a directory; otherwise
// common.ErrInvalidDestination is returned and the store is unchanged.
func (s *Store) Copy(ctx context.Context, id, destinationFolderID string) (models.FileRecord, error) {
	src, ok := s.records[id]
	if !ok {
		return models.FileRecord{}, common.ErrNotFound
	}
	dest, err := s.destination(destinationFolderID)
	if err != nil {
		return models.FileRecord{}, err
	}

	cp := src
	cp.ID = s.newID()
	cp.Path = joinPath(dest.Path, src.Name)
	cp.ModifiedTime = s.now()

	s.records[cp.ID] = cp
	s.order = append(s.order, cp.ID)
	s.save(ctx)
	return cp, nil
}

// Move relocates a record into the destination folder, mutating its path
// and ModifiedTime in place; the id is unchanged. Destination validation
// matches Copy.
func (s *Store) Move(ctx context.Context, id, destinationFolderID string) error {
	src, ok := s.records[id]
	if !ok {
		return common.ErrNotFound
	}
	dest, err := s.destination(destinationFolderID)
	if err != nil {
		return err
	}

	src.Path = joinPath(dest.Path, src.Name)
	src.ModifiedTime = s.now()
	s.records[id] = src
	s.save(ctx)
	return nil
}

func (s *Store) destination(id string) (models.FileRecord, error) {
	dest, ok := s.records[id]
	if !ok || !dest.IsDirectory {
		return models.FileRecord{}, common.ErrInvalidDestination
	}
	return dest, nil
}

func joinPath(dir, name string) string {
	return strings.TrimSuffix(dir, "/") + "/" + name
}

// Get returns a record by id.
func (s *Store) Get(id string) (models.FileRecord, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

// Len reports the number of records in the full set.
func (s *Store) Len() int {
	return len(s.records)
}

// Files returns the full record set in insertion order.
func (s *Store) Files() []models.FileRecord {
	out := make([]models.FileRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// SecureFiles returns the secure projection in insertion order.
func (s *Store) SecureFiles() []models.FileRecord {
	var out []models.FileRecord
	for _, id := range s.order {
		if r := s.records[id]; r.IsSecure {
			out = append(out, r)
		}
	}
	return out
}

// save pushes the current snapshot to durable storage. Failures are logged
// and never propagated to the mutating caller.
func (s *Store) save(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveFiles(ctx, s.Files(), s.SecureFiles()); err != nil {
		if s.log != nil {
			s.log.Error(ctx, "file snapshot save failed", "error", err)
		}
	}
}
