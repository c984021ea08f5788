package store

import (
	"iter"
	"strings"
	"time"

	"github.com/dkurbatov/filevault/internal/models"
)

// Filter narrows a query. A zero Filter matches every record; each unset
// dimension is treated as "match all".
type Filter struct {
	// Query is matched as a case-insensitive substring of the name.
	Query string

	// Type restricts to one file type. Empty or "all" matches every type.
	Type models.FileType

	// SizeMin/SizeMax bound the byte size inclusively.
	SizeMin *int64
	SizeMax *int64

	// ModifiedFrom/ModifiedTo bound ModifiedTime inclusively. The range
	// applies only when both ends are set.
	ModifiedFrom *time.Time
	ModifiedTo   *time.Time
}

// Matches reports whether the record passes every set dimension.
func (f Filter) Matches(r models.FileRecord) bool {
	if f.Query != "" &&
		!strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.Query)) {
		return false
	}
	if f.Type != "" && f.Type != "all" && r.Type != f.Type {
		return false
	}
	if f.SizeMin != nil && r.Size < *f.SizeMin {
		return false
	}
	if f.SizeMax != nil && r.Size > *f.SizeMax {
		return false
	}
	if f.ModifiedFrom != nil && f.ModifiedTo != nil {
		if r.ModifiedTime.Before(*f.ModifiedFrom) || r.ModifiedTime.After(*f.ModifiedTo) {
			return false
		}
	}
	return true
}

// Query returns a lazy, restartable sequence of the records matching f,
// in insertion order. The sequence reflects the store state at iteration
// time, so re-ranging it after a mutation yields fresh results.
func (s *Store) Query(f Filter) iter.Seq[models.FileRecord] {
	return func(yield func(models.FileRecord) bool) {
		for _, id := range s.order {
			r, ok := s.records[id]
			if !ok || !f.Matches(r) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}
