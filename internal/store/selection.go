package store

import "context"

// Select adds a record id to the selection set. Selecting an id twice or
// selecting an unknown id has no effect. Selection state is never persisted.
func (s *Store) Select(id string) {
	if _, ok := s.records[id]; !ok {
		return
	}
	for _, v := range s.selected {
		if v == id {
			return
		}
	}
	s.selected = append(s.selected, id)
}

// Deselect removes an id from the selection set.
func (s *Store) Deselect(id string) {
	for i, v := range s.selected {
		if v == id {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
}

// ClearSelection empties the selection set.
func (s *Store) ClearSelection() {
	s.selected = nil
}

// Selected returns the selected ids in selection order.
func (s *Store) Selected() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// RemoveSelected deletes every selected record. Each deletion is applied
// independently; the selection is cleared on completion.
func (s *Store) RemoveSelected(ctx context.Context) {
	for _, id := range s.Selected() {
		s.Remove(ctx, id)
	}
	s.ClearSelection()
}

// SecureSelected marks every selected record as secure, each independently,
// and clears the selection on completion.
func (s *Store) SecureSelected(ctx context.Context) {
	for _, id := range s.Selected() {
		s.MoveToSecure(ctx, id)
	}
	s.ClearSelection()
}
