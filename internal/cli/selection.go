package cli

import (
	"context"
	"fmt"

	"github.com/dkurbatov/filevault/internal/common"
)

// Select adds a record to the selection set.
func (a *App) Select(id string) error {
	if _, ok := a.store.Get(id); !ok {
		fmt.Fprintln(a.out, "No such record:", id)
		return common.ErrNotFound
	}
	a.store.Select(id)
	fmt.Fprintf(a.out, "%d selected\n", len(a.store.Selected()))
	return nil
}

// Deselect removes a record from the selection set.
func (a *App) Deselect(id string) error {
	a.store.Deselect(id)
	fmt.Fprintf(a.out, "%d selected\n", len(a.store.Selected()))
	return nil
}

// ShowSelection prints the currently selected records.
func (a *App) ShowSelection() error {
	ids := a.store.Selected()
	if len(ids) == 0 {
		fmt.Fprintln(a.out, "Nothing selected.")
		return nil
	}
	for _, id := range ids {
		if r, ok := a.store.Get(id); ok {
			a.printRecord(r)
		}
	}
	return nil
}

// ClearSelection empties the selection set.
func (a *App) ClearSelection() error {
	a.store.ClearSelection()
	fmt.Fprintln(a.out, "Selection cleared.")
	return nil
}

// RemoveSelected deletes every selected record and clears the selection.
func (a *App) RemoveSelected(ctx context.Context) error {
	n := len(a.store.Selected())
	a.store.RemoveSelected(ctx)
	fmt.Fprintf(a.out, "Removed %d record(s)\n", n)
	return nil
}

// SecureSelected moves every selected record to the secure folder and
// clears the selection.
func (a *App) SecureSelected(ctx context.Context) error {
	n := len(a.store.Selected())
	a.store.SecureSelected(ctx)
	fmt.Fprintf(a.out, "Moved %d record(s) to the secure folder\n", n)
	return nil
}
