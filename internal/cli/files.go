package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dkurbatov/filevault/internal/common"
	"github.com/dkurbatov/filevault/internal/models"
	"github.com/dkurbatov/filevault/internal/store"
)

// MkDir creates a folder record at the root path.
func (a *App) MkDir(ctx context.Context, name string) error {
	rec, err := a.store.Add(ctx, models.FileRecord{
		Name:        name,
		Path:        "/" + name,
		IsDirectory: true,
	})
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Created folder %s (%s)\n", rec.Name, rec.ID)
	return nil
}

// Touch creates an empty file record; the type is derived from the name.
func (a *App) Touch(ctx context.Context, name string) error {
	rec, err := a.store.Add(ctx, models.FileRecord{
		Name: name,
		Path: "/" + name,
	})
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Created %s %s (%s)\n", rec.Type, rec.Name, rec.ID)
	return nil
}

// Import registers an existing local file or s3:// object as a record,
// keeping the original location as the record's content URI.
func (a *App) Import(ctx context.Context, path string) error {
	storage, err := a.storageFor(ctx, path)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	info, err := storage.Stat(ctx, path)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	if !info.Exists {
		fmt.Fprintln(a.out, "No such file:", path)
		return common.ErrNotFound
	}

	name := filepath.Base(path)
	rec, err := a.store.Add(ctx, models.FileRecord{
		Name:         name,
		Path:         "/" + name,
		Size:         info.Size,
		IsDirectory:  info.IsDirectory,
		ModifiedTime: info.ModTime,
		URI:          path,
	})
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Imported %s (%s, %s)\n", rec.Name, rec.ID, models.FormatFileSize(rec.Size))
	return nil
}

// Rename prompts for a new name and updates the record. The type is
// re-derived from the new name for file records.
func (a *App) Rename(ctx context.Context, id string) error {
	rec, ok := a.store.Get(id)
	if !ok {
		fmt.Fprintln(a.out, "No such record:", id)
		return common.ErrNotFound
	}
	name, err := getSimpleText(a.reader, "Enter new name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Fprintln(a.out, "Name unchanged.")
		return nil
	}

	now := time.Now()
	patch := store.Patch{Name: &name, ModifiedTime: &now}
	if !rec.IsDirectory {
		t := models.DetectFileType(name)
		patch.Type = &t
	}
	a.store.Update(ctx, id, patch)
	fmt.Fprintf(a.out, "Renamed %s to %s\n", rec.Name, name)
	return nil
}

// Remove deletes a record; if the record carries a content URI, the bytes
// are deleted too. A content-delete failure does not keep the record.
func (a *App) Remove(ctx context.Context, id string) error {
	rec, ok := a.store.Get(id)
	if !ok {
		fmt.Fprintln(a.out, "No such record:", id)
		return common.ErrNotFound
	}
	if rec.URI != "" {
		storage, err := a.storageFor(ctx, rec.URI)
		if err == nil {
			err = storage.Delete(ctx, rec.URI)
		}
		if err != nil {
			a.warn(ctx, "content delete failed, removing record anyway", "uri", rec.URI, "error", err)
		}
	}
	a.store.Remove(ctx, id)
	fmt.Fprintf(a.out, "Removed %s\n", rec.Name)
	return nil
}

// CopyTo copies a record into a destination folder. When both the source
// record and the destination folder carry content URIs, the bytes are
// copied as well and the new record points at the copy.
func (a *App) CopyTo(ctx context.Context, id, folderID string) error {
	src, _ := a.store.Get(id)
	cp, err := a.store.Copy(ctx, id, folderID)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	if uri := a.relocateContent(ctx, src, folderID, false); uri != "" {
		a.store.Update(ctx, cp.ID, store.Patch{URI: &uri})
	}
	fmt.Fprintf(a.out, "Copied %s to %s (%s)\n", src.Name, cp.Path, cp.ID)
	return nil
}

// MoveTo relocates a record into a destination folder, moving the bytes
// when both sides carry content URIs.
func (a *App) MoveTo(ctx context.Context, id, folderID string) error {
	src, _ := a.store.Get(id)
	if err := a.store.Move(ctx, id, folderID); err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	if uri := a.relocateContent(ctx, src, folderID, true); uri != "" {
		a.store.Update(ctx, id, store.Patch{URI: &uri})
	}
	moved, _ := a.store.Get(id)
	fmt.Fprintf(a.out, "Moved %s to %s\n", src.Name, moved.Path)
	return nil
}

// relocateContent copies or moves the record's bytes into the destination
// folder's URI. It returns the new content URI, or "" when no content
// transfer happened (missing URIs or a failed transfer, which is logged).
func (a *App) relocateContent(ctx context.Context, src models.FileRecord, folderID string, move bool) string {
	if src.URI == "" {
		return ""
	}
	dest, ok := a.store.Get(folderID)
	if !ok || dest.URI == "" {
		return ""
	}
	destURI := strings.TrimSuffix(dest.URI, "/") + "/" + src.Name

	storage, err := a.storageFor(ctx, src.URI)
	if err == nil {
		if move {
			err = storage.Move(ctx, src.URI, destURI)
		} else {
			err = storage.Copy(ctx, src.URI, destURI)
		}
	}
	if err != nil {
		a.warn(ctx, "content transfer failed", "source", src.URI, "destination", destURI, "error", err)
		return ""
	}
	return destURI
}
