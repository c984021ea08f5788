package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dkurbatov/filevault/internal/common"
)

// Local stores objects on the local filesystem; URIs are plain paths.
type Local struct{}

// NewLocal returns the local-filesystem storage.
func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Copy(ctx context.Context, sourceURI, destinationURI string) error {
	src, err := os.Open(sourceURI)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(destinationURI), 0o770); err != nil {
		return fmt.Errorf("mkdir destination: %w", err)
	}
	dst, err := os.Create(destinationURI)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy bytes: %w", err)
	}
	return dst.Close()
}

func (l *Local) Move(ctx context.Context, sourceURI, destinationURI string) error {
	if err := os.MkdirAll(filepath.Dir(destinationURI), 0o770); err != nil {
		return fmt.Errorf("mkdir destination: %w", err)
	}
	if err := os.Rename(sourceURI, destinationURI); err == nil {
		return nil
	}
	// rename can fail across filesystems; fall back to copy+delete
	if err := l.Copy(ctx, sourceURI, destinationURI); err != nil {
		return err
	}
	return os.Remove(sourceURI)
}

func (l *Local) Delete(ctx context.Context, uri string) error {
	err := os.RemoveAll(uri)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (l *Local) Stat(ctx context.Context, uri string) (Info, error) {
	fi, err := os.Stat(uri)
	if errors.Is(err, fs.ErrNotExist) {
		return Info{URI: uri}, nil
	}
	if err != nil {
		return Info{}, fmt.Errorf("stat %s: %w", uri, err)
	}
	return Info{
		URI:         uri,
		Size:        fi.Size(),
		Exists:      true,
		IsDirectory: fi.IsDir(),
		ModTime:     fi.ModTime(),
	}, nil
}

func (l *Local) MakeDirectory(ctx context.Context, uri string) error {
	return os.MkdirAll(uri, 0o770)
}

// Share has no share surface for local paths.
func (l *Local) Share(ctx context.Context, uri string) (string, error) {
	return "", common.ErrShareUnavailable
}
