// Package blob is the content-addressable filesystem collaborator: it
// relocates the real bytes behind a record's URI. The Entity Store operates
// on logical records only; callers integrating real storage pair a store
// mutation with the matching blob operation.
//
// Two backends exist: the local filesystem and S3 (for s3:// URIs).
package blob

import (
	"context"
	"time"
)

// Info describes a stored object.
type Info struct {
	URI         string
	Size        int64
	Exists      bool
	IsDirectory bool
	ModTime     time.Time
}

// Storage performs byte-level operations on content URIs.
type Storage interface {
	Copy(ctx context.Context, sourceURI, destinationURI string) error
	Move(ctx context.Context, sourceURI, destinationURI string) error

	// Delete removes an object; deleting an absent URI is a no-op.
	Delete(ctx context.Context, uri string) error

	Stat(ctx context.Context, uri string) (Info, error)
	MakeDirectory(ctx context.Context, uri string) error
}

// Sharer hands out a shareable locator for a URI. Backends without a share
// surface return common.ErrShareUnavailable.
type Sharer interface {
	Share(ctx context.Context, uri string) (string, error)
}
