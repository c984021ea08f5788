// Package models defines the data records managed by the FileVault core:
// file/folder records, user settings and cloud bookmarks.
package models

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// FileType classifies a record by its content kind.
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeVideo    FileType = "video"
	FileTypeAudio    FileType = "audio"
	FileTypeDocument FileType = "document"
	FileTypeArchive  FileType = "archive"
	FileTypeOther    FileType = "other"
)

// extensionTypes maps a lower-case file-name extension (without the dot)
// to its FileType. Unknown extensions map to FileTypeOther.
var extensionTypes = map[string]FileType{
	"jpg": FileTypeImage, "jpeg": FileTypeImage, "png": FileTypeImage,
	"gif": FileTypeImage, "bmp": FileTypeImage, "webp": FileTypeImage,
	"heic": FileTypeImage,

	"mp4": FileTypeVideo, "mov": FileTypeVideo, "avi": FileTypeVideo,
	"mkv": FileTypeVideo, "webm": FileTypeVideo, "flv": FileTypeVideo,
	"3gp": FileTypeVideo,

	"mp3": FileTypeAudio, "wav": FileTypeAudio, "ogg": FileTypeAudio,
	"aac": FileTypeAudio, "m4a": FileTypeAudio, "flac": FileTypeAudio,

	"pdf": FileTypeDocument, "doc": FileTypeDocument, "docx": FileTypeDocument,
	"xls": FileTypeDocument, "xlsx": FileTypeDocument, "ppt": FileTypeDocument,
	"pptx": FileTypeDocument, "txt": FileTypeDocument, "rtf": FileTypeDocument,
	"csv": FileTypeDocument,

	"zip": FileTypeArchive, "rar": FileTypeArchive, "7z": FileTypeArchive,
	"tar": FileTypeArchive, "gz": FileTypeArchive, "bz2": FileTypeArchive,
}

// DetectFileType derives a FileType from the file name's extension.
// Matching is case-insensitive; names without a known extension are Other.
func DetectFileType(fileName string) FileType {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	return FileTypeOther
}

// FileRecord is a single file or folder entry in the store.
//
// The JSON tags match the persisted record layout, which is shared with the
// mobile client this store originated from.
type FileRecord struct {
	// ID is a unique, opaque identifier assigned at creation.
	ID string `json:"id"`

	// Name is the display name; mutable via rename.
	Name string `json:"name"`

	// Path is the logical location. Updated on move; a copy derives its own.
	Path string `json:"path"`

	// Size is the byte size (0 for directories).
	Size int64 `json:"size"`

	// Type classifies the record; derived from Name at creation if unset.
	Type FileType `json:"type"`

	// IsDirectory is immutable after creation.
	IsDirectory bool `json:"isDirectory"`

	// ModifiedTime is refreshed on rename, move, and on the copy target.
	ModifiedTime time.Time `json:"modifiedTime"`

	// URI is an optional external content locator (imported/real files).
	URI string `json:"uri,omitempty"`

	// Thumbnail is an optional preview locator.
	Thumbnail string `json:"thumbnail,omitempty"`

	// IsSecure marks membership in the secure view.
	IsSecure bool `json:"isSecure,omitempty"`
}

// FormatFileSize renders a byte count in human units ("2.5 MB").
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	const k = 1024
	units := []string{"Bytes", "KB", "MB", "GB", "TB"}
	size := float64(bytes)
	i := 0
	for size >= k && i < len(units)-1 {
		size /= k
		i++
	}
	s := strconv.FormatFloat(size, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + " " + units[i]
}
