package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		name string
		want FileType
	}{
		{"photo.jpg", FileTypeImage},
		{"PHOTO.JPEG", FileTypeImage},
		{"shot.HeIc", FileTypeImage},
		{"clip.mp4", FileTypeVideo},
		{"movie.3gp", FileTypeVideo},
		{"song.mp3", FileTypeAudio},
		{"track.FLAC", FileTypeAudio},
		{"report.pdf", FileTypeDocument},
		{"table.csv", FileTypeDocument},
		{"bundle.tar", FileTypeArchive},
		{"backup.bz2", FileTypeArchive},
		{"mystery.xyz", FileTypeOther},
		{"no-extension", FileTypeOther},
		{"", FileTypeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFileType(tt.name))
		})
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFileSize(tt.bytes))
	}
}

func TestSettings_HasPin(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.FirstLaunch)
	assert.False(t, s.HasPin())

	empty := ""
	s.Pin = &empty
	assert.False(t, s.HasPin())

	pin := "argon2id$aa$bb"
	s.Pin = &pin
	assert.True(t, s.HasPin())
}
