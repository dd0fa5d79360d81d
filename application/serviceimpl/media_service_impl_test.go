package serviceimpl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"event-gallery/domain/models"
)

func TestMediaTypeForContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        models.MediaType
		ok          bool
	}{
		{"image/jpeg", models.MediaTypePhoto, true},
		{"image/png", models.MediaTypePhoto, true},
		{"image/webp", models.MediaTypePhoto, true},
		{"video/mp4", models.MediaTypeVideo, true},
		{"video/quicktime", models.MediaTypeVideo, true},
		{"application/pdf", "", false},
		{"text/plain", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			got, ok := mediaTypeForContentType(tt.contentType)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStoragePathFromURL(t *testing.T) {
	assert.Equal(t,
		"events/abc/cover.jpg",
		storagePathFromURL("https://cdn.example.com/events/abc/cover.jpg"))
	assert.Equal(t,
		"events/abc/photo 1.jpg",
		storagePathFromURL("https://cdn.example.com/events/abc/photo%201.jpg"))
	assert.Equal(t, "already/a/path", storagePathFromURL("already/a/path"))
}
