package googledrive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFileID(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		want    string
		wantErr bool
	}{
		{
			"share link",
			"https://drive.google.com/file/d/1AbC_dEf-123/view?usp=sharing",
			"1AbC_dEf-123",
			false,
		},
		{
			"open link with id param",
			"https://drive.google.com/open?id=1AbC_dEf-123",
			"1AbC_dEf-123",
			false,
		},
		{
			"uc download link",
			"https://drive.google.com/uc?export=download&id=1AbC_dEf-123",
			"1AbC_dEf-123",
			false,
		},
		{"not drive", "https://example.com/file/d/123/view", "", true},
		{"drive but no id", "https://drive.google.com/drive/my-drive", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFileID(tt.link)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotDriveLink)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeLink(t *testing.T) {
	got, err := NormalizeLink("https://drive.google.com/file/d/1AbC_dEf-123/view?usp=sharing")
	require.NoError(t, err)
	assert.Equal(t, "https://drive.google.com/file/d/1AbC_dEf-123/preview", got)

	// Already-normalized links pass through unchanged.
	again, err := NormalizeLink(got)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	_, err = NormalizeLink("https://vimeo.com/12345")
	assert.ErrorIs(t, err, ErrNotDriveLink)
}
