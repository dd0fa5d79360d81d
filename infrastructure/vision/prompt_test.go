package vision

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRequestMode(t *testing.T) {
	tests := []struct {
		name  string
		query string
		image string
		want  MatchMode
	}{
		{"neither", "", "", ModeNone},
		{"whitespace only", "  ", "\t", ModeNone},
		{"query only", "red shirt", "", ModeText},
		{"image only", "", "data:image/jpeg;base64,AAAA", ModeFace},
		{"image wins over query", "red shirt", "data:image/jpeg;base64,AAAA", ModeFace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &MatchRequest{Query: tt.query, ReferenceImage: tt.image}
			assert.Equal(t, tt.want, req.Mode())
		})
	}
}

func TestBuildMessagesFaceMode(t *testing.T) {
	req := &MatchRequest{
		ReferenceImage: "data:image/jpeg;base64,AAAA",
		Query:          "ignored",
		Photos: []PhotoRef{
			{ID: "photo-1", URL: "https://cdn.example.com/1.jpg"},
			{ID: "photo-2", URL: "https://cdn.example.com/2.jpg"},
		},
	}

	messages := buildMessages(req)
	require.Len(t, messages, 4) // system + reference + 2 photos

	assert.Equal(t, "system", messages[0].Role)
	system, ok := messages[0].Content.(string)
	require.True(t, ok)
	assert.Contains(t, system, "facial structure")

	// Reference image comes before any candidate photo, tagged high detail.
	ref, ok := messages[1].Content.([]contentPart)
	require.True(t, ok)
	require.Len(t, ref, 2)
	assert.Contains(t, ref[0].Text, "Reference image")
	require.NotNil(t, ref[1].ImageURL)
	assert.Equal(t, req.ReferenceImage, ref[1].ImageURL.URL)
	assert.Equal(t, "high", ref[1].ImageURL.Detail)

	for i, id := range []string{"photo-1", "photo-2"} {
		parts, ok := messages[2+i].Content.([]contentPart)
		require.True(t, ok)
		assert.Equal(t, "Photo ID: "+id, parts[0].Text)
		require.NotNil(t, parts[1].ImageURL)
		assert.Equal(t, "high", parts[1].ImageURL.Detail)
	}
}

func TestBuildMessagesTextMode(t *testing.T) {
	req := &MatchRequest{
		Query: "person in a red shirt",
		Photos: []PhotoRef{
			{ID: "photo-1", URL: "https://cdn.example.com/1.jpg"},
			{ID: "photo-2", URL: "https://cdn.example.com/2.jpg"},
		},
	}

	messages := buildMessages(req)
	require.Len(t, messages, 4) // system + query + 2 photos

	prompt, ok := messages[1].Content.(string)
	require.True(t, ok)
	assert.Contains(t, prompt, "person in a red shirt")
	assert.Contains(t, prompt, "photo-1, photo-2")

	// No reference image anywhere in text mode.
	for _, msg := range messages {
		if parts, ok := msg.Content.([]contentPart); ok {
			for _, part := range parts {
				if part.ImageURL != nil {
					assert.True(t, strings.HasPrefix(part.ImageURL.URL, "https://cdn.example.com/"))
					assert.Empty(t, part.ImageURL.Detail)
				}
			}
		}
	}
}
