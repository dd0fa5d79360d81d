package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{
			"plain object",
			`{"matchedIds": ["a", "b"]}`,
			[]string{"a", "b"},
			false,
		},
		{
			"empty list",
			`{"matchedIds": []}`,
			[]string{},
			false,
		},
		{
			"json code fence",
			"```json\n{\"matchedIds\": [\"a\"]}\n```",
			[]string{"a"},
			false,
		},
		{
			"bare code fence",
			"```\n{\"matchedIds\": [\"a\"]}\n```",
			[]string{"a"},
			false,
		},
		{
			"surrounding whitespace",
			"\n  {\"matchedIds\": [\"a\"]}  \n",
			[]string{"a"},
			false,
		},
		{
			"extra fields tolerated",
			`{"matchedIds": ["a"], "confidence": "high"}`,
			[]string{"a"},
			false,
		},
		{"prose reply", "I found two matching photos.", nil, true},
		{"missing matchedIds", `{"ids": ["a"]}`, nil, true},
		{"matchedIds not an array", `{"matchedIds": "a"}`, nil, true},
		{"empty reply", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMatchResponse(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMatchResponseMissingKeySentinel(t *testing.T) {
	_, err := ParseMatchResponse(`{"ids": ["a"]}`)
	assert.ErrorIs(t, err, ErrMissingMatchedIDs)
}
