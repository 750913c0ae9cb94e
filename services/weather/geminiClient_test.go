package weather

import (
	"testing"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseTextFlattensTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Clear skies, "), genai.Text("good evening for tennis.")}}},
		},
	}

	text, err := responseText(resp)
	require.NoError(t, err)
	assert.Equal(t, "Clear skies, good evening for tennis.", text)
}

func TestResponseTextRejectsEmptyResponses(t *testing.T) {
	// A safety-blocked prompt comes back without candidates rather than as
	// an error, so every empty shape must fail cleanly instead of panicking.
	cases := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"no text parts", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}}},
	}
	for _, tc := range cases {
		_, err := responseText(tc.resp)
		require.Error(t, err, tc.name)
		assert.Contains(t, err.Error(), "no answer", tc.name)
	}
}
