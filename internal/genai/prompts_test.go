package genai

import (
	"context"
	"testing"

	"github.com/devsync-community/devsync-backend/internal/community/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureClient struct {
	last GenerateRequest
}

func (c *captureClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	c.last = req
	return "generated", nil
}

func TestReviewerPrompts(t *testing.T) {
	client := &captureClient{}
	r := NewReviewer(client)

	t.Run("analyze code", func(t *testing.T) {
		out, err := r.AnalyzeCode(context.Background(), "SkyCast Pro", "const x = 1;")
		require.NoError(t, err)
		assert.Equal(t, "generated", out)
		assert.Contains(t, client.last.Prompt, `"SkyCast Pro"`)
		assert.Contains(t, client.last.Prompt, "const x = 1;")
		assert.False(t, client.last.Fast)
	})

	t.Run("rank submissions", func(t *testing.T) {
		_, err := r.RankSubmissions(context.Background(), "Build a Weather App", []Submission{
			{Owner: "Alex Chen", Code: "code-a", Desc: "desc-a"},
			{Owner: "Sarah J.", Code: "code-b", Desc: "desc-b"},
		})
		require.NoError(t, err)
		assert.Contains(t, client.last.Prompt, "these 2 submissions")
		assert.Contains(t, client.last.Prompt, "[App 1] Owner: Alex Chen")
		assert.Contains(t, client.last.Prompt, "[App 2] Owner: Sarah J.")
		assert.Contains(t, client.last.Prompt, `"Key Strength" badge`)
		assert.False(t, client.last.Fast)
	})

	t.Run("summarize feedback uses the fast model", func(t *testing.T) {
		_, err := r.SummarizeFeedback(context.Background(), "StormTracker", []domain.Feedback{
			{Type: domain.FeedbackText, Author: "Nina", Content: "map is slow"},
			{Type: domain.FeedbackVoice, Author: "Omar", Content: "voice-note-ref"},
		})
		require.NoError(t, err)
		assert.Contains(t, client.last.Prompt, "[TEXT] Nina: map is slow")
		assert.Contains(t, client.last.Prompt, "[VOICE] Omar: voice-note-ref")
		assert.True(t, client.last.Fast)
	})
}
