package genai

import (
	"context"
	"fmt"
	"strings"

	"github.com/devsync-community/devsync-backend/internal/community/domain"
)

// Submission is one challenge entry handed to the ranking judge.
type Submission struct {
	Owner string
	Code  string
	Desc  string
}

// Reviewer wraps a generation backend with the community's three advisory
// calls. Results are raw markdown for display; nothing here gates a
// mutation.
type Reviewer struct {
	client Client
}

// NewReviewer creates a reviewer over the given backend.
func NewReviewer(client Client) *Reviewer {
	return &Reviewer{client: client}
}

// AnalyzeCode asks for a bug/improvement review of one project's snippet.
func (r *Reviewer) AnalyzeCode(ctx context.Context, projectTitle, code string) (string, error) {
	prompt := fmt.Sprintf(`Analyze the following code for a project titled %q.
Identify potential bugs, suggest improvements, and provide a short summary of its functionality.

Code:
`+"```\n%s\n```", projectTitle, code)

	return r.client.Generate(ctx, GenerateRequest{Prompt: prompt})
}

// RankSubmissions asks for a judged ranking of all submissions for a
// challenge topic.
func (r *Reviewer) RankSubmissions(ctx context.Context, challengeTopic string, submissions []Submission) (string, error) {
	var sb strings.Builder
	for i, s := range submissions {
		fmt.Fprintf(&sb, "\n[App %d] Owner: %s\nDescription: %s\nCode: ```%s```\n", i+1, s.Owner, s.Desc, s.Code)
	}

	prompt := fmt.Sprintf(`You are a technical judge for a coding community.
Analyze these %d submissions for the challenge: %q.

Submissions:
%s

Please:
1. Rank them based on feature completeness, code quality, and innovation.
2. Provide a short "AI Verdict" for each.
3. Assign a "Key Strength" badge to each (e.g., "Optimization King", "UI Specialist").

Return the response as a clear, concise markdown list.`, len(submissions), challengeTopic, sb.String())

	return r.client.Generate(ctx, GenerateRequest{Prompt: prompt})
}

// SummarizeFeedback asks for a consolidated summary of a project's
// feedback, grouped by category. Uses the fast model.
func (r *Reviewer) SummarizeFeedback(ctx context.Context, projectTitle string, feedbacks []domain.Feedback) (string, error) {
	var sb strings.Builder
	for _, f := range feedbacks {
		fmt.Fprintf(&sb, "[%s] %s: %s\n", f.Type, f.Author, f.Content)
	}

	prompt := fmt.Sprintf(`Provide a consolidated summary of the testing feedback for %q.
Group issues into categories like "UI/UX", "Functionality", and "New Ideas".

Feedbacks:
%s`, projectTitle, sb.String())

	return r.client.Generate(ctx, GenerateRequest{Prompt: prompt, Fast: true})
}
