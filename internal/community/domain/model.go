package domain

import "time"

// Project status constants
const (
	StatusDraft     = "DRAFT"
	StatusTesting   = "TESTING"
	StatusFinalized = "FINALIZED"
)

// Feedback type constants
const (
	FeedbackText  = "TEXT"
	FeedbackImage = "IMAGE"
	FeedbackVideo = "VIDEO"
	FeedbackVoice = "VOICE"
	FeedbackCode  = "CODE"
)

// Challenge is a tutor-assigned coding topic. Challenges are seeded at
// startup and never change at runtime.
type Challenge struct {
	ID               string    `json:"id"`
	Topic            string    `json:"topic"`
	Tutor            string    `json:"tutor"`
	Deadline         time.Time `json:"deadline"`
	Description      string    `json:"description"`
	SubmissionsCount int       `json:"submissions_count"`
}

// FeedbackMetadata carries optional extras for a feedback entry.
type FeedbackMetadata struct {
	CodeDiff string `json:"code_diff,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

// Feedback is a single piece of tester feedback on a project. Entries are
// owned by their parent project and are never mutated after creation.
type Feedback struct {
	ID        string            `json:"id"`
	Author    string            `json:"author"`
	Type      string            `json:"type"`
	Content   string            `json:"content"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  *FeedbackMetadata `json:"metadata,omitempty"`
}

// Project is a challenge submission. Feedbacks are kept newest-first;
// votes only ever go up.
type Project struct {
	ID          string     `json:"id"`
	ChallengeID string     `json:"challenge_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Owner       string     `json:"owner"`
	Status      string     `json:"status"`
	CodeSnippet string     `json:"code_snippet"`
	Thumbnail   string     `json:"thumbnail"`
	Feedbacks   []Feedback `json:"feedbacks"`
	CreatedAt   time.Time  `json:"created_at"`
	Votes       int        `json:"votes"`
}

// Notification is an activity entry for the navbar bell. The list is
// newest-first; entries are only ever deleted by a global clear.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	ProjectID string    `json:"project_id"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"is_read"`
}

// ValidStatus reports whether s is one of the defined project statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusTesting, StatusFinalized:
		return true
	}
	return false
}

// ValidFeedbackType reports whether t is one of the defined feedback types.
func ValidFeedbackType(t string) bool {
	switch t {
	case FeedbackText, FeedbackImage, FeedbackVideo, FeedbackVoice, FeedbackCode:
		return true
	}
	return false
}

// CreateProjectRequest represents data needed to submit a new project.
type CreateProjectRequest struct {
	ChallengeID string
	Title       string
	Description string
	Owner       string
	CodeSnippet string
	Thumbnail   string
}

// AddFeedbackRequest represents data needed to post feedback on a project.
type AddFeedbackRequest struct {
	Author   string
	Type     string
	Content  string
	Metadata *FeedbackMetadata
}
