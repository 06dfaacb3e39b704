package repository

import (
	"time"

	"github.com/devsync-community/devsync-backend/internal/community/domain"
)

// Seed loads the demo challenge and its two submissions. Skipped if the
// store already holds data.
func Seed(store *Store) {
	if len(store.Challenges()) > 0 {
		return
	}

	now := time.Now()

	store.SeedChallenges([]domain.Challenge{
		{
			ID:               "c1",
			Topic:            "Build a Weather App",
			Tutor:            "Prof. Miller",
			Deadline:         now.Add(7 * 24 * time.Hour),
			Description:      "Create a responsive weather dashboard using a public API. Focus on clean UI and error handling.",
			SubmissionsCount: 3,
		},
	})

	store.InsertProject(domain.Project{
		ID:          "2",
		ChallengeID: "c1",
		Title:       "StormTracker",
		Description: "Real-time storm tracking with interactive maps.",
		Owner:       "Sarah J.",
		Status:      domain.StatusTesting,
		CodeSnippet: "// Sarah's code\nimport maps from \"leaflet\";",
		Thumbnail:   "https://picsum.photos/seed/weather2/800/400",
		Feedbacks:   []domain.Feedback{},
		CreatedAt:   now.Add(-12 * time.Hour),
		Votes:       8,
	})
	store.InsertProject(domain.Project{
		ID:          "1",
		ChallengeID: "c1",
		Title:       "SkyCast Pro",
		Description: "A minimalist weather app with glassmorphism UI.",
		Owner:       "Alex Chen",
		Status:      domain.StatusTesting,
		CodeSnippet: "// Alex's code\nconst getWeather = () => { /* logic */ }",
		Thumbnail:   "https://picsum.photos/seed/weather1/800/400",
		Feedbacks:   []domain.Feedback{},
		CreatedAt:   now.Add(-24 * time.Hour),
		Votes:       12,
	})
}
