package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ProjectsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "devsync_projects_created_total", Help: "Total projects submitted"},
	)
	FeedbackPosted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "devsync_feedback_posted_total", Help: "Total feedback entries posted"},
	)
	VotesCast = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "devsync_votes_cast_total", Help: "Total votes recorded"},
	)
	VotesRejected = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "devsync_votes_rejected_total", Help: "Total duplicate votes rejected"},
	)
	NotificationsEmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "devsync_notifications_emitted_total", Help: "Total notifications emitted"},
	)
	GenerationRequests = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "devsync_generation_requests_total", Help: "Total content-generation requests started"},
	)
	GenerationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "devsync_generation_failures_total", Help: "Total content-generation requests that failed"},
	)
)

func Register() {
	prometheus.MustRegister(
		ProjectsCreated,
		FeedbackPosted,
		VotesCast,
		VotesRejected,
		NotificationsEmitted,
		GenerationRequests,
		GenerationFailures,
	)
}
