package service

import (
	"context"
	"sync"
	"time"

	"github.com/devsync-community/devsync-backend/internal/genai"
	"github.com/devsync-community/devsync-backend/internal/logger"
	"github.com/devsync-community/devsync-backend/internal/metrics"
	"github.com/google/uuid"
)

// Job kinds
const (
	JobAnalysis = "analysis"
	JobRanking  = "ranking"
	JobSummary  = "summary"
)

// Job states
const (
	JobPending   = "pending"
	JobSucceeded = "succeeded"
	JobFailed    = "failed"
)

// Fallback texts shown when a generation call fails. The underlying error
// is logged, never surfaced.
const (
	analysisFailedText = "Error analyzing code. Please check your API key."
	rankingFailedText  = "Ranking failed. Please check API configuration."
	summaryFailedText  = "Could not summarize feedback. Please try again later."
)

// AnalysisJob is one advisory generation request. Result is raw markdown
// for display; jobs never touch the entity store.
type AnalysisJob struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	SubjectID  string     `json:"subject_id"`
	Status     string     `json:"status"`
	Result     string     `json:"result,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	cancel context.CancelFunc
}

// AnalysisService runs generation requests as cancellable background jobs.
// A second request for the same subject while one is pending returns the
// in-flight job instead of spawning another.
type AnalysisService struct {
	reviewer *genai.Reviewer
	projects *ProjectService
	log      *logger.Logger

	mu       sync.Mutex
	jobs     map[string]*AnalysisJob
	inflight map[string]string // subject key -> pending job id
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(reviewer *genai.Reviewer, projects *ProjectService, log *logger.Logger) *AnalysisService {
	return &AnalysisService{
		reviewer: reviewer,
		projects: projects,
		log:      log,
		jobs:     make(map[string]*AnalysisJob),
		inflight: make(map[string]string),
	}
}

// StartAnalysis requests a code review for one project.
func (s *AnalysisService) StartAnalysis(projectID string) (AnalysisJob, error) {
	p, err := s.projects.GetProject(projectID)
	if err != nil {
		return AnalysisJob{}, err
	}
	return s.start(JobAnalysis, p.ID, analysisFailedText, func(ctx context.Context) (string, error) {
		return s.reviewer.AnalyzeCode(ctx, p.Title, p.CodeSnippet)
	})
}

// StartRanking requests a judged ranking of a challenge's submissions.
func (s *AnalysisService) StartRanking(challengeID string) (AnalysisJob, error) {
	ch, err := s.projects.GetChallenge(challengeID)
	if err != nil {
		return AnalysisJob{}, err
	}
	entries, err := s.projects.ChallengeSubmissions(challengeID)
	if err != nil {
		return AnalysisJob{}, err
	}
	subs := make([]genai.Submission, 0, len(entries))
	for _, p := range entries {
		subs = append(subs, genai.Submission{Owner: p.Owner, Code: p.CodeSnippet, Desc: p.Description})
	}
	return s.start(JobRanking, ch.ID, rankingFailedText, func(ctx context.Context) (string, error) {
		return s.reviewer.RankSubmissions(ctx, ch.Topic, subs)
	})
}

// StartSummary requests a consolidated summary of one project's feedback.
func (s *AnalysisService) StartSummary(projectID string) (AnalysisJob, error) {
	p, err := s.projects.GetProject(projectID)
	if err != nil {
		return AnalysisJob{}, err
	}
	return s.start(JobSummary, p.ID, summaryFailedText, func(ctx context.Context) (string, error) {
		return s.reviewer.SummarizeFeedback(ctx, p.Title, p.Feedbacks)
	})
}

// GetJob returns a snapshot of a job's current state.
func (s *AnalysisService) GetJob(id string) (AnalysisJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return AnalysisJob{}, false
	}
	return *job, true
}

// Cancel aborts a pending job. Returns false if the job is unknown or
// already finished.
func (s *AnalysisService) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok || job.Status != JobPending {
		return false
	}
	job.cancel()
	return true
}

func (s *AnalysisService) start(kind, subjectID, fallback string, run func(ctx context.Context) (string, error)) (AnalysisJob, error) {
	key := kind + ":" + subjectID

	s.mu.Lock()
	if existing, busy := s.inflight[key]; busy {
		job := *s.jobs[existing]
		s.mu.Unlock()
		return job, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	job := &AnalysisJob{
		ID:        uuid.New().String(),
		Kind:      kind,
		SubjectID: subjectID,
		Status:    JobPending,
		StartedAt: time.Now(),
		cancel:    cancel,
	}
	s.jobs[job.ID] = job
	s.inflight[key] = job.ID
	snapshot := *job
	s.mu.Unlock()

	metrics.GenerationRequests.Inc()

	go func() {
		defer cancel()
		result, err := run(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		now := time.Now()
		job.FinishedAt = &now
		delete(s.inflight, key)

		if err != nil {
			metrics.GenerationFailures.Inc()
			s.log.WithOperation(kind).WithField("subject_id", subjectID).WithError(err).Warn("generation request failed")
			job.Status = JobFailed
			job.Result = fallback
			return
		}
		job.Status = JobSucceeded
		job.Result = result
	}()

	return snapshot, nil
}
