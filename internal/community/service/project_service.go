package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/devsync-community/devsync-backend/internal/community/domain"
	"github.com/devsync-community/devsync-backend/internal/community/repository"
	"github.com/devsync-community/devsync-backend/internal/logger"
	"github.com/devsync-community/devsync-backend/internal/metrics"
	"github.com/google/uuid"
)

// ProjectService implements the mutation operations over the entity store.
// Every operation runs against the current collection and swaps in a
// replacement, so callers always observe a consistent snapshot.
type ProjectService struct {
	store    *repository.Store
	notifier *NotificationService
	log      *logger.Logger
}

// NewProjectService creates a new project service.
func NewProjectService(store *repository.Store, notifier *NotificationService, log *logger.Logger) *ProjectService {
	return &ProjectService{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// CreateProject submits a new project for a challenge. The challenge id is
// required; unknown challenges are rejected rather than defaulted.
// Emits exactly one notification referencing the new project.
func (s *ProjectService) CreateProject(req domain.CreateProjectRequest) (domain.Project, error) {
	if _, err := s.store.ChallengeByID(req.ChallengeID); err != nil {
		return domain.Project{}, err
	}

	p := domain.Project{
		ID:          uuid.New().String(),
		ChallengeID: req.ChallengeID,
		Title:       req.Title,
		Description: req.Description,
		Owner:       req.Owner,
		Status:      domain.StatusDraft,
		CodeSnippet: req.CodeSnippet,
		Thumbnail:   req.Thumbnail,
		Feedbacks:   []domain.Feedback{},
		CreatedAt:   time.Now(),
		Votes:       0,
	}
	s.store.InsertProject(p)
	metrics.ProjectsCreated.Inc()

	s.notifier.Emit(fmt.Sprintf("New version uploaded for challenge: %s", p.Title), p.ID)
	s.log.WithOperation("create_project").WithField("project_id", p.ID).Info("project created")
	return p, nil
}

// AddFeedback prepends a feedback entry to the matching project's sequence.
// Unknown projects are an error and emit no notification.
func (s *ProjectService) AddFeedback(projectID string, req domain.AddFeedbackRequest) (domain.Feedback, error) {
	if !domain.ValidFeedbackType(req.Type) {
		return domain.Feedback{}, domain.ErrInvalidFeedbackType
	}

	f := domain.Feedback{
		ID:        uuid.New().String(),
		Author:    req.Author,
		Type:      req.Type,
		Content:   req.Content,
		Timestamp: time.Now(),
		Metadata:  req.Metadata,
	}

	updated, err := s.store.UpdateProject(projectID, func(p domain.Project) domain.Project {
		next := make([]domain.Feedback, 0, len(p.Feedbacks)+1)
		next = append(next, f)
		next = append(next, p.Feedbacks...)
		p.Feedbacks = next
		return p
	})
	if err != nil {
		return domain.Feedback{}, err
	}
	metrics.FeedbackPosted.Inc()

	s.notifier.Emit(fmt.Sprintf("New feedback on your app version: %s", updated.Title), updated.ID)
	return f, nil
}

// CastVote increments the vote count by exactly one, once per voter per
// project. Duplicate votes return ErrAlreadyVoted and leave the count
// unchanged. No notification is emitted.
func (s *ProjectService) CastVote(projectID, voterID string) (domain.Project, error) {
	if _, err := s.store.ProjectByID(projectID); err != nil {
		return domain.Project{}, err
	}

	if !s.store.TryRecordVote(projectID, voterID) {
		metrics.VotesRejected.Inc()
		return domain.Project{}, domain.ErrAlreadyVoted
	}

	updated, err := s.store.UpdateProject(projectID, func(p domain.Project) domain.Project {
		p.Votes++
		return p
	})
	if err != nil {
		return domain.Project{}, err
	}
	metrics.VotesCast.Inc()
	return updated, nil
}

// SetProjectStatus replaces the status on the matching project. All other
// fields are unchanged. No notification is emitted.
func (s *ProjectService) SetProjectStatus(projectID, status string) (domain.Project, error) {
	if !domain.ValidStatus(status) {
		return domain.Project{}, domain.ErrInvalidStatus
	}
	return s.store.UpdateProject(projectID, func(p domain.Project) domain.Project {
		p.Status = status
		return p
	})
}

// GetProject returns the project with the given id.
func (s *ProjectService) GetProject(id string) (domain.Project, error) {
	return s.store.ProjectByID(id)
}

// ListProjects returns all projects, newest-first.
func (s *ProjectService) ListProjects() []domain.Project {
	return s.store.Projects()
}

// ListChallenges returns the seeded challenges.
func (s *ProjectService) ListChallenges() []domain.Challenge {
	return s.store.Challenges()
}

// GetChallenge returns the challenge with the given id.
func (s *ProjectService) GetChallenge(id string) (domain.Challenge, error) {
	return s.store.ChallengeByID(id)
}

// ChallengeSubmissions returns the projects entered for a challenge, in
// collection order.
func (s *ProjectService) ChallengeSubmissions(challengeID string) ([]domain.Project, error) {
	if _, err := s.store.ChallengeByID(challengeID); err != nil {
		return nil, err
	}
	var out []domain.Project
	for _, p := range s.store.Projects() {
		if p.ChallengeID == challengeID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Leaderboard returns a challenge's submissions sorted by votes descending.
// Ties go to the older submission.
func (s *ProjectService) Leaderboard(challengeID string) ([]domain.Project, error) {
	out, err := s.ChallengeSubmissions(challengeID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Votes != out[j].Votes {
			return out[i].Votes > out[j].Votes
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
