package repository

import (
	"sync"

	"github.com/devsync-community/devsync-backend/internal/community/domain"
)

// Store is the single source of truth for the community state. Everything
// lives in memory; a restart loses all data.
//
// Mutations never edit slices in place. Each write builds a replacement
// slice so that readers holding an earlier snapshot keep a consistent view,
// and untouched entries are shared between snapshots.
type Store struct {
	mu sync.RWMutex

	challenges    []domain.Challenge
	projects      []domain.Project
	notifications []domain.Notification

	// voters tracks which voter ids already voted per project id.
	voters map[string]map[string]struct{}

	// firedDeadlines tracks challenge ids whose deadline reminder has
	// already been emitted.
	firedDeadlines map[string]struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		voters:         make(map[string]map[string]struct{}),
		firedDeadlines: make(map[string]struct{}),
	}
}

// Challenges returns a snapshot of the challenge collection.
func (s *Store) Challenges() []domain.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Challenge, len(s.challenges))
	copy(out, s.challenges)
	return out
}

// ChallengeByID returns the challenge with the given id.
func (s *Store) ChallengeByID(id string) (domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.challenges {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Challenge{}, domain.ErrChallengeNotFound
}

// SeedChallenges replaces the challenge collection. Challenges are
// immutable at runtime, so this is only called at startup.
func (s *Store) SeedChallenges(challenges []domain.Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges = challenges
}

// Projects returns a snapshot of the project collection, newest-first.
func (s *Store) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// ProjectByID returns the project with the given id.
func (s *Store) ProjectByID(id string) (domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

// InsertProject prepends a project to the collection.
func (s *Store) InsertProject(p domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Project, 0, len(s.projects)+1)
	next = append(next, p)
	next = append(next, s.projects...)
	s.projects = next
}

// UpdateProject applies fn to the project with the given id and swaps in a
// replacement collection. All other entries are carried over untouched.
// Returns ErrProjectNotFound if no project matches.
func (s *Store) UpdateProject(id string, fn func(domain.Project) domain.Project) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.projects {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Project{}, domain.ErrProjectNotFound
	}

	next := make([]domain.Project, len(s.projects))
	copy(next, s.projects)
	next[idx] = fn(next[idx])
	s.projects = next
	return next[idx], nil
}

// TryRecordVote records a vote by voterID on projectID. Returns false when
// the voter already voted for that project.
func (s *Store) TryRecordVote(projectID, voterID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.voters[projectID]
	if !ok {
		set = make(map[string]struct{})
		s.voters[projectID] = set
	}
	if _, dup := set[voterID]; dup {
		return false
	}
	set[voterID] = struct{}{}
	return true
}

// Notifications returns a snapshot of the notification list, newest-first.
func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// InsertNotification prepends a notification to the list.
func (s *Store) InsertNotification(n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Notification, 0, len(s.notifications)+1)
	next = append(next, n)
	next = append(next, s.notifications...)
	s.notifications = next
}

// MarkNotificationRead flips the read flag on a single entry.
func (s *Store) MarkNotificationRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, n := range s.notifications {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotificationNotFound
	}

	next := make([]domain.Notification, len(s.notifications))
	copy(next, s.notifications)
	next[idx].IsRead = true
	s.notifications = next
	return nil
}

// MarkAllNotificationsRead flips the read flag on every entry.
func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Notification, len(s.notifications))
	for i, n := range s.notifications {
		n.IsRead = true
		next[i] = n
	}
	s.notifications = next
}

// ClearNotifications empties the notification list unconditionally.
func (s *Store) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
}

// UnreadCount returns the number of unread notifications.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// TryMarkDeadlineFired records that the deadline reminder for a challenge
// has been emitted. Returns false when it already fired.
func (s *Store) TryMarkDeadlineFired(challengeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, done := s.firedDeadlines[challengeID]; done {
		return false
	}
	s.firedDeadlines[challengeID] = struct{}{}
	return true
}
