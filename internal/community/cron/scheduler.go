package cronjob

import (
	"fmt"
	"time"

	"github.com/devsync-community/devsync-backend/internal/community/repository"
	"github.com/devsync-community/devsync-backend/internal/community/service"
	"github.com/devsync-community/devsync-backend/internal/logger"
	"github.com/robfig/cron/v3"
)

// Scheduler watches challenge deadlines and emits a one-time reminder
// notification when a deadline passes. Challenges themselves never change.
type Scheduler struct {
	store    *repository.Store
	notifier *service.NotificationService
	log      *logger.Logger
	spec     string
	cron     *cron.Cron
}

// NewScheduler creates a deadline watcher running on the given cron spec.
func NewScheduler(store *repository.Store, notifier *service.NotificationService, log *logger.Logger, spec string) *Scheduler {
	return &Scheduler{
		store:    store,
		notifier: notifier,
		log:      log,
		spec:     spec,
	}
}

// Start initializes the cron task.
func (s *Scheduler) Start() error {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc(s.spec, s.CheckDeadlines); err != nil {
		return fmt.Errorf("create cron job: %w", err)
	}

	s.log.WithOperation("deadline_watcher").Infof("cron scheduler started (spec %q)", s.spec)
	c.Start()
	s.cron = c
	return nil
}

// Stop halts the cron loop. Safe to call when never started.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// CheckDeadlines emits a reminder for every challenge whose deadline has
// passed and has not been announced yet.
func (s *Scheduler) CheckDeadlines() {
	now := time.Now()
	for _, ch := range s.store.Challenges() {
		if ch.Deadline.After(now) {
			continue
		}
		if !s.store.TryMarkDeadlineFired(ch.ID) {
			continue
		}
		// reminders carry no project reference
		s.notifier.Emit(fmt.Sprintf("Challenge deadline passed: %s", ch.Topic), "")
		s.log.WithOperation("deadline_watcher").WithField("challenge_id", ch.ID).Info("deadline reminder emitted")
	}
}
