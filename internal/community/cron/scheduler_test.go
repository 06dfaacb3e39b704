package cronjob

import (
	"testing"
	"time"

	"github.com/devsync-community/devsync-backend/internal/community/domain"
	"github.com/devsync-community/devsync-backend/internal/community/repository"
	"github.com/devsync-community/devsync-backend/internal/community/service"
	"github.com/devsync-community/devsync-backend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDeadlines(t *testing.T) {
	store := repository.NewStore()
	store.SeedChallenges([]domain.Challenge{
		{ID: "past", Topic: "Build a CLI Tool", Deadline: time.Now().Add(-time.Hour)},
		{ID: "future", Topic: "Build a Weather App", Deadline: time.Now().Add(time.Hour)},
	})

	log := logger.New("devsync-test", "error")
	notifier := service.NewNotificationService(store, log)
	s := NewScheduler(store, notifier, log, "0 * * * * *")

	s.CheckDeadlines()

	list := notifier.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Challenge deadline passed: Build a CLI Tool", list[0].Message)

	t.Run("fires once per challenge", func(t *testing.T) {
		s.CheckDeadlines()
		assert.Len(t, notifier.List(), 1)
	})
}

func TestSchedulerStart(t *testing.T) {
	store := repository.NewStore()
	log := logger.New("devsync-test", "error")
	notifier := service.NewNotificationService(store, log)

	t.Run("valid spec", func(t *testing.T) {
		s := NewScheduler(store, notifier, log, "0 * * * * *")
		require.NoError(t, s.Start())
		s.Stop()
	})

	t.Run("invalid spec", func(t *testing.T) {
		s := NewScheduler(store, notifier, log, "not a cron spec")
		assert.Error(t, s.Start())
	})

	t.Run("stop without start", func(t *testing.T) {
		s := NewScheduler(store, notifier, log, "0 * * * * *")
		s.Stop()
	})
}
