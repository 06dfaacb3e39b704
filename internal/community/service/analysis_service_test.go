package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/devsync-community/devsync-backend/internal/community/domain"
	"github.com/devsync-community/devsync-backend/internal/genai"
	"github.com/devsync-community/devsync-backend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator is a genai.Client test double. When block is non-nil the
// call waits until the channel is closed or the context is cancelled.
type stubGenerator struct {
	mu    sync.Mutex
	reply string
	err   error
	block chan struct{}
	calls int
}

func (s *stubGenerator) Generate(ctx context.Context, req genai.GenerateRequest) (string, error) {
	s.mu.Lock()
	s.calls++
	block := s.block
	s.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.reply, s.err
}

func (s *stubGenerator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newAnalysisFixture(t *testing.T, stub *stubGenerator) *AnalysisService {
	t.Helper()
	_, projects, _ := newTestServices(t)
	log := logger.New("devsync-test", "error")
	return NewAnalysisService(genai.NewReviewer(stub), projects, log)
}

func waitForJob(t *testing.T, svc *AnalysisService, id, status string) AnalysisJob {
	t.Helper()
	var job AnalysisJob
	require.Eventually(t, func() bool {
		j, ok := svc.GetJob(id)
		if !ok {
			return false
		}
		job = j
		return j.Status == status
	}, 2*time.Second, 10*time.Millisecond)
	return job
}

func TestStartAnalysis_Succeeds(t *testing.T) {
	stub := &stubGenerator{reply: "Solid error handling. Consider caching API responses."}
	svc := newAnalysisFixture(t, stub)

	job, err := svc.StartAnalysis("1")
	require.NoError(t, err)
	assert.Equal(t, JobAnalysis, job.Kind)
	assert.Equal(t, "1", job.SubjectID)

	done := waitForJob(t, svc, job.ID, JobSucceeded)
	assert.Equal(t, stub.reply, done.Result)
	assert.NotNil(t, done.FinishedAt)
}

func TestStartAnalysis_UnknownProject(t *testing.T) {
	svc := newAnalysisFixture(t, &stubGenerator{})

	_, err := svc.StartAnalysis("missing")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestStartAnalysis_FailureUsesFallbackText(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	svc := newAnalysisFixture(t, stub)

	job, err := svc.StartAnalysis("1")
	require.NoError(t, err)

	done := waitForJob(t, svc, job.ID, JobFailed)
	assert.Equal(t, "Error analyzing code. Please check your API key.", done.Result)
}

func TestStartRanking(t *testing.T) {
	stub := &stubGenerator{reply: "1. SkyCast Pro — AI Verdict: polished."}
	svc := newAnalysisFixture(t, stub)

	job, err := svc.StartRanking("c1")
	require.NoError(t, err)
	assert.Equal(t, JobRanking, job.Kind)

	done := waitForJob(t, svc, job.ID, JobSucceeded)
	assert.Equal(t, stub.reply, done.Result)

	t.Run("unknown challenge", func(t *testing.T) {
		_, err := svc.StartRanking("missing")
		assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
	})

	t.Run("ranking failure fallback", func(t *testing.T) {
		failing := &stubGenerator{err: errors.New("boom")}
		failSvc := newAnalysisFixture(t, failing)
		job, err := failSvc.StartRanking("c1")
		require.NoError(t, err)
		done := waitForJob(t, failSvc, job.ID, JobFailed)
		assert.Equal(t, "Ranking failed. Please check API configuration.", done.Result)
	})
}

func TestStartSummary(t *testing.T) {
	stub := &stubGenerator{reply: "UI/UX: mostly praise."}
	svc := newAnalysisFixture(t, stub)

	job, err := svc.StartSummary("2")
	require.NoError(t, err)
	assert.Equal(t, JobSummary, job.Kind)

	done := waitForJob(t, svc, job.ID, JobSucceeded)
	assert.Equal(t, stub.reply, done.Result)
}

func TestStart_DedupesInflight(t *testing.T) {
	stub := &stubGenerator{reply: "done", block: make(chan struct{})}
	svc := newAnalysisFixture(t, stub)

	first, err := svc.StartAnalysis("1")
	require.NoError(t, err)

	second, err := svc.StartAnalysis("1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "pending request should be returned, not duplicated")
	require.Eventually(t, func() bool {
		return stub.callCount() == 1
	}, 2*time.Second, 10*time.Millisecond, "deduped request should invoke the generator exactly once")

	// a different subject is not deduped
	other, err := svc.StartAnalysis("2")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	close(stub.block)
	waitForJob(t, svc, first.ID, JobSucceeded)

	t.Run("finished subject can be requested again", func(t *testing.T) {
		again, err := svc.StartAnalysis("1")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, again.ID)
	})
}

func TestCancel(t *testing.T) {
	stub := &stubGenerator{reply: "never", block: make(chan struct{})}
	svc := newAnalysisFixture(t, stub)

	job, err := svc.StartAnalysis("1")
	require.NoError(t, err)

	assert.True(t, svc.Cancel(job.ID))
	done := waitForJob(t, svc, job.ID, JobFailed)
	assert.Equal(t, "Error analyzing code. Please check your API key.", done.Result)

	t.Run("finished job cannot be cancelled", func(t *testing.T) {
		assert.False(t, svc.Cancel(job.ID))
	})

	t.Run("unknown job", func(t *testing.T) {
		assert.False(t, svc.Cancel("missing"))
	})
}

func TestGetJob_Unknown(t *testing.T) {
	svc := newAnalysisFixture(t, &stubGenerator{})
	_, ok := svc.GetJob("missing")
	assert.False(t, ok)
}
