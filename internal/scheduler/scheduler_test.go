package scheduler

import (
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	items     atomic.Int64
	expired   atomic.Int64
	published atomic.Int64
}

func (f *fakeCache) DeleteExpired() {
	f.expired.Add(1)
	f.items.Store(0)
}

func (f *fakeCache) PublishMetrics() { f.published.Add(1) }

func (f *fakeCache) ItemCount() int { return int(f.items.Load()) }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestStartRequiresJobs(t *testing.T) {
	s := NewScheduler(quietLogger())
	assert.Error(t, s.Start())
	assert.False(t, s.IsRunning())
	assert.True(t, s.GetNextRun().IsZero())
}

func TestScheduleCacheMaintenanceRejectsBadSpec(t *testing.T) {
	s := NewScheduler(quietLogger())

	_, err := s.ScheduleCacheMaintenance("not a cron spec", &fakeCache{})
	assert.Error(t, err)

	_, err = s.ScheduleCacheMaintenance("@every 1m", nil)
	assert.Error(t, err)
	assert.Empty(t, s.Entries())
}

func TestCacheMaintenanceRuns(t *testing.T) {
	s := NewScheduler(quietLogger())
	cache := &fakeCache{}
	cache.items.Store(3)

	_, err := s.ScheduleCacheMaintenance("@every 1s", cache)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	defer func() { _ = s.Stop() }()

	assert.True(t, s.IsRunning())
	assert.False(t, s.GetNextRun().IsZero())
	assert.Error(t, s.Start())

	_, err = s.ScheduleCacheMaintenance("@every 1s", cache)
	assert.Error(t, err, "scheduling while running must fail")

	assert.Eventually(t, func() bool {
		return cache.expired.Load() > 0 && cache.published.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, 0, cache.ItemCount())
}

func TestStopAndRemove(t *testing.T) {
	s := NewScheduler(quietLogger())

	id, err := s.ScheduleCacheMaintenance("@every 1h", &fakeCache{})
	require.NoError(t, err)
	require.Len(t, s.Entries(), 1)

	require.NoError(t, s.Start())
	assert.Error(t, s.RemoveJob(id))
	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())
	assert.NoError(t, s.Stop())

	require.NoError(t, s.RemoveJob(id))
	assert.Empty(t, s.Entries())
}
