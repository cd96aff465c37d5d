package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnceExecutesAllJobs(t *testing.T) {
	s := NewScheduler()

	var first, second atomic.Int32
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestRunOnceContinuesPastFailures(t *testing.T) {
	s := NewScheduler()

	var ran atomic.Bool
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		return errors.New("boom")
	})
	s.AddJob("healthy", time.Hour, func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})

	s.RunOnce(context.Background())
	assert.True(t, ran.Load())
}

func TestStartRunsJobImmediatelyAndStopWaits(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	s.AddJob("sweep", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, 10*time.Millisecond)
	s.Stop()
}

func TestStopCancelsJobContext(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{}, 1)
	s.AddJob("blocking", time.Millisecond, func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			select {
			case done <- struct{}{}:
			default:
			}
		case <-time.After(time.Second):
		}
		return nil
	})

	s.Start()
	go s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job context was not cancelled on Stop")
	}
}
