package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsJobsBeforeStop(t *testing.T) {
	p := NewPool(3)
	var n atomic.Int32
	for i := 0; i < 50; i++ {
		require.NoError(t, p.Submit(func() { n.Add(1) }))
	}
	p.Stop()
	assert.Equal(t, int32(50), n.Load())
}

func TestPool_SubmitAfterStop(t *testing.T) {
	p := NewPool(1)
	p.Stop()
	p.Stop()
	assert.ErrorIs(t, p.Submit(func() {}), ErrPoolStopped)
}

func TestDelay_ReturnsResult(t *testing.T) {
	p := NewPool(1)
	defer p.Stop()

	start := time.Now()
	v, err := Delay(context.Background(), p, 20*time.Millisecond, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestDelay_PropagatesError(t *testing.T) {
	p := NewPool(1)
	defer p.Stop()

	boom := errors.New("boom")
	_, err := Delay(context.Background(), p, 0, func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}

func TestDelay_CancelSkipsWork(t *testing.T) {
	p := NewPool(1)
	defer p.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Bool
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := Delay(ctx, p, time.Second, func() (int, error) {
		ran.Store(true)
		return 1, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran.Load())
}

func TestDelay_Timeout(t *testing.T) {
	p := NewPool(1)
	defer p.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := Delay(ctx, p, time.Second, func() (int, error) { return 1, nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDelay_StoppedPool(t *testing.T) {
	p := NewPool(1)
	p.Stop()
	_, err := Delay(context.Background(), p, 0, func() (int, error) { return 1, nil })
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestDelay_TimeoutWhileQueued(t *testing.T) {
	p := NewPool(1)
	release := make(chan struct{})
	require.NoError(t, p.Submit(func() { <-release }))
	defer func() {
		close(release)
		p.Stop()
	}()

	var ran atomic.Bool
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Delay(ctx, p, 0, func() (int, error) {
		ran.Store(true)
		return 1, nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
	assert.False(t, ran.Load())
}

func TestSubmitContext_FullQueue(t *testing.T) {
	p := newPool(1, 1)
	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, p.Submit(func() { close(started); <-release }))
	<-started
	require.NoError(t, p.Submit(func() {})) // fills the queue

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.SubmitContext(ctx, func() {}), context.DeadlineExceeded)

	close(release)
	p.Stop()
}

func TestStop_ReleasesBlockedSubmitter(t *testing.T) {
	p := newPool(1, 1)
	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, p.Submit(func() { close(started); <-release }))
	<-started
	require.NoError(t, p.Submit(func() {}))

	submitErr := make(chan error, 1)
	go func() { submitErr <- p.Submit(func() {}) }()

	stopped := make(chan struct{})
	go func() {
		p.Stop()
		close(stopped)
	}()

	select {
	case err := <-submitErr:
		assert.ErrorIs(t, err, ErrPoolStopped)
	case <-time.After(time.Second):
		t.Fatal("blocked submitter was not released by Stop")
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
