package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/config/configs"
	"newsdesk/internal/core/domain"
	"newsdesk/internal/core/port/mocks"
)

var testCfg = configs.Publish{
	Enabled:  true,
	Interval: 10 * time.Millisecond,
	Timeout:  time.Second,
	LockTTL:  2 * time.Second,
}

func TestSweepWithoutLocker(t *testing.T) {
	articles := mocks.NewMockArticleUseCase(t)
	articles.EXPECT().
		PublishDueArticles(mock.Anything, time.Time{}).
		Return(&domain.PublishResult{PublishedCount: 0, PublishedIDs: nil}, nil)

	p := NewPublisher(articles, nil, "", testCfg, nil)
	res, err := p.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.PublishedCount)
}

func TestSweepSkipsWhenLockHeld(t *testing.T) {
	articles := mocks.NewMockArticleUseCase(t)
	locker := mocks.NewMockLocker(t)
	locker.EXPECT().TryLock(mock.Anything, "newsdesk:publish", testCfg.LockTTL).Return(nil, false, nil)

	p := NewPublisher(articles, locker, "newsdesk:publish", testCfg, nil)
	_, err := p.Sweep(context.Background())
	require.ErrorIs(t, err, ErrLocked)
	articles.AssertNotCalled(t, "PublishDueArticles", mock.Anything, mock.Anything)
}

func TestSweepReleasesLock(t *testing.T) {
	articles := mocks.NewMockArticleUseCase(t)
	locker := mocks.NewMockLocker(t)

	var released atomic.Bool
	release := func(context.Context) error {
		released.Store(true)
		return nil
	}
	locker.EXPECT().TryLock(mock.Anything, "k", testCfg.LockTTL).Return(release, true, nil)
	articles.EXPECT().PublishDueArticles(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	p := NewPublisher(articles, locker, "k", testCfg, nil)
	_, err := p.Sweep(context.Background())
	require.Error(t, err)
	assert.True(t, released.Load(), "lock is released even when the sweep fails")
}

func TestSweepLockError(t *testing.T) {
	articles := mocks.NewMockArticleUseCase(t)
	locker := mocks.NewMockLocker(t)
	locker.EXPECT().TryLock(mock.Anything, mock.Anything, mock.Anything).Return(nil, false, errors.New("redis down"))

	p := NewPublisher(articles, locker, "k", testCfg, nil)
	_, err := p.Sweep(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLocked)
}

func TestRunSweepsUntilCancelled(t *testing.T) {
	articles := mocks.NewMockArticleUseCase(t)

	var calls atomic.Int32
	articles.EXPECT().
		PublishDueArticles(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time) (*domain.PublishResult, error) {
			calls.Add(1)
			return &domain.PublishResult{}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewPublisher(articles, nil, "", testCfg, nil).Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher did not stop after cancel")
	}
}
