package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verus-go/verusrpc/libs/log"
)

type testService struct {
	BaseService
	startErr error
	stops    int
}

func newTestService(startErr error) *testService {
	ts := &testService{startErr: startErr}
	ts.BaseService = *NewBaseService(log.NewNopLogger(), "testService", ts)
	return ts
}

func (ts *testService) OnStart(context.Context) error { return ts.startErr }

func (ts *testService) OnStop() { ts.stops++ }

func TestBaseServiceStartStop(t *testing.T) {
	ts := newTestService(nil)

	require.NoError(t, ts.Start(context.Background()))
	assert.True(t, ts.IsRunning())
	assert.ErrorIs(t, ts.Start(context.Background()), ErrAlreadyStarted)

	require.NoError(t, ts.Stop())
	assert.False(t, ts.IsRunning())
	assert.ErrorIs(t, ts.Stop(), ErrAlreadyStopped)
	assert.Equal(t, 1, ts.stops)

	ts.Wait()
	assert.ErrorIs(t, ts.Start(context.Background()), ErrAlreadyStopped)
}

func TestBaseServiceStopBeforeStart(t *testing.T) {
	ts := newTestService(nil)
	assert.ErrorIs(t, ts.Stop(), ErrNotStarted)
}

func TestBaseServiceStartError(t *testing.T) {
	boom := errors.New("boom")
	ts := newTestService(boom)

	assert.ErrorIs(t, ts.Start(context.Background()), boom)
	assert.False(t, ts.IsRunning())
}

func TestBaseServiceStopsOnContextCancel(t *testing.T) {
	ts := newTestService(nil)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, ts.Start(ctx))
	cancel()

	select {
	case <-ts.Quit():
	case <-time.After(2 * time.Second):
		t.Fatal("service did not stop after context cancel")
	}
	assert.False(t, ts.IsRunning())
	assert.Equal(t, 1, ts.stops)
}
