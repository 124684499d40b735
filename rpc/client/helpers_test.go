package client_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verus-go/verusrpc/rpc/client"
	"github.com/verus-go/verusrpc/rpc/client/mock"
)

func TestWaitForHeight(t *testing.T) {
	assert, require := assert.New(t), require.New(t)
	ctx := context.Background()

	// test with error result - immediate failure
	m := &mock.BlockCountMock{
		Call: mock.Call{
			Error: errors.New("bye"),
		},
	}
	r := mock.NewBlockCountRecorder(m)

	// connection failure always leads to error
	err := client.WaitForHeight(ctx, r, 8, nil)
	require.Error(err)
	require.Equal("bye", err.Error())
	// we called getblockcount once to check
	require.Len(r.Calls, 1)

	// now set current block height to 10
	m.Call = mock.Call{
		Response: int64(10),
	}

	// we will not wait for more than 10 blocks
	err = client.WaitForHeight(ctx, r, 40, nil)
	require.Error(err)
	require.ErrorAs(err, &client.ErrWaitThreshold{})

	// we called getblockcount once more to check
	require.Len(r.Calls, 2)

	// waiting for the past returns immediately
	err = client.WaitForHeight(ctx, r, 5, nil)
	require.NoError(err)
	// we called getblockcount once more to check
	require.Len(r.Calls, 3)

	// since we can't update in a background goroutine (test --race)
	// we use the callback to update the height
	myWaiter := func(_ context.Context, delta int64) error {
		// update the height for the next call
		m.Call.Response = int64(15)
		if delta > client.WaitThreshold {
			return client.ErrWaitThreshold{Got: delta, Expected: client.WaitThreshold}
		}
		return nil
	}

	// we wait for a few blocks
	err = client.WaitForHeight(ctx, r, 12, myWaiter)
	require.NoError(err)
	// we called getblockcount twice more
	require.Len(r.Calls, 5)

	pre := r.Calls[3]
	require.NoError(pre.Error)
	assert.Equal(int64(10), pre.Response)

	post := r.Calls[4]
	require.NoError(post.Error)
	assert.Equal(int64(15), post.Response)
}

func TestWaitForHeightCanceled(t *testing.T) {
	m := &mock.BlockCountMock{Call: mock.Call{Response: int64(1)}}
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := client.WaitForHeight(ctx, m, 5, func(context.Context, int64) error {
		calls++
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestWaitForHeightDefaultWaiterHonorsDeadline(t *testing.T) {
	m := &mock.BlockCountMock{Call: mock.Call{Response: int64(1)}}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- client.WaitForHeight(ctx, m, 2, nil) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(5 * time.Second):
		t.Fatal("WaitForHeight did not return after its context expired")
	}
}

func TestDefaultWaitStrategy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, client.DefaultWaitStrategy(ctx, 0))
	assert.NoError(t, client.DefaultWaitStrategy(ctx, -3))
	assert.ErrorIs(t, client.DefaultWaitStrategy(ctx, 1), context.Canceled)
	assert.ErrorAs(t, client.DefaultWaitStrategy(ctx, client.WaitThreshold+1), &client.ErrWaitThreshold{})
}
