package client

import (
	"context"
	"time"
)

const (
	WaitThreshold = 10

	// BlockInterval is the target spacing between blocks.
	BlockInterval = time.Minute
)

// Waiter is informed of current height, decided whether to quit early.
// It must return once ctx is done.
type Waiter func(ctx context.Context, delta int64) (abort error)

// DefaultWaitStrategy is the standard backoff algorithm,
// but you can plug in another one.
func DefaultWaitStrategy(ctx context.Context, delta int64) (abort error) {
	if delta > WaitThreshold {
		return ErrWaitThreshold{Got: delta, Expected: WaitThreshold}
	} else if delta > 0 {
		// wait half a block for the block in progress
		// plus one interval for every full block
		delay := time.Duration(delta-1)*BlockInterval + BlockInterval/2
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

// WaitForHeight polls the block count until the chain reaches height h.
//
// If waiter is nil, we use DefaultWaitStrategy, but you can also
// provide your own implementation.
func WaitForHeight(ctx context.Context, c BlockCountClient, h int64, waiter Waiter) error {
	if waiter == nil {
		waiter = DefaultWaitStrategy
	}
	delta := int64(1)
	for delta > 0 {
		height, err := c.GetBlockCount(ctx)
		if err != nil {
			return err
		}
		// delta might be negative (if h is less than the current height)
		// but this should not cause an error when calling the waiter with
		// a negative value
		delta = h - height
		// wait for the time, or abort early
		if err := waiter(ctx, delta); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	return nil
}
