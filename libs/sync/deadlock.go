//go:build deadlock

package sync

import (
	deadlock "github.com/sasha-s/go-deadlock"
)

// Mutex reports lock-order inversions and long waits.
type Mutex struct {
	deadlock.Mutex
}

// RWMutex reports lock-order inversions and long waits.
type RWMutex struct {
	deadlock.RWMutex
}
