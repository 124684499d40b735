//go:build !deadlock

// Package sync wraps the standard mutexes so that building with
// -tags deadlock swaps in go-deadlock's detecting versions.
package sync

import "sync"

// Mutex guards state shared between client calls and background pollers.
type Mutex struct {
	sync.Mutex
}

// RWMutex is used where reads, such as status snapshots, dominate.
type RWMutex struct {
	sync.RWMutex
}
