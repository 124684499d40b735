package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/verus-go/verusrpc/libs/log"
	"github.com/verus-go/verusrpc/libs/service"
	vsync "github.com/verus-go/verusrpc/libs/sync"
	ctypes "github.com/verus-go/verusrpc/rpc/core/types"
)

// Client is the part of the daemon API the monitor polls.
type Client interface {
	GetBlockCount(ctx context.Context) (int64, error)
	GetInfo(ctx context.Context) (*ctypes.ResultInfo, error)
}

// Status is the outcome of the latest poll.
type Status struct {
	Height      int64
	Connections int64
	Chain       string
	LastPoll    time.Time
	// LastErr is nil when the latest poll succeeded.
	LastErr error
	// Failures counts failed polls since start.
	Failures int64
}

// Option sets an optional parameter on the Monitor.
type Option func(*Monitor)

// WithMetrics sets the metrics.
func WithMetrics(metrics *Metrics) Option {
	return func(m *Monitor) { m.metrics = metrics }
}

// Monitor polls the daemon every interval and publishes the chain height
// and peer count. A failed poll is counted and logged; the next tick polls
// again.
type Monitor struct {
	service.BaseService

	client   Client
	interval time.Duration
	metrics  *Metrics

	mtx    vsync.RWMutex
	status Status

	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a Monitor polling c every interval. It must be started.
func New(c Client, interval time.Duration, logger log.Logger, opts ...Option) *Monitor {
	m := &Monitor{
		client:   c,
		interval: interval,
		metrics:  NopMetrics(),
		done:     make(chan struct{}),
	}
	m.BaseService = *service.NewBaseService(logger, "Monitor", m)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OnStart implements service.Service. The first poll happens immediately.
func (m *Monitor) OnStart(ctx context.Context) error {
	if m.interval <= 0 {
		return errors.New("poll interval must be positive")
	}
	ctx, m.cancel = context.WithCancel(ctx)
	go m.run(ctx)
	return nil
}

// OnStop implements service.Service. It cancels an in-flight poll and waits
// for the loop to exit.
func (m *Monitor) OnStop() {
	m.cancel()
	<-m.done
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		if err := m.Poll(ctx); err != nil && ctx.Err() != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Poll queries the daemon once and updates the status and metrics.
func (m *Monitor) Poll(ctx context.Context) error {
	height, err := m.client.GetBlockCount(ctx)
	if err == nil {
		var info *ctypes.ResultInfo
		info, err = m.client.GetInfo(ctx)
		if err == nil {
			m.update(height, info)
			return nil
		}
	}

	if ctx.Err() != nil {
		// shutting down
		return err
	}

	m.metrics.PollFailures.Add(1)
	m.mtx.Lock()
	m.status.LastPoll = time.Now()
	m.status.LastErr = err
	m.status.Failures++
	failures := m.status.Failures
	m.mtx.Unlock()

	m.Logger.Error("poll failed", "err", err, "failures", failures)
	return err
}

func (m *Monitor) update(height int64, info *ctypes.ResultInfo) {
	m.metrics.Height.Set(float64(height))
	m.metrics.Connections.Set(float64(info.Connections))

	m.mtx.Lock()
	prev := m.status
	m.status.Height = height
	m.status.Connections = info.Connections
	m.status.Chain = info.Name
	m.status.LastPoll = time.Now()
	m.status.LastErr = nil
	m.mtx.Unlock()

	if prev.Height != height {
		m.Logger.Info("new height", "chain", info.Name, "height", height, "prev", prev.Height)
	}
	if prev.Connections != info.Connections {
		m.Logger.Info("peer count changed", "connections", info.Connections, "prev", prev.Connections)
	}
	if prev.LastErr != nil {
		m.Logger.Info("poll recovered", "height", height)
	}
	m.Logger.Debug("polled", "height", height, "connections", info.Connections)
}

// Status returns the outcome of the latest poll.
func (m *Monitor) Status() Status {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.status
}
