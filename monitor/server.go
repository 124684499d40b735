package monitor

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"github.com/verus-go/verusrpc/config"
	"github.com/verus-go/verusrpc/libs/log"
	"github.com/verus-go/verusrpc/libs/service"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Listen starts a TCP listener on addr that accepts at most
// maxOpenConnections at once. 0 means unlimited.
func Listen(addr string, maxOpenConnections int) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if maxOpenConnections > 0 {
		listener = netutil.LimitListener(listener, maxOpenConnections)
	}
	return listener, nil
}

// Handler serves the metrics gathered by gatherer.
func Handler(registerer prometheus.Registerer, gatherer prometheus.Gatherer, maxInFlight int) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.InstrumentMetricHandler(
		registerer, promhttp.HandlerFor(
			gatherer,
			promhttp.HandlerOpts{MaxRequestsInFlight: maxInFlight},
		),
	))
	return mux
}

// ServeMetrics serves handler on listener until ctx is done.
func ServeMetrics(ctx context.Context, listener net.Listener, handler http.Handler, logger log.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Prometheus HTTP server starting", "address", listener.Addr().String())
		if err := srv.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("Prometheus HTTP server stopped", "address", listener.Addr().String())
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}

// Run starts m and, if enabled in cfg, a Prometheus server on the default
// registry. It blocks until ctx is done, m stops, or the server fails.
func Run(ctx context.Context, m *Monitor, cfg *config.InstrumentationConfig, logger log.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var listener net.Listener
	if cfg.IsPrometheusEnabled() {
		var err error
		listener, err = Listen(cfg.PrometheusListenAddr, cfg.MaxOpenConnections)
		if err != nil {
			return err
		}
	}

	if err := m.Start(ctx); err != nil {
		if listener != nil {
			listener.Close()
		}
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case <-gctx.Done():
			if m.IsRunning() {
				if err := m.Stop(); err != nil && !errors.Is(err, service.ErrAlreadyStopped) {
					return err
				}
			}
			m.Wait()
		case <-m.Quit():
		}
		cancel()
		return nil
	})
	if listener != nil {
		handler := Handler(prometheus.DefaultRegisterer, prometheus.DefaultGatherer, cfg.MaxOpenConnections)
		g.Go(func() error {
			return ServeMetrics(gctx, listener, handler, logger)
		})
	}
	return g.Wait()
}
