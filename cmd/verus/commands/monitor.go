package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/verus-go/verusrpc/monitor"
	jsonrpcclient "github.com/verus-go/verusrpc/rpc/jsonrpc/client"
)

// NewMonitorCmd returns the "monitor" command, which polls the daemon until
// interrupted.
func NewMonitorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Poll the daemon and export chain metrics",
		Long: `Poll getblockcount and getinfo every poll interval, log height and peer
changes, and, with --prometheus, serve the chain and call metrics under
/metrics on the instrumentation listen address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("poll-interval") {
				config.Monitor.PollInterval, _ = flags.GetDuration("poll-interval")
			}
			if flags.Changed("prometheus") {
				config.Instrumentation.Prometheus, _ = flags.GetBool("prometheus")
			}
			if err := config.ValidateBasic(); err != nil {
				return err
			}

			var (
				clientMetrics  = jsonrpcclient.NopMetrics()
				monitorMetrics = monitor.NopMetrics()
			)
			if config.Instrumentation.IsPrometheusEnabled() {
				ns := config.Instrumentation.Namespace
				clientMetrics = jsonrpcclient.PrometheusMetrics(ns, "network", config.Network)
				monitorMetrics = monitor.PrometheusMetrics(ns, "network", config.Network)
			}

			c, err := newClient(jsonrpcclient.WithMetrics(clientMetrics))
			if err != nil {
				return err
			}
			m := monitor.New(c, config.Monitor.PollInterval, logger.With("module", "monitor"),
				monitor.WithMetrics(monitorMetrics))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("monitoring daemon", "remote", config.RemoteAddr(), "interval", config.Monitor.PollInterval)
			return monitor.Run(ctx, m, config.Instrumentation, logger.With("module", "metrics"))
		},
	}
	cmd.Flags().Duration("poll-interval", 0, "override [monitor] poll_interval")
	cmd.Flags().Bool("prometheus", false, "serve Prometheus metrics")
	return cmd
}
