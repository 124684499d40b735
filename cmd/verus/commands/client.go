package commands

import (
	"fmt"

	cfg "github.com/verus-go/verusrpc/config"
	cmtos "github.com/verus-go/verusrpc/internal/os"
	rpchttp "github.com/verus-go/verusrpc/rpc/client/http"
	jsonrpcclient "github.com/verus-go/verusrpc/rpc/jsonrpc/client"
)

// loadDaemonConf fills credentials missing from the config with those of
// the daemon conf file. A missing default file is not an error; a missing
// file named explicitly is.
func loadDaemonConf(conf *cfg.Config) error {
	if conf.RPC.User != "" && conf.RPC.Password != "" {
		return nil
	}
	path, err := conf.DaemonConfFile()
	if err != nil {
		return err
	}
	if !cmtos.FileExists(path) {
		if conf.RPC.DaemonConf != "" {
			return fmt.Errorf("daemon conf %s does not exist", path)
		}
		logger.Debug("no daemon conf", "path", path)
		return nil
	}
	dc, err := cfg.LoadDaemonConf(path)
	if err != nil {
		return err
	}
	conf.ApplyDaemonConf(dc)
	logger.Debug("read daemon conf", "path", path)
	return nil
}

// newClient returns a client for the daemon the config points at.
func newClient(opts ...jsonrpcclient.Option) (*rpchttp.HTTP, error) {
	if err := loadDaemonConf(config); err != nil {
		return nil, err
	}
	opts = append([]jsonrpcclient.Option{
		jsonrpcclient.WithBasicAuth(config.RPC.User, config.RPC.Password),
		jsonrpcclient.WithTimeout(config.RPC.Timeout),
		jsonrpcclient.WithLogger(logger.With("module", "rpc")),
	}, opts...)
	return rpchttp.New(config.RemoteAddr(), opts...)
}

// classify prefixes err with the failure class so that the user can tell a
// daemon refusal from an unreachable daemon.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case jsonrpcclient.IsRPCError(err):
		return fmt.Errorf("daemon rejected the call: %w", err)
	case jsonrpcclient.IsTransportError(err):
		return fmt.Errorf("cannot reach daemon at %s: %w", config.RemoteAddr(), err)
	case jsonrpcclient.IsProtocolError(err):
		return fmt.Errorf("unexpected reply from daemon: %w", err)
	default:
		return err
	}
}
