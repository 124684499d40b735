package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/verus-go/verusrpc/config"
	"github.com/verus-go/verusrpc/libs/cli"
	cmtflags "github.com/verus-go/verusrpc/libs/cli/flags"
	"github.com/verus-go/verusrpc/libs/log"
	"github.com/verus-go/verusrpc/rpc/client"
)

// EnvPrefix prefixes the environment variables read by the CLI, e.g.
// VERUS_RPCPASSWORD.
const EnvPrefix = "VERUS"

var (
	config = cfg.DefaultConfig()
	logger = log.NewLogger(os.Stderr)
)

// Connection flags and the config keys they set.
var rpcFlagKeys = map[string]string{
	"host":        "rpc.host",
	"port":        "rpc.port",
	"rpcuser":     "rpc.user",
	"rpcpassword": "rpc.password",
	"daemon-conf": "rpc.daemon_conf",
	"timeout":     "rpc.timeout",
	"tls":         "rpc.tls",
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	def := cfg.DefaultConfig()
	pf := cmd.PersistentFlags()
	pf.String("network", def.Network, "chain to talk to (mainnet|testnet)")
	pf.String("host", def.RPC.Host, "daemon RPC host")
	pf.Int("port", def.RPC.Port, "daemon RPC port (0 selects the network default)")
	pf.String("rpcuser", def.RPC.User, "daemon RPC user")
	pf.String("rpcpassword", def.RPC.Password, "daemon RPC password")
	pf.String("daemon-conf", def.RPC.DaemonConf, "daemon conf file to read credentials from")
	pf.Duration("timeout", def.RPC.Timeout, "timeout of a single call (0 disables it)")
	pf.Bool("tls", def.RPC.TLS, "connect with https")
	pf.String("log_level", def.LogLevel, "log level")
	pf.String("log_format", def.LogFormat, "log format (plain|json)")
	pf.String(cli.OutputFlag, def.Output, "output format (text|json)")
}

// bindRPCFlags maps the connection flags onto their [rpc] keys, so that a
// flag, VERUS_<FLAG> or the config file can set them.
func bindRPCFlags(cmd *cobra.Command) error {
	for flag, key := range rpcFlagKeys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
		env := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

func ConfigHome(cmd *cobra.Command) (string, error) {
	if home := os.Getenv(EnvPrefix + "HOME"); home != "" {
		return home, nil
	}
	// Default: $HOME/.verusrpc
	return cmd.Flags().GetString(cli.HomeFlag)
}

// ParseConfig retrieves the default environment configuration and sets up
// the root. Unlike a node, the client does not create its root here; see
// "verus config init".
func ParseConfig(cmd *cobra.Command) (*cfg.Config, error) {
	if err := bindRPCFlags(cmd); err != nil {
		return nil, err
	}

	conf := cfg.DefaultConfig()
	if err := viper.Unmarshal(conf); err != nil {
		return nil, err
	}

	home, err := ConfigHome(cmd)
	if err != nil {
		return nil, err
	}
	conf.SetRoot(home)

	if err := conf.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("error in config file: %w", err)
	}
	return conf, nil
}

// NewRootCmd returns the verus command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "verus",
		Short: "Command line client for the Verus daemon's JSON-RPC interface",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			if cmd.Name() == "version" {
				return nil
			}

			config, err = ParseConfig(cmd)
			if err != nil {
				return err
			}

			if config.LogFormat == cfg.LogFormatJSON {
				logger = log.NewJSONLogger(os.Stderr)
			} else {
				logger = log.NewLogger(os.Stderr)
			}

			logger, err = cmtflags.ParseLogLevel(config.LogLevel, logger, cfg.DefaultLogLevel)
			if err != nil {
				return err
			}

			return nil
		},
	}
	registerFlagsRootCmd(rootCmd)

	rootCmd.AddCommand(
		NewCallCmd(),
		NewListCommandsCmd(client.DefaultRegistry()),
		NewConfigCmd(),
		NewMonitorCmd(),
		NewVersionCmd(),
	)
	AddRegistryCommands(rootCmd, client.DefaultRegistry())

	return rootCmd
}
