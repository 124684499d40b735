package config

import (
	"net"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	cmtos "github.com/verus-go/verusrpc/internal/os"
)

const (
	// LogFormatPlain is a format for colored text
	LogFormatPlain = "plain"
	// LogFormatJSON is a format for json output
	LogFormatJSON = "json"

	// OutputText prints results as indented JSON or bare strings.
	OutputText = "text"
	// OutputJSON prints results as compact JSON.
	OutputJSON = "json"

	// DefaultLogLevel defines a default log level as INFO.
	DefaultLogLevel = "info"

	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// NOTE: Most of the structs & relevant comments + the
// default configuration options were used to manually
// generate the config.toml. Please reflect any changes
// made here in the config.toml.tpl template.
var (
	DefaultVerusDir       = ".verusrpc"
	DefaultConfigDir      = "config"
	DefaultConfigFileName = "config.toml"

	defaultConfigFilePath = filepath.Join(DefaultConfigDir, DefaultConfigFileName)
)

// Network holds the connection defaults of a Verus chain.
type Network struct {
	Name           string
	RPCPort        int
	NativeCurrency string
	// Daemon conf file, relative to the user's home directory.
	DaemonConf string
}

var networks = map[string]Network{
	NetworkMainnet: {
		Name:           NetworkMainnet,
		RPCPort:        27486,
		NativeCurrency: "VRSC",
		DaemonConf:     filepath.Join(".komodo", "VRSC", "VRSC.conf"),
	},
	NetworkTestnet: {
		Name:           NetworkTestnet,
		RPCPort:        18843,
		NativeCurrency: "VRSCTEST",
		DaemonConf:     filepath.Join(".komodo", "vrsctest", "vrsctest.conf"),
	},
}

// LookupNetwork returns the network called name, ignoring case.
func LookupNetwork(name string) (Network, error) {
	n, ok := networks[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Network{}, ErrUnknownNetwork{Name: name}
	}
	return n, nil
}

// Networks returns the names of the known networks.
func Networks() []string {
	return []string{NetworkMainnet, NetworkTestnet}
}

// Config defines the top level configuration for a Verus RPC client
type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`

	// Options for services
	RPC             *RPCConfig             `mapstructure:"rpc"`
	Monitor         *MonitorConfig         `mapstructure:"monitor"`
	Instrumentation *InstrumentationConfig `mapstructure:"instrumentation"`
}

// DefaultConfig returns a default configuration for a Verus RPC client
func DefaultConfig() *Config {
	return &Config{
		BaseConfig:      DefaultBaseConfig(),
		RPC:             DefaultRPCConfig(),
		Monitor:         DefaultMonitorConfig(),
		Instrumentation: DefaultInstrumentationConfig(),
	}
}

// TestConfig returns a configuration that can be used for testing
func TestConfig() *Config {
	return &Config{
		BaseConfig:      TestBaseConfig(),
		RPC:             TestRPCConfig(),
		Monitor:         TestMonitorConfig(),
		Instrumentation: TestInstrumentationConfig(),
	}
}

// SetRoot sets the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	cfg.RPC.RootDir = root
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *Config) ValidateBasic() error {
	if err := cfg.BaseConfig.ValidateBasic(); err != nil {
		return err
	}
	if err := cfg.RPC.ValidateBasic(); err != nil {
		return ErrInSection{Section: "rpc", Err: err}
	}
	if err := cfg.Monitor.ValidateBasic(); err != nil {
		return ErrInSection{Section: "monitor", Err: err}
	}
	if err := cfg.Instrumentation.ValidateBasic(); err != nil {
		return ErrInSection{Section: "instrumentation", Err: err}
	}
	return nil
}

// NetworkParams returns the selected network. ValidateBasic guarantees it
// exists.
func (cfg *Config) NetworkParams() (Network, error) {
	return LookupNetwork(cfg.Network)
}

// RPCPort returns the daemon port: an explicit port wins, otherwise the
// network default. It is 0 for an unknown network.
func (cfg *Config) RPCPort() int {
	if cfg.RPC.Port > 0 {
		return cfg.RPC.Port
	}
	n, err := cfg.NetworkParams()
	if err != nil {
		return 0
	}
	return n.RPCPort
}

// RemoteAddr returns the daemon endpoint, e.g. "http://127.0.0.1:27486/".
func (cfg *Config) RemoteAddr() string {
	scheme := "http"
	if cfg.RPC.TLS {
		scheme = "https"
	}
	return scheme + "://" + net.JoinHostPort(cfg.RPC.Host, strconv.Itoa(cfg.RPCPort())) + "/"
}

// DaemonConfFile returns the daemon conf file to read credentials from: the
// configured one, or the network's default under the user's home directory.
func (cfg *Config) DaemonConfFile() (string, error) {
	if cfg.RPC.DaemonConf != "" {
		path, err := cmtos.ExpandHome(cfg.RPC.DaemonConf)
		if err != nil {
			return "", err
		}
		return rootify(path, cfg.RootDir), nil
	}
	n, err := cfg.NetworkParams()
	if err != nil {
		return "", err
	}
	return cmtos.ExpandHome(filepath.Join("~", n.DaemonConf))
}

// ApplyDaemonConf fills the RPC settings left unset from dc. Values set in
// the config file, the environment or on the command line are kept.
func (cfg *Config) ApplyDaemonConf(dc *DaemonConf) {
	if cfg.RPC.User == "" {
		cfg.RPC.User = dc.RPCUser
	}
	if cfg.RPC.Password == "" {
		cfg.RPC.Password = dc.RPCPassword
	}
	if cfg.RPC.Port == 0 {
		cfg.RPC.Port = dc.RPCPort
	}
	if cfg.RPC.Host == "" {
		cfg.RPC.Host = dc.RPCHost
	}
}

//-----------------------------------------------------------------------------
// BaseConfig

// BaseConfig defines the base configuration for a Verus RPC client
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home"`

	// Chain to talk to: mainnet | testnet
	Network string `mapstructure:"network"`

	// Output level for logging
	LogLevel string `mapstructure:"log_level"`

	// Output format: 'plain' (colored text) or 'json'
	LogFormat string `mapstructure:"log_format"`

	// How command results are printed: 'text' or 'json'
	Output string `mapstructure:"output"`
}

// DefaultBaseConfig returns a default base configuration for a Verus RPC client
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		Network:   NetworkMainnet,
		LogLevel:  DefaultLogLevel,
		LogFormat: LogFormatPlain,
		Output:    OutputText,
	}
}

// TestBaseConfig returns a base configuration for testing a Verus RPC client
func TestBaseConfig() BaseConfig {
	cfg := DefaultBaseConfig()
	cfg.Network = NetworkTestnet
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg BaseConfig) ValidateBasic() error {
	if _, err := LookupNetwork(cfg.Network); err != nil {
		return err
	}
	switch cfg.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return ErrUnknownLogFormat
	}
	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		return ErrUnknownOutput
	}
	return nil
}

//-----------------------------------------------------------------------------
// RPCConfig

// RPCConfig defines the connection to the daemon.
type RPCConfig struct {
	RootDir string `mapstructure:"home"`

	// Host the daemon listens on.
	Host string `mapstructure:"host"`

	// Port the daemon listens on. 0 selects the network default.
	Port int `mapstructure:"port"`

	// Credentials, as rpcuser and rpcpassword in the daemon conf file.
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`

	// Daemon conf file read for credentials missing above.
	// Empty selects the network default.
	DaemonConf string `mapstructure:"daemon_conf"`

	// Connect with https.
	TLS bool `mapstructure:"tls"`

	// Maximum duration of a single call. 0 means no timeout.
	Timeout time.Duration `mapstructure:"timeout"`
}

// DefaultRPCConfig returns a default configuration for the daemon connection.
func DefaultRPCConfig() *RPCConfig {
	return &RPCConfig{
		Host:    "127.0.0.1",
		Timeout: 30 * time.Second,
	}
}

// TestRPCConfig returns a configuration for testing the daemon connection.
func TestRPCConfig() *RPCConfig {
	cfg := DefaultRPCConfig()
	cfg.User = "user"
	cfg.Password = "password"
	cfg.Timeout = 5 * time.Second
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *RPCConfig) ValidateBasic() error {
	if cfg.Host == "" {
		return ErrEmptyHost
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return ErrInvalidPort{Port: cfg.Port}
	}
	if cfg.Timeout < 0 {
		return ErrNegativeTimeout
	}
	return nil
}

//-----------------------------------------------------------------------------
// MonitorConfig

// MonitorConfig defines the chain poller run by "verus monitor".
type MonitorConfig struct {
	// How often getblockcount and getinfo are polled.
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// DefaultMonitorConfig returns a default configuration for the monitor.
func DefaultMonitorConfig() *MonitorConfig {
	return &MonitorConfig{
		PollInterval: 30 * time.Second,
	}
}

// TestMonitorConfig returns a configuration for testing the monitor.
func TestMonitorConfig() *MonitorConfig {
	return &MonitorConfig{
		PollInterval: 10 * time.Millisecond,
	}
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *MonitorConfig) ValidateBasic() error {
	if cfg.PollInterval <= 0 {
		return ErrNonPositivePollInterval
	}
	return nil
}

//-----------------------------------------------------------------------------
// InstrumentationConfig

// InstrumentationConfig defines the configuration for metrics reporting.
type InstrumentationConfig struct {
	// When true, Prometheus metrics are served under /metrics on
	// PrometheusListenAddr.
	Prometheus bool `mapstructure:"prometheus"`

	// Address to listen for Prometheus collector(s) connections.
	PrometheusListenAddr string `mapstructure:"prometheus_listen_addr"`

	// Maximum number of simultaneous connections.
	// If you want to accept a larger number than the default, make sure
	// you increase your OS limits.
	// 0 - unlimited.
	MaxOpenConnections int `mapstructure:"max_open_connections"`

	// Instrumentation namespace.
	Namespace string `mapstructure:"namespace"`
}

// DefaultInstrumentationConfig returns a default configuration for metrics
// reporting.
func DefaultInstrumentationConfig() *InstrumentationConfig {
	return &InstrumentationConfig{
		Prometheus:           false,
		PrometheusListenAddr: ":26660",
		MaxOpenConnections:   3,
		Namespace:            "verus",
	}
}

// TestInstrumentationConfig returns a default configuration for metrics
// reporting.
func TestInstrumentationConfig() *InstrumentationConfig {
	return DefaultInstrumentationConfig()
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *InstrumentationConfig) ValidateBasic() error {
	if cfg.MaxOpenConnections < 0 {
		return ErrNegativeMaxOpenConnections
	}
	return nil
}

// IsPrometheusEnabled returns true if Prometheus metric gathering is enabled.
func (cfg *InstrumentationConfig) IsPrometheusEnabled() bool {
	return cfg.Prometheus && cfg.PrometheusListenAddr != ""
}

//-----------------------------------------------------------------------------
// Utils

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
