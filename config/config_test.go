package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verus-go/verusrpc/config"
)

func TestDefaultConfig(t *testing.T) {
	assert := assert.New(t)

	// set up some defaults
	cfg := config.DefaultConfig()
	assert.NotNil(cfg.RPC)
	assert.NotNil(cfg.Monitor)
	assert.NotNil(cfg.Instrumentation)

	// check the root dir stuff...
	cfg.SetRoot("/foo")
	assert.Equal("/foo", cfg.RootDir)
	assert.Equal("/foo", cfg.RPC.RootDir)

	assert.Equal(config.NetworkMainnet, cfg.Network)
	assert.Equal(27486, cfg.RPCPort())
	assert.Equal("http://127.0.0.1:27486/", cfg.RemoteAddr())
}

func TestConfigValidateBasic(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.ValidateBasic())

	// tamper with timeout
	cfg.RPC.Timeout = -10 * time.Second
	err := cfg.ValidateBasic()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNegativeTimeout)
	var inSection config.ErrInSection
	require.ErrorAs(t, err, &inSection)
	assert.Equal(t, "rpc", inSection.Section)
	cfg.RPC.Timeout = 0
	require.NoError(t, cfg.ValidateBasic())

	cfg.Monitor.PollInterval = 0
	assert.ErrorIs(t, cfg.ValidateBasic(), config.ErrNonPositivePollInterval)
}

func TestBaseConfigValidateBasic(t *testing.T) {
	cfg := config.TestBaseConfig()
	require.NoError(t, cfg.ValidateBasic())

	// tamper with log format
	cfg.LogFormat = "invalid"
	require.ErrorIs(t, cfg.ValidateBasic(), config.ErrUnknownLogFormat)
	cfg.LogFormat = config.LogFormatJSON

	cfg.Output = "yaml"
	require.ErrorIs(t, cfg.ValidateBasic(), config.ErrUnknownOutput)
	cfg.Output = config.OutputJSON

	cfg.Network = "regtest"
	var unknown config.ErrUnknownNetwork
	require.ErrorAs(t, cfg.ValidateBasic(), &unknown)
	assert.Equal(t, "regtest", unknown.Name)
}

func TestRPCConfigValidateBasic(t *testing.T) {
	testcases := map[string]struct {
		modify    func(*config.RPCConfig)
		expectErr bool
	}{
		"default":       {func(*config.RPCConfig) {}, false},
		"empty host":    {func(c *config.RPCConfig) { c.Host = "" }, true},
		"negative port": {func(c *config.RPCConfig) { c.Port = -1 }, true},
		"port too big":  {func(c *config.RPCConfig) { c.Port = 65536 }, true},
		"max port":      {func(c *config.RPCConfig) { c.Port = 65535 }, false},
		"no timeout":    {func(c *config.RPCConfig) { c.Timeout = 0 }, false},
		"neg timeout":   {func(c *config.RPCConfig) { c.Timeout = -time.Second }, true},
	}
	for desc, tc := range testcases {
		t.Run(desc, func(t *testing.T) {
			cfg := config.DefaultRPCConfig()
			tc.modify(cfg)

			err := cfg.ValidateBasic()
			if tc.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestInstrumentationConfigValidateBasic(t *testing.T) {
	cfg := config.TestInstrumentationConfig()
	require.NoError(t, cfg.ValidateBasic())
	assert.False(t, cfg.IsPrometheusEnabled())

	// tamper with maximum open connections
	cfg.MaxOpenConnections = -1
	require.Error(t, cfg.ValidateBasic())

	cfg.MaxOpenConnections = 3
	cfg.Prometheus = true
	assert.True(t, cfg.IsPrometheusEnabled())
}

func TestLookupNetwork(t *testing.T) {
	for _, name := range []string{"mainnet", "MAINNET", " Mainnet "} {
		n, err := config.LookupNetwork(name)
		require.NoError(t, err, name)
		assert.Equal(t, 27486, n.RPCPort)
		assert.Equal(t, "VRSC", n.NativeCurrency)
	}

	n, err := config.LookupNetwork("TestNet")
	require.NoError(t, err)
	assert.Equal(t, 18843, n.RPCPort)
	assert.Equal(t, "VRSCTEST", n.NativeCurrency)

	_, err = config.LookupNetwork("regtest")
	assert.EqualError(t, err, `unknown network "regtest" (must be 'mainnet' or 'testnet')`)
}

func TestRPCPort(t *testing.T) {
	cfg := config.TestConfig()
	assert.Equal(t, 18843, cfg.RPCPort())

	cfg.Network = "mainnet"
	assert.Equal(t, 27486, cfg.RPCPort())

	// explicit port wins over the network default
	cfg.RPC.Port = 9999
	assert.Equal(t, 9999, cfg.RPCPort())

	cfg.RPC.Port = 0
	cfg.Network = "nowhere"
	assert.Equal(t, 0, cfg.RPCPort())
}

func TestRemoteAddr(t *testing.T) {
	cfg := config.TestConfig()
	assert.Equal(t, "http://127.0.0.1:18843/", cfg.RemoteAddr())

	cfg.RPC.TLS = true
	cfg.RPC.Host = "verus.example.org"
	cfg.RPC.Port = 443
	assert.Equal(t, "https://verus.example.org:443/", cfg.RemoteAddr())

	cfg.RPC.TLS = false
	cfg.RPC.Host = "::1"
	assert.Equal(t, "http://[::1]:443/", cfg.RemoteAddr())
}

func TestDaemonConfFile(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := config.DefaultConfig().SetRoot("/root/dir")
	path, err := cfg.DaemonConfFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".komodo", "VRSC", "VRSC.conf"), path)

	cfg.Network = config.NetworkTestnet
	path, err = cfg.DaemonConfFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".komodo", "vrsctest", "vrsctest.conf"), path)

	cfg.RPC.DaemonConf = "verus.conf"
	path, err = cfg.DaemonConfFile()
	require.NoError(t, err)
	assert.Equal(t, "/root/dir/verus.conf", path)

	cfg.RPC.DaemonConf = "/etc/verus.conf"
	path, err = cfg.DaemonConfFile()
	require.NoError(t, err)
	assert.Equal(t, "/etc/verus.conf", path)
}

func TestApplyDaemonConf(t *testing.T) {
	dc := &config.DaemonConf{
		RPCUser:     "daemonuser",
		RPCPassword: "daemonpass",
		RPCPort:     12345,
		RPCHost:     "10.0.0.2",
	}

	cfg := config.DefaultConfig()
	cfg.ApplyDaemonConf(dc)
	assert.Equal(t, "daemonuser", cfg.RPC.User)
	assert.Equal(t, "daemonpass", cfg.RPC.Password)
	assert.Equal(t, 12345, cfg.RPCPort())
	// the default host is an explicit value
	assert.Equal(t, "127.0.0.1", cfg.RPC.Host)

	cfg = config.DefaultConfig()
	cfg.RPC.User = "flaguser"
	cfg.RPC.Port = 1
	cfg.RPC.Host = ""
	cfg.ApplyDaemonConf(dc)
	assert.Equal(t, "flaguser", cfg.RPC.User)
	assert.Equal(t, "daemonpass", cfg.RPC.Password)
	assert.Equal(t, 1, cfg.RPCPort())
	assert.Equal(t, "10.0.0.2", cfg.RPC.Host)
}
