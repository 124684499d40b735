package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verus-go/verusrpc/config"
)

func writeDaemonConf(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "VRSC.conf")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadDaemonConf(t *testing.T) {
	path := writeDaemonConf(t, `# written by verusd
rpcuser=user1234
rpcpassword=pass5678
rpcport=27486
server=1
txindex=1
rpcallowip=127.0.0.1
addnode=1.2.3.4
addnode=5.6.7.8
`)

	dc, err := config.LoadDaemonConf(path)
	require.NoError(t, err)
	assert.Equal(t, "user1234", dc.RPCUser)
	assert.Equal(t, "pass5678", dc.RPCPassword)
	assert.Equal(t, 27486, dc.RPCPort)
	assert.Empty(t, dc.RPCHost)
}

func TestLoadDaemonConfHost(t *testing.T) {
	testcases := map[string]struct {
		contents string
		host     string
	}{
		"rpcconnect":          {"rpcconnect=10.0.0.5\n", "10.0.0.5"},
		"rpcbind with port":   {"rpcbind=192.168.1.7:27486\n", "192.168.1.7"},
		"wildcard bind":       {"rpcbind=0.0.0.0\n", ""},
		"connect before bind": {"rpcbind=10.0.0.9\nrpcconnect=10.0.0.5\n", "10.0.0.5"},
	}
	for desc, tc := range testcases {
		t.Run(desc, func(t *testing.T) {
			dc, err := config.LoadDaemonConf(writeDaemonConf(t, tc.contents))
			require.NoError(t, err)
			assert.Equal(t, tc.host, dc.RPCHost)
		})
	}
}

func TestLoadDaemonConfErrors(t *testing.T) {
	_, err := config.LoadDaemonConf(filepath.Join(t.TempDir(), "missing.conf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading daemon conf")

	_, err = config.LoadDaemonConf(writeDaemonConf(t, "rpcport=70000\n"))
	var portErr config.ErrInvalidPort
	require.ErrorAs(t, err, &portErr)
	assert.Equal(t, 70000, portErr.Port)
}
