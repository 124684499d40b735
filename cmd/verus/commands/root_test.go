package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/verus-go/verusrpc/config"
	"github.com/verus-go/verusrpc/libs/cli"
	rpctypes "github.com/verus-go/verusrpc/rpc/jsonrpc/types"
	rpctest "github.com/verus-go/verusrpc/rpc/test"
)

func newDaemon(t *testing.T, results map[string]any) *rpctest.Daemon {
	t.Helper()
	return rpctest.NewDaemon(t, results)
}

// daemonFlags points the CLI at d.
func daemonFlags(t *testing.T, d *rpctest.Daemon) []string {
	t.Helper()
	host, port := d.HostPort(t)
	return []string{"--host", host, "--port", strconv.Itoa(port), "--rpcuser", "user", "--rpcpassword", "pass"}
}

type runResult struct {
	stdout   string
	stderr   string
	err      error
	exitCode int
}

// run executes the verus command tree with args, on fresh global state.
func run(t *testing.T, home string, args []string, env map[string]string) runResult {
	t.Helper()
	viper.Reset()
	config = cfg.DefaultConfig()

	res := runResult{exitCode: -1}
	exec := cli.PrepareBaseCmd(NewRootCmd(), EnvPrefix, home)
	exec.Exit = func(code int) { res.exitCode = code }

	res.stdout, res.stderr, res.err = cli.RunCaptureWithArgs(exec, append([]string{"verus"}, args...), env)
	return res
}

func TestCallCommand(t *testing.T) {
	d := newDaemon(t, map[string]any{"getblockcount": 100})

	res := run(t, t.TempDir(), append(daemonFlags(t, d), "call", "getblockcount"), nil)
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "100\n", res.stdout)

	reqs := d.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "getblockcount", reqs[0].Method)
	assert.Equal(t, "[]", reqs[0].Params)
	assert.Equal(t, "user", reqs[0].User)
	assert.Equal(t, "pass", reqs[0].Password)
}

func TestCallUnknownMethodReachesDaemon(t *testing.T) {
	d := newDaemon(t, map[string]any{"z_newfeature": "ok"})

	res := run(t, t.TempDir(), append(daemonFlags(t, d), "call", "z_newfeature", "abc", `{"a":1}`), nil)
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "ok\n", res.stdout)
	assert.JSONEq(t, `["abc",{"a":1}]`, d.Requests()[0].Params)
}

func TestRegistryCommand(t *testing.T) {
	d := newDaemon(t, map[string]any{
		"getblock": map[string]any{"height": 100, "hash": "00ab"},
	})

	res := run(t, t.TempDir(), append(daemonFlags(t, d), "getblock", "100", "2"), nil)
	require.NoError(t, res.err, res.stderr)
	assert.JSONEq(t, `{"height":100,"hash":"00ab"}`, res.stdout)
	assert.Contains(t, res.stdout, "\n  \"", "text output is indented")
	assert.Equal(t, "[100,2]", d.Requests()[0].Params)

	res = run(t, t.TempDir(), append(daemonFlags(t, d), "--output", "json", "getblock", `"00ab"`), nil)
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "{\"hash\":\"00ab\",\"height\":100}\n", res.stdout)
	assert.Equal(t, `["00ab"]`, d.Requests()[1].Params)
}

func TestRegistryCommandArity(t *testing.T) {
	d := newDaemon(t, map[string]any{"getinfo": map[string]any{}})

	res := run(t, t.TempDir(), append(daemonFlags(t, d), "getinfo", "extra"), nil)
	require.Error(t, res.err)
	assert.Equal(t, 1, res.exitCode)
	assert.Contains(t, res.stderr, "getinfo takes 0 argument(s), got 1")
	assert.Empty(t, d.Requests())
}

func TestErrorsAreClassified(t *testing.T) {
	d := newDaemon(t, map[string]any{})
	d.SetError("validateaddress", rpctypes.CodeInvalidAddress, "Invalid address")

	res := run(t, t.TempDir(), append(daemonFlags(t, d), "validateaddress", "nope"), nil)
	require.Error(t, res.err)
	assert.Equal(t, 1, res.exitCode)
	assert.Contains(t, res.stderr, "daemon rejected the call: RPC error -5 - Invalid address")

	// nothing listens on the port of a closed server
	addr := daemonFlags(t, d)
	d.Close()
	res = run(t, t.TempDir(), append(addr, "getblockcount"), nil)
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "cannot reach daemon at")
}

func TestPasswordFromEnv(t *testing.T) {
	d := newDaemon(t, map[string]any{"getbestblockhash": "00ff"})
	flags := daemonFlags(t, d)[:4] // host and port only

	res := run(t, t.TempDir(), append(flags, "--rpcuser", "envtest", "getbestblockhash"),
		map[string]string{"VERUS_RPCPASSWORD": "fromenv"})
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "00ff\n", res.stdout)
	assert.Equal(t, "fromenv", d.Requests()[0].Password)
}

func TestDaemonConfSuppliesCredentialsAndPort(t *testing.T) {
	d := newDaemon(t, map[string]any{"getblockcount": 7})
	_, port := d.HostPort(t)

	confPath := filepath.Join(t.TempDir(), "vrsctest.conf")
	require.NoError(t, os.WriteFile(confPath,
		[]byte(fmt.Sprintf("rpcuser=confuser\nrpcpassword=confpass\nrpcport=%d\n", port)), 0o600))

	res := run(t, t.TempDir(), []string{"--network", "testnet", "--daemon-conf", confPath, "getblockcount"}, nil)
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "7\n", res.stdout)
	reqs := d.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "confuser", reqs[0].User)
	assert.Equal(t, "confpass", reqs[0].Password)

	res = run(t, t.TempDir(), []string{"--daemon-conf", filepath.Join(t.TempDir(), "missing.conf"), "getblockcount"}, nil)
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "does not exist")
}

func TestListCommands(t *testing.T) {
	res := run(t, t.TempDir(), []string{"commands", "kv"}, nil)
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "kvsearch")
	assert.Contains(t, res.stdout, "kvupdate")
	assert.NotContains(t, res.stdout, "getinfo")

	res = run(t, t.TempDir(), []string{"--output", "json", "commands", "kv"}, nil)
	require.NoError(t, res.err, res.stderr)
	var listed []commandJSON
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "kv", listed[0].Category)

	res = run(t, t.TempDir(), []string{"commands", "nope"}, nil)
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, `unknown category "nope"`)
}

func TestConfigInitAndShow(t *testing.T) {
	home := t.TempDir()

	res := run(t, home, []string{"--network", "testnet", "config", "init"}, nil)
	require.NoError(t, res.err, res.stderr)
	data, err := os.ReadFile(cfg.ConfigFile(home))
	require.NoError(t, err)
	assert.Contains(t, string(data), `network = "testnet"`)

	// the file is picked up on the next run; flags still win
	res = run(t, home, []string{"--rpcpassword", "secret", "--port", "1234", "config", "show"}, nil)
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, `network = "testnet"`)
	assert.Contains(t, res.stdout, "port = 1234")
	assert.Contains(t, res.stdout, `password = "********"`)
	assert.NotContains(t, res.stdout, "secret")
}

func TestInvalidConfig(t *testing.T) {
	res := run(t, t.TempDir(), []string{"--network", "regtest", "commands"}, nil)
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, `unknown network "regtest"`)
}

func TestVersion(t *testing.T) {
	res := run(t, t.TempDir(), []string{"version"}, nil)
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "0.1.0-dev\n", res.stdout)

	res = run(t, t.TempDir(), []string{"version", "--verbose"}, nil)
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, `"jsonrpc": "1.0"`)
}

func TestParseArg(t *testing.T) {
	testCases := []struct {
		arg  string
		want any
	}{
		{"100", json.Number("100")},
		{"1.00000001", json.Number("1.00000001")},
		{"true", true},
		{"null", nil},
		{`"100"`, "100"},
		{"RAddress", "RAddress"},
		{"000000ab", "000000ab"},
		{"", ""},
		{"1 2", "1 2"},
		{`{"currency":"VRSC"}`, map[string]any{"currency": "VRSC"}},
		{`[1,"a"]`, []any{json.Number("1"), "a"}},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, parseArg(tc.arg), tc.arg)
	}
}
