package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exitErr struct{ code int }

func (e exitErr) Error() string { return "exit" }
func (e exitErr) ExitCode() int { return e.code }

func TestSetupEnv(t *testing.T) {
	cases := []struct {
		args     []string
		env      map[string]string
		expected string
	}{
		{nil, nil, ""},
		{[]string{"--foobar", "bang!"}, nil, "bang!"},
		// make sure reset is good
		{nil, nil, ""},
		// test both variants of the prefix
		{nil, map[string]string{"DEMO_FOOBAR": "good"}, "good"},
		{nil, map[string]string{"DEMOFOOBAR": "silly"}, "silly"},
		// and that cli overrides env...
		{[]string{"--foobar", "important"}, map[string]string{"DEMO_FOOBAR": "ignored"}, "important"},
	}

	for idx, tc := range cases {
		viper.Reset()
		var foo string
		demo := &cobra.Command{
			Use: "demo",
			RunE: func(cmd *cobra.Command, args []string) error {
				foo = viper.GetString("foobar")
				return nil
			},
		}
		demo.Flags().String("foobar", "", "Some test value from config")
		cmd := PrepareBaseCmd(demo, "DEMO", t.TempDir())
		cmd.Exit = func(int) {}

		args := append([]string{cmd.Use}, tc.args...)
		err := RunWithArgs(cmd, args, tc.env)
		require.NoError(t, err, idx)
		assert.Equal(t, tc.expected, foo, idx)

		for k := range tc.env {
			os.Unsetenv(k)
		}
		os.Unsetenv("DEMO_FOOBAR")
	}
}

func TestSetupConfigFile(t *testing.T) {
	viper.Reset()
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "config"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, "config", "config.toml"),
		[]byte("network = \"testnet\"\n"), 0o600))

	var network, gotHome string
	demo := &cobra.Command{
		Use: "demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			network = viper.GetString("network")
			gotHome = viper.GetString(HomeFlag)
			return nil
		},
	}
	cmd := PrepareBaseCmd(demo, "DEMO", home)
	cmd.Exit = func(int) {}

	require.NoError(t, RunWithArgs(cmd, []string{"demo"}, nil))
	assert.Equal(t, "testnet", network)
	assert.Equal(t, home, gotHome)
}

func TestSetupExitCode(t *testing.T) {
	cases := map[string]struct {
		err  error
		code int
	}{
		"plain error": {errors.New("boom"), 1},
		"exit coder":  {exitErr{code: 3}, 3},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			viper.Reset()
			demo := &cobra.Command{
				Use:  "demo",
				RunE: func(*cobra.Command, []string) error { return tc.err },
			}
			cmd := PrepareBaseCmd(demo, "DEMO", t.TempDir())
			got := -1
			cmd.Exit = func(code int) { got = code }

			_, stderr, err := RunCaptureWithArgs(cmd, []string{"demo"}, nil)
			require.Error(t, err)
			assert.Equal(t, tc.code, got)
			assert.Contains(t, stderr, "ERROR:")
		})
	}
}
