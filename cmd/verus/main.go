package main

import (
	"os"
	"path/filepath"

	cmd "github.com/verus-go/verusrpc/cmd/verus/commands"
	cfg "github.com/verus-go/verusrpc/config"
	"github.com/verus-go/verusrpc/libs/cli"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	exec := cli.PrepareBaseCmd(rootCmd, cmd.EnvPrefix, os.ExpandEnv(filepath.Join("$HOME", cfg.DefaultVerusDir)))
	if err := exec.Execute(); err != nil {
		os.Exit(1)
	}
}
