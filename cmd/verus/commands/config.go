package commands

import (
	"github.com/spf13/cobra"

	cfg "github.com/verus-go/verusrpc/config"
	cmtos "github.com/verus-go/verusrpc/internal/os"
)

// NewConfigCmd returns the "config" command and its subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Utilities for managing configuration",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the config file to the home directory",
		Long: `Write <home>/config/config.toml, filled with the defaults and the values
set by flags and the environment. An existing file is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := cfg.ConfigFile(config.RootDir)
			if cmtos.FileExists(path) {
				logger.Info("Found config file", "path", path)
				return nil
			}
			if err := cfg.EnsureRoot(config.RootDir, config); err != nil {
				return err
			}
			logger.Info("Generated config file", "path", path)
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the configuration after merging the config file, the environment
and flags, as TOML. The RPC password is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shown := *config
			rpc := *config.RPC
			if rpc.Password != "" {
				rpc.Password = "********"
			}
			shown.RPC = &rpc

			contents, err := cfg.RenderConfig(&shown)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(contents)
			return err
		},
	}
}
