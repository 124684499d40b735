package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verus-go/verusrpc/rpc/client"
	rpctypes "github.com/verus-go/verusrpc/rpc/jsonrpc/types"
	"github.com/verus-go/verusrpc/version"
)

// NewVersionCmd returns the "version" command.
func NewVersionCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !verbose {
				fmt.Fprintln(cmd.OutOrStdout(), version.Version())
				return nil
			}
			values, err := json.MarshalIndent(struct {
				Verus    string `json:"verus"`
				JSONRPC  string `json:"jsonrpc"`
				Commands int    `json:"commands"`
			}{
				Verus:    version.Version(),
				JSONRPC:  rpctypes.JSONRPCVersion,
				Commands: len(client.DefaultRegistry().Commands()),
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal version info: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(values))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show protocol and registry versions")
	return cmd
}
