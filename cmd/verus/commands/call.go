package commands

import (
	"github.com/spf13/cobra"

	ctypes "github.com/verus-go/verusrpc/rpc/core/types"
)

// NewCallCmd returns the generic "call" command. The method is not checked
// against the registry, so commands the registry does not know yet can
// still be reached.
func NewCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <method> [args...]",
		Short: "Call any daemon method",
		Long: `Call any daemon method with positional arguments.

Each argument that is a complete JSON value (number, true, false, null,
object, array or quoted string) is sent as that value; anything else is
sent as a string.`,
		Example: `  verus call getblock '"0000000a1b2c"' 2
  verus call estimateconversion '{"currency":"VRSC","convertto":"vETH","amount":10}'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var result ctypes.Value
			if _, err := c.Call(cmd.Context(), args[0], parseArgs(args[1:]), &result); err != nil {
				return classify(err)
			}
			return printResult(cmd, result)
		},
	}
}
