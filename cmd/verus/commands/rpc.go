package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/verus-go/verusrpc/rpc/client"
)

// reserved names are taken by cobra; those daemon commands stay reachable
// through "verus call".
var reserved = map[string]bool{
	"help":       true,
	"completion": true,
}

// AddRegistryCommands adds one subcommand per command of reg to root,
// grouped by category.
func AddRegistryCommands(root *cobra.Command, reg *client.Registry) {
	for _, category := range reg.Categories() {
		root.AddGroup(&cobra.Group{ID: category, Title: categoryTitle(category)})
	}
	for _, c := range reg.Commands() {
		if reserved[c.Name] {
			continue
		}
		root.AddCommand(newRegistryCmd(reg, c))
	}
}

func newRegistryCmd(reg *client.Registry, c client.Command) *cobra.Command {
	use := c.Name
	if c.Usage != "" {
		use += " " + c.Usage
	}
	return &cobra.Command{
		Use:     use,
		Short:   c.Help,
		GroupID: c.Category,
		Args: func(_ *cobra.Command, args []string) error {
			return c.CheckArity(len(args))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := newClient()
			if err != nil {
				return err
			}
			v, err := reg.Invoke(cmd.Context(), cl, c.Name, parseArgs(args)...)
			if err != nil {
				return classify(err)
			}
			return printResult(cmd, v)
		},
	}
}

func categoryTitle(category string) string {
	return strings.ToUpper(category[:1]) + category[1:] + " Commands:"
}
