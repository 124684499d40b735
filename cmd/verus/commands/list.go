package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	cfg "github.com/verus-go/verusrpc/config"
	"github.com/verus-go/verusrpc/rpc/client"
)

// NewListCommandsCmd returns the "commands" command, which lists reg.
func NewListCommandsCmd(reg *client.Registry) *cobra.Command {
	return &cobra.Command{
		Use:       "commands [category]",
		Short:     "List the supported daemon commands",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: reg.Categories(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds := reg.Commands()
			if len(args) == 1 {
				cmds = reg.Category(args[0])
				if len(cmds) == 0 {
					return fmt.Errorf("unknown category %q (one of %v)", args[0], reg.Categories())
				}
			}

			if config.Output == cfg.OutputJSON {
				return writeCommandsJSON(cmd, cmds)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderCommands(cmds, isTerminal(cmd)))
			return nil
		},
	}
}

type commandJSON struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Usage    string `json:"usage,omitempty"`
	MinArgs  int    `json:"min_args"`
	MaxArgs  int    `json:"max_args"`
	Help     string `json:"help"`
}

func writeCommandsJSON(cmd *cobra.Command, cmds []client.Command) error {
	out := make([]commandJSON, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, commandJSON{
			Name:     c.Name,
			Category: c.Category,
			Usage:    c.Usage,
			MinArgs:  c.MinArgs,
			MaxArgs:  c.MaxArgs,
			Help:     c.Help,
		})
	}
	return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
}

func renderCommands(cmds []client.Command, pretty bool) string {
	tw := table.NewWriter()
	if pretty {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(plainStyle())
	}
	tw.AppendHeader(table.Row{"Command", "Category", "Arguments", "Description"})
	for _, c := range cmds {
		tw.AppendRow(table.Row{c.Name, c.Category, c.Usage, c.Help})
	}
	return tw.Render()
}

// plainStyle draws no borders, for output that is piped or grepped.
func plainStyle() table.Style {
	style := table.StyleDefault
	style.Options = table.OptionsNoBordersAndSeparators
	style.Format.Header = text.FormatDefault
	return style
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
