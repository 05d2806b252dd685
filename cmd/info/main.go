package info

import (
	"fmt"
	"text/tabwriter"

	"github.com/netrixframework/safez3/config"
	"github.com/netrixframework/safez3/context"
	"github.com/netrixframework/safez3/log"
	"github.com/netrixframework/safez3/z3"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ParamsCmd returns the command listing the solver parameters
func ParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List the parameters the configured solver accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.ParseConfigOrDefault(config.ConfigPath)
			if err != nil {
				return errors.Wrap(err, "failed to parse config")
			}
			ctx := context.NewRootContext(conf, log.Nop())

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range ctx.SolverParams() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Kind, p.Documentation)
			}
			return w.Flush()
		},
	}
}

// VersionCmd returns the command printing the engine version
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the linked Z3 library",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), z3.Version())
		},
	}
}
