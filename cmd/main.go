package cmd

import (
	"github.com/netrixframework/safez3/cmd/check"
	"github.com/netrixframework/safez3/cmd/info"
	"github.com/netrixframework/safez3/cmd/serve"
	"github.com/netrixframework/safez3/config"
	"github.com/spf13/cobra"
)

// RootCmd returns the root cobra command of the tool
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "safez3",
		Short:         "Check SMT-LIB2 scripts with Z3, locally or over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVarP(&config.ConfigPath, "config", "c", "config.json", "Config file path")
	cmd.AddCommand(check.CheckCmd())
	cmd.AddCommand(serve.ServeCmd())
	cmd.AddCommand(info.ParamsCmd())
	cmd.AddCommand(info.VersionCmd())
	return cmd
}
