package serve

import (
	"github.com/netrixframework/safez3/apiserver"
	"github.com/netrixframework/safez3/config"
	"github.com/netrixframework/safez3/context"
	"github.com/netrixframework/safez3/log"
	"github.com/netrixframework/safez3/types"
	"github.com/netrixframework/safez3/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ServeCmd returns the command that runs the API server until interrupted
func ServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve checks over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			termCh := util.Term()

			conf, err := config.ParseConfigOrDefault(config.ConfigPath)
			if err != nil {
				return errors.Wrap(err, "failed to parse config")
			}
			if addr != "" {
				conf.APIServerAddr = addr
			}
			log.Init(conf.LogConfig)
			defer log.Destroy()
			ctx := context.NewRootContext(conf, log.DefaultLogger)

			var server types.Service = apiserver.NewAPIServer(ctx)
			if err := server.Start(); err != nil {
				return err
			}

			<-termCh
			return server.Stop()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overriding server_addr from the config")
	return cmd
}
