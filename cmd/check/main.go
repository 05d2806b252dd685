package check

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/netrixframework/safez3/config"
	"github.com/netrixframework/safez3/context"
	"github.com/netrixframework/safez3/log"
	"github.com/netrixframework/safez3/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// CheckCmd returns the command that checks one SMT-LIB2 script
func CheckCmd() *cobra.Command {
	var remote string
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check the satisfiability of an SMT-LIB2 script (\"-\" reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := readScript(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			if remote != "" {
				out, err := util.SendMsg("POST", remote+"/check", script, util.TextRequest())
				if err != nil {
					return errors.Wrapf(err, "remote check failed: %s", out)
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			conf, err := config.ParseConfigOrDefault(config.ConfigPath)
			if err != nil {
				return errors.Wrap(err, "failed to parse config")
			}
			log.Init(conf.LogConfig)
			defer log.Destroy()
			ctx := context.NewRootContext(conf, log.DefaultLogger)

			report, err := ctx.Check(script)
			if err != nil {
				return errors.Wrap(err, "check failed")
			}
			bs, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bs))
			return nil
		},
	}
	cmd.Flags().StringVar(&remote, "remote", "", "Address of a running `safez3 serve` to check on")
	return cmd
}

func readScript(stdin io.Reader, path string) (string, error) {
	var (
		bs  []byte
		err error
	)
	if path == "-" {
		bs, err = io.ReadAll(stdin)
	} else {
		bs, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrap(err, "error reading script")
	}
	return string(bs), nil
}
