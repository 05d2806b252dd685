package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/netrixframework/safez3/cmd"
	flag "github.com/spf13/pflag"
)

func main() {
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	if err := cmd.RootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
