// Command sprout serves the sprout site.
//
// Running it without a subcommand is the same as "sprout serve".
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Version:       version,
		Use:           "sprout",
		Short:         "File-routed page server with on-demand styling",
		Long:          `sprout renders the pages of its route manifest on the server and styles them from the classes they use.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "config file path (default: ./config.yaml when present)")

	serve := newServeCmd()
	root.Flags().AddFlagSet(serve.Flags())
	root.RunE = serve.RunE

	root.AddCommand(serve, newRoutesCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sprout:", err)
		os.Exit(1)
	}
}
