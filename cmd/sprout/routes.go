package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sprout"
	"github.com/dmitrymomot/sprout/pkg/logger"
)

func newRoutesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the compiled route manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// listing routes needs no external connections
			cfg.RedisURL = ""
			app, cleanup, err := newApp(cmd.Context(), cfg, logger.NewNope())
			if err != nil {
				return err
			}
			defer func() { _ = cleanup(cmd.Context()) }()

			asYAML, _ := cmd.Flags().GetBool("yaml")
			if asYAML {
				return writeRoutesYAML(cmd.OutOrStdout(), app.Routes())
			}
			return writeRoutesTable(cmd.OutOrStdout(), app.Routes())
		},
	}

	cmd.Flags().Bool("yaml", false, "print routes as YAML")
	return cmd
}

func writeRoutesTable(w io.Writer, routes []sprout.RouteInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tFILE\tKIND\tMETHODS\tPARAMS")
	for _, r := range routes {
		params := strings.Join(r.Params, ",")
		if params == "" {
			params = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Pattern, r.File, r.Kind, strings.Join(r.Methods, ","), params)
	}
	return tw.Flush()
}

func writeRoutesYAML(w io.Writer, routes []sprout.RouteInfo) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]sprout.RouteInfo{"routes": routes}); err != nil {
		return fmt.Errorf("encode routes: %w", err)
	}
	return enc.Close()
}
