// Command categorizr classifies User-Agent strings into device categories.
//
//	categorizr serve                     run the HTTP service
//	categorizr detect [agent...]         classify arguments or stdin lines
//	categorizr check [file]              run an acceptance table
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
	"github.com/dmitrymomot/categorizr/pkg/config"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:          "categorizr",
		Short:        "Mobile-first device detection from User-Agent strings",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.LoadEnvFiles(envFiles...)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "additional .env files to load")

	root.AddCommand(newServeCmd(), newDetectCmd(), newCheckCmd())
	return root
}

// engineFlags override the CATEGORIZR_* environment for one invocation.
type engineFlags struct {
	tabletsAsDesktops bool
	tvsAsDesktops     bool
	robotsAsMobile    bool
}

func (f *engineFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVar(&f.tabletsAsDesktops, "tablets-as-desktops", false, "report tablets as desktop")
	fs.BoolVar(&f.tvsAsDesktops, "tvs-as-desktops", false, "report TVs as desktop")
	fs.BoolVar(&f.robotsAsMobile, "robots-as-mobile", false, "report search engine robots as mobile")
}

func (f *engineFlags) engine(cmd *cobra.Command) (*categorizr.Engine, error) {
	var cfg categorizr.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("tablets-as-desktops") {
		cfg.TabletsAsDesktops = categorizr.Flag(f.tabletsAsDesktops)
	}
	if fs.Changed("tvs-as-desktops") {
		cfg.TVsAsDesktops = categorizr.Flag(f.tvsAsDesktops)
	}
	if fs.Changed("robots-as-mobile") {
		cfg.RobotsAsMobile = categorizr.Flag(f.robotsAsMobile)
	}
	return categorizr.NewFromConfig(cfg), nil
}
