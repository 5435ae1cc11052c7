package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/DeedleFake/folio/frontmatter"
	"github.com/DeedleFake/folio/internal/config"
	"github.com/DeedleFake/folio/markdown"
	"github.com/DeedleFake/folio/site"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type ctxKey struct{}

// app is the state shared by every command after configuration has
// been loaded.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func (a *app) builder() (*site.Builder, error) {
	conv, err := markdown.New(a.cfg.Markdown)
	if err != nil {
		return nil, err
	}

	return site.NewBuilder(a.cfg.Site, frontmatter.YAML{}, conv, site.WithLogger(a.log)), nil
}

func getApp(cmd *cobra.Command) *app {
	return cmd.Context().Value(ctxKey{}).(*app)
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Build a static blog from Markdown posts and HTML templates",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(log)

			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			if used := v.ConfigFileUsed(); used != "" {
				log.Debug("Using config file", "path", used)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), ctxKey{}, &app{cfg: cfg, log: log}))
			return nil
		},
		RunE: runBuild,
	}

	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default ./folio.yaml if present)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newBuildCmd(),
		newServeCmd(),
		newInitCmd(),
		newCheckCmd(),
	)

	return cmd
}

func main() {
	err := newRootCmd().ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
