package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/DeedleFake/folio/internal/cli"
	"github.com/DeedleFake/folio/internal/preview"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site, serve it locally and rebuild on changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)
			if addr == "" {
				addr = a.cfg.Serve.Addr
			}

			b, err := a.builder()
			if err != nil {
				return err
			}

			ctx, cancel := cli.SignalContext(cmd.Context(), a.log, os.Interrupt, syscall.SIGTERM)
			defer cancel()

			build := func(ctx context.Context) error {
				_, err := b.Build(ctx)
				return err
			}
			err = build(ctx)
			if err != nil {
				return fmt.Errorf("initial build: %w", err)
			}

			s := preview.New(preview.Options{
				Root: a.cfg.Site.OutputDir,
				Watch: []string{
					a.cfg.Site.ContentDir,
					a.cfg.Site.TemplatesDir,
					a.cfg.Site.StylesDir,
					a.cfg.Site.PublicDir,
				},
				Debounce: a.cfg.Serve.Debounce,
				Build:    build,
				Log:      a.log,
			})
			return s.ListenAndRun(ctx, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from serve.addr)")

	return cmd
}
