package main

import (
	"github.com/DeedleFake/folio/site"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that every template exists and report unused placeholders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)
			templates := site.NewTemplates(a.cfg.Site.TemplatesDir)

			err := templates.Check(site.RequiredTemplates...)
			if err != nil {
				return err
			}

			unbound, err := templates.Unbound()
			if err != nil {
				return err
			}
			for _, u := range unbound {
				a.log.Warn("Placeholder is never replaced", "template", templates.Path(u.Template), "placeholder", "{{"+u.Key+"}}")
			}

			a.log.Info("Templates OK", "dir", a.cfg.Site.TemplatesDir, "unbound", len(unbound))
			return nil
		},
	}
}
