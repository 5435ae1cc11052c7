package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/DeedleFake/folio/internal/config"
	"github.com/DeedleFake/folio/site"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create starter templates, styles, an example post and folio.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)

			written, err := site.Scaffold(a.cfg.Site, force)
			for _, path := range written {
				a.log.Info("Created", "path", path)
			}
			if err != nil {
				return err
			}

			return writeConfig(config.FileName+".yaml", force, a)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing files")

	return cmd
}

func writeConfig(path string, force bool, a *app) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	data, err := config.RenderDefaultYAML()
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	err = atomic.WriteFile(path, strings.NewReader(data))
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	a.log.Info("Created", "path", path)
	return os.Chmod(path, 0o644)
}
