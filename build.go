package main

import (
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the site into the output directory",
		Long: `Build removes the output directory, renders the home page, the blog
index, one page per post and the static pages, and then copies the
styles and public assets. Running folio without a command does the
same.`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	b, err := getApp(cmd).builder()
	if err != nil {
		return err
	}

	_, err = b.Build(cmd.Context())
	return err
}
