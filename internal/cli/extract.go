package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

type ExtractConfig struct {
	Replace bool
}

func newExtractCommand() *cobra.Command {
	var extractConfig ExtractConfig

	cmd := &cobra.Command{
		Use:   "extract ROOT DIR",
		Short: "Copy every resource under ROOT into DIR",
		Long: `Copy every resource under ROOT into DIR.

Use "." as ROOT to extract everything. When several resource directories
provide the same name, the first one given with --resources wins.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, dir := args[0], args[1]
			n, err := newIO().Extract(root, dir, copyOptions(extractConfig.Replace)...)
			if err != nil {
				return err
			}
			slog.Info("Extracted.", "root", root, "dir", dir, "files", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&extractConfig.Replace, "replace", "f", false, "Overwrite existing files")
	return cmd
}
