package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/resio"
)

type CopyConfig struct {
	Replace bool
}

func copyOptions(replace bool) []resio.CopyOption {
	if replace {
		return []resio.CopyOption{resio.ReplaceExisting}
	}
	return nil
}

func newCopyCommand() *cobra.Command {
	var copyConfig CopyConfig

	cmd := &cobra.Command{
		Use:   "cp SOURCE TARGET",
		Short: "Copy a file or resource to a path",
		Long: `Copy a file or resource to a path.

Missing parent directories of TARGET are created. An existing TARGET is only
overwritten when --replace is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, target := args[0], args[1]
			n, err := newIO().CopySource(source, target, copyOptions(copyConfig.Replace)...)
			if err != nil {
				return err
			}
			slog.Info("Copied.", "source", source, "target", target, "bytes", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyConfig.Replace, "replace", "f", false, "Overwrite an existing target")
	return cmd
}
