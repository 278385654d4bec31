package cli

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/resio"
)

type CatConfig struct {
	Encoding string
}

func newCatCommand() *cobra.Command {
	var catConfig CatConfig

	cmd := &cobra.Command{
		Use:   "cat SOURCE...",
		Short: "Write files or resources to standard output",
		Long: `Write files or resources to standard output.

With --encoding, each source is decoded from the given character set and
written as UTF-8.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x := newIO()

			if catConfig.Encoding == "" {
				for _, source := range args {
					if _, err := x.CopyTo(cmd.OutOrStdout(), source); err != nil {
						return err
					}
				}
				return nil
			}

			enc, err := resio.LookupEncoding(catConfig.Encoding)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, source := range args {
				if _, err := x.CopyTextTo(w, source, enc); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&catConfig.Encoding, "encoding", "e", "", "Character set of the sources")
	return cmd
}
