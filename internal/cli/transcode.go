package cli

import (
	"bufio"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/transform"

	"github.com/jmgilman/go/resio"
)

type TranscodeConfig struct {
	From string
	To   string
}

func newTranscodeCommand() *cobra.Command {
	var transcodeConfig TranscodeConfig

	cmd := &cobra.Command{
		Use:   "transcode SOURCE TARGET",
		Short: "Re-encode a text file or resource into a path",
		Long: `Re-encode a text file or resource into a path.

SOURCE is decoded with --from and written to TARGET encoded with --to.
Characters the target encoding cannot represent are replaced. An existing
TARGET is overwritten.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, target := args[0], args[1]

			from, err := resio.LookupEncoding(transcodeConfig.From)
			if err != nil {
				return err
			}
			to, err := resio.LookupEncoding(transcodeConfig.To)
			if err != nil {
				return err
			}

			x := newIO()
			in, err := x.Open(source)
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			runes := bufio.NewReaderSize(transform.NewReader(in, from.NewDecoder()), resio.BufferSize)
			n, err := x.CopyTextFrom(runes, target, to)
			if err != nil {
				return err
			}
			slog.Info("Transcoded.", "source", source, "target", target, "runes", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&transcodeConfig.From, "from", "UTF-8", "Character set of SOURCE")
	cmd.Flags().StringVar(&transcodeConfig.To, "to", "UTF-8", "Character set of TARGET")
	return cmd
}
