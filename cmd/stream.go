package cmd

import (
	"fmt"
	"time"

	"github.com/gaurav-prasanna/mdfixtures/core/fixture"
	"github.com/gaurav-prasanna/mdfixtures/core/stream"
	"github.com/spf13/cobra"
)

func newStreamCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "stream [name]",
		Short: "Replay a fixture delta by delta, like a streamed answer",
		Long: `Stream writes a document to stdout a few words at a time. The default
document is the streaming narrative.

Examples:
  mdfixtures stream
  mdfixtures stream feature-showcase --interval 10ms --chunk_size 2`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: docNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := string(fixture.Streaming)
			if len(args) == 1 {
				name = args[0]
			}
			doc, err := resolveDoc(name, cfg.Sections)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			deltas := 0
			player := stream.NewPlayer(cfg.ChunkSize, cfg.Interval)
			err = player.Play(cmd.Context(), doc.Markdown, func(delta string) error {
				deltas++
				_, err := fmt.Fprint(out, delta)
				return err
			})
			if err != nil {
				return fmt.Errorf("streaming %s: %w", doc.Meta.Name, err)
			}
			logger.Debug("stream finished", "name", doc.Meta.Name, "deltas", deltas)
			return nil
		},
	}

	c.Flags().Duration("interval", 30*time.Millisecond, "Pause between deltas")
	c.Flags().Int("chunk_size", 4, "Words per delta")
	c.Flags().Int("sections", 18, "Section count when streaming the synthetic document")
	return c
}
