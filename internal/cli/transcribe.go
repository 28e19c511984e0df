package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/vidprompt/internal/action"
)

func newTranscribeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "transcribe <video>",
		Short: "Transcribe a video into the transcript cache",
		Long: `Transcribe a video and store the transcript in the cache folder.

If a transcript for the same path already exists it is reused as-is.

Examples:
  vidprompt transcribe lecture.mp4
  vidprompt transcribe --config ~/vidprompt.yaml /videos/talk.mkv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := videoRef(args[0])
			if err != nil {
				return err
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signalContext()
			defer stop()

			out := a.Runner.Run(ctx, action.Request{Kind: action.TranscribeOnly, VideoRef: ref})
			if out.Err != nil {
				return out.Err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.Message())
			return nil
		},
	}
}
