package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/vidprompt/internal/action"
	"github.com/nguyentantai21042004/vidprompt/internal/report"
)

func newAskCmd(opts *rootOptions) *cobra.Command {
	var (
		markdownPath string
		docxPath     string
	)

	cmd := &cobra.Command{
		Use:   "ask <video> <prompt...>",
		Short: "Ask the language model a question about a video",
		Long: `Resolve the transcript of a video (transcribing it on first use) and send it
together with the prompt to the configured language model.

Examples:
  vidprompt ask lecture.mp4 "Summarize the main points"
  vidprompt ask talk.mkv list every tool mentioned --markdown tools.md
  vidprompt ask talk.mkv "Write meeting notes" --docx notes.docx`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := videoRef(args[0])
			if err != nil {
				return err
			}
			prompt := strings.Join(args[1:], " ")

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signalContext()
			defer stop()

			out := a.Runner.Run(ctx, action.Request{Kind: action.ProcessPrompt, VideoRef: ref, Prompt: prompt})
			if out.Err != nil {
				return out.Err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, out.Response)

			answer := report.Answer{
				VideoRef:  ref,
				Prompt:    prompt,
				Response:  out.Response,
				CreatedAt: time.Now(),
			}
			if markdownPath != "" {
				if err := report.WriteMarkdown(markdownPath, answer); err != nil {
					return err
				}
				a.Logger.Info(ctx, "Markdown written to %s", markdownPath)
			}
			if docxPath != "" {
				if err := report.WriteDocx(docxPath, answer); err != nil {
					return err
				}
				a.Logger.Info(ctx, "Document written to %s", docxPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&markdownPath, "markdown", "", "Also write the answer to this markdown file")
	cmd.Flags().StringVar(&docxPath, "docx", "", "Also write the answer to this Word document")
	return cmd
}
