package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/vidprompt/internal/apperr"
)

type rootOptions struct {
	configPath string
	debug      bool
}

// NewRootCmd builds the vidprompt command tree. Without a subcommand it
// opens the desktop window.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "vidprompt",
		Short: "Transcribe videos and ask a language model about them",
		Long: `vidprompt turns a local video into a transcript with whisper, caches the
transcript next to the program, and answers free-text prompts about the video
with a local or hosted language model.

Run without a command to open the desktop window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "Path to the config file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		newGUICmd(opts),
		newTranscribeCmd(opts),
		newAskCmd(opts),
		newCacheCmd(opts),
	)
	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, apperr.Message(err))
		os.Exit(1)
	}
}
