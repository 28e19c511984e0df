package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/vidprompt/internal/ui"
)

func newGUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}
}

func runGUI(cmd *cobra.Command, opts *rootOptions) error {
	a, err := openApp(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	if _, err := os.Stat(opts.configPath); err == nil {
		if err := a.Watch(ctx, opts.configPath); err != nil {
			a.Logger.Warn(ctx, "Config changes will need a restart: %v", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		a.Logger.Warn(ctx, "Cannot watch %s: %v", opts.configPath, err)
	}

	a.Logger.Info(ctx, "Transcriptions folder: %s", a.Cache.Dir())
	ui.Run(ctx, a)
	return nil
}
