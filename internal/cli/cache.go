package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/vidprompt/internal/apperr"
	"github.com/nguyentantai21042004/vidprompt/internal/transcript"
)

func newCacheCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage cached transcripts",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List cached transcripts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withCache(opts, func(ctx context.Context, cache transcript.Cache) error {
					entries, err := cache.List(ctx)
					if err != nil {
						return err
					}

					w := cmd.OutOrStdout()
					if len(entries) == 0 {
						fmt.Fprintf(w, "No transcripts in %s\n", cache.Dir())
						return nil
					}

					tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "KEY\tSIZE\tMODIFIED")
					for _, e := range entries {
						fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Key, e.Size, e.ModTime.Format("2006-01-02 15:04"))
					}
					return tw.Flush()
				})
			},
		},
		&cobra.Command{
			Use:   "path <video>",
			Short: "Print the transcript path a video maps to",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ref, err := videoRef(args[0])
				if err != nil {
					return err
				}
				return withCache(opts, func(ctx context.Context, cache transcript.Cache) error {
					// stat only: inspecting must not create the cache folder
					path := filepath.Join(cache.Dir(), transcript.Key(ref))
					status := "cached"
					if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
						status = "missing"
					} else if err != nil {
						return apperr.Storage("stat transcript", err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", path, status)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rm <video>",
			Short: "Delete the cached transcript of a video",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ref, err := videoRef(args[0])
				if err != nil {
					return err
				}
				return withCache(opts, func(ctx context.Context, cache transcript.Cache) error {
					removed, err := cache.Remove(ctx, ref)
					if err != nil {
						return err
					}
					if !removed {
						fmt.Fprintf(cmd.OutOrStdout(), "No transcript for %s\n", ref)
						return nil
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", transcript.Key(ref))
					return nil
				})
			},
		},
	)
	return cmd
}

func withCache(opts *rootOptions, fn func(ctx context.Context, cache transcript.Cache) error) error {
	a, err := openApp(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	return fn(ctx, a.Cache)
}
