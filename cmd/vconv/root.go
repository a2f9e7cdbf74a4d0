package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vconv",
		Short:         "Convert and crop video files with ffmpeg",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.ffmpegPath, "ffmpeg", "", "Path to the ffmpeg binary (default: ffmpeg on PATH)")
	rootCmd.PersistentFlags().StringVar(&ctx.ffprobePath, "ffprobe", "", "Path to the ffprobe binary (default: ffprobe on PATH)")
	rootCmd.PersistentFlags().BoolVarP(&ctx.quiet, "quiet", "q", false, "Suppress log output")

	rootCmd.AddCommand(newFormatsCommand())
	rootCmd.AddCommand(newConvertCommand(ctx))
	rootCmd.AddCommand(newCropCommand(ctx))

	return rootCmd
}
