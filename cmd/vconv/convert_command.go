package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/video-converter/internal/model"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var target string
	var outDir string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a video to another container format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := jobRequest{
				mode:   model.ModeConvert,
				input:  args[0],
				outDir: outDir,
			}
			if target != "" {
				f, err := model.ParseFormat(target)
				if err != nil {
					return fmt.Errorf("invalid --to: %w", err)
				}
				req.target = f
			}
			_, err := ctx.runJob(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), req)
			return err
		},
	}

	cmd.Flags().StringVar(&target, "to", "", "Target format (default: mp4, or avi for mp4 sources)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	return cmd
}

func newCropCommand(ctx *commandContext) *cobra.Command {
	var start float64
	var end float64
	var outDir string

	cmd := &cobra.Command{
		Use:   "crop <file>",
		Short: "Cut a time window out of a video into an MP4",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := jobRequest{
				mode:   model.ModeCrop,
				input:  args[0],
				start:  start,
				end:    end,
				outDir: outDir,
			}
			_, err := ctx.runJob(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), req)
			return err
		},
	}

	cmd.Flags().Float64Var(&start, "start", 0, "Window start in seconds")
	cmd.Flags().Float64Var(&end, "end", 0, "Window end in seconds (default: end of the video)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	return cmd
}
