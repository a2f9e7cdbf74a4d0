package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/video-converter/internal/model"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported video formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderFormatsTable())
			return nil
		},
	}
}

func renderFormatsTable() string {
	rows := make([][]string, 0, len(model.SupportedFormats))
	for _, f := range model.SupportedFormats {
		playable := "no"
		if f.IsBrowserPlayable() {
			playable = "yes"
		}
		rows = append(rows, []string{strings.ToUpper(string(f)), "." + string(f), playable, f.MIMEType()})
	}
	return renderTable(
		[]string{"Format", "Extension", "Playable", "MIME type"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignCenter, alignLeft},
	)
}
