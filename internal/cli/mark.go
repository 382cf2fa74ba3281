package cli

import (
	"github.com/spf13/cobra"

	"github.com/patrickprogramme/podmark/internal/app"
)

func NewMarkCmd(deps *Dependencies) *cobra.Command {
	var opts app.MarkOptions

	cmd := &cobra.Command{
		Use:   "mark <transcript> <outline>",
		Short: "Insert outline headings and a table of contents into a transcript",
		Long: "Reads a transcript whose lines may start with [HH:MM:SS] and an outline of \"<time-code> <label>\" lines,\n" +
			"then writes the annotated transcript. Inputs may be local paths or http(s) URLs.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Transcript = args[0]
			opts.Outline = args[1]
			_, err := deps.App.Mark(cmd.Context(), opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (default <output_dir>/<marked_filename>)")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Copy the result to the clipboard")
	cmd.Flags().BoolVar(&opts.TOCOnly, "toc-only", false, "Only print the table of contents, write nothing")

	return cmd
}
