package cli

import (
	"github.com/spf13/cobra"

	"github.com/patrickprogramme/podmark/internal/app"
)

func NewDescribeCmd(deps *Dependencies) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "describe <podcast.yaml> <episode.yaml> <outline>",
		Short: "Render the episode description (content.md) from the podcast and episode records",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := deps.App.Describe(cmd.Context(), app.DescribeOptions{
				Podcast: args[0],
				Episode: args[1],
				Outline: args[2],
				Output:  output,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default <output_dir>/<description_filename>)")

	return cmd
}
