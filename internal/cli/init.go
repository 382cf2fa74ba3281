package cli

import (
	"github.com/spf13/cobra"
)

func NewInitCmd(deps *Dependencies) *cobra.Command {
	var templates bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write podcast.yaml and episode.yaml starters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			_, err := deps.App.Init(cmd.Context(), dir, templates)
			return err
		},
	}

	cmd.Flags().BoolVar(&templates, "templates", false, "Also export the default description templates to <dir>/templates")

	return cmd
}
