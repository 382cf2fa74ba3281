package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/patrickprogramme/podmark/internal/app"
	"github.com/patrickprogramme/podmark/internal/assets"
	"github.com/patrickprogramme/podmark/internal/bootstrap"
	"github.com/patrickprogramme/podmark/internal/config"
	"github.com/patrickprogramme/podmark/internal/description"
	"github.com/patrickprogramme/podmark/internal/ui"
	"github.com/patrickprogramme/podmark/internal/version"
)

// Dependencies : ce que les commandes partagent.
// App et Config sont construits au premier besoin (setup), sauf s'ils sont injectés.
type Dependencies struct {
	ConfigPath string // --config ; vide -> <BinDir>/podmark.yaml
	BinDir     string // dossier du binaire (config et templates par défaut)
	UI         ui.Interface
	Config     *config.Config
	App        *app.App
}

// setup charge la config, installe les templates et construit l'App.
func (d *Dependencies) setup(ctx context.Context) error {
	if d.App != nil {
		return nil
	}
	if d.UI == nil {
		d.UI = ui.NewTerminal()
	}
	if d.Config == nil {
		path := d.ConfigPath
		if path == "" {
			path = filepath.Join(d.BinDir, config.DefaultFileName)
		}
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("config load: %w", err)
		}
		d.Config = cfg
	}

	tplDir := d.Config.ResolveTemplatesDir(d.BinDir)
	warnings, err := d.Config.Validate(tplDir)
	if err != nil {
		return fmt.Errorf("config invalide : %w", err)
	}
	for _, w := range warnings {
		d.UI.PrintWarning(ctx, w)
	}

	// templates à côté du binaire : installés s'ils manquent, jamais écrasés
	if d.Config.TemplatesDir == "" {
		if err := bootstrap.EnsureTemplatesPresent(tplDir, assets.Embedded, assets.DefaultTemplatePaths); err != nil {
			d.UI.PrintWarning(ctx, fmt.Sprintf("ensure templates present: %v", err))
		}
	}

	renderer, err := description.DefaultRenderer(tplDir)
	if err != nil {
		return fmt.Errorf("impossible de construire le renderer: %w", err)
	}
	if err := renderer.ParseNow(); err != nil {
		return fmt.Errorf("templates invalides dans %s: %w", tplDir, err)
	}

	d.App = app.New(d.Config, d.UI, renderer)
	return nil
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "podmark",
		Short: "Insert outline headings into podcast transcripts",
		Long: "podmark merges a timestamped outline into a timestamped transcript: each outline label " +
			"becomes a Markdown heading before the first transcript line that reaches it, " +
			"and a table of contents links to those headings.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return deps.setup(cmd.Context())
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.PersistentFlags().StringVar(&deps.ConfigPath, "config", "", "path to config file (default <binary dir>/podmark.yaml)")

	rootCmd.AddCommand(NewMarkCmd(deps))
	rootCmd.AddCommand(NewDescribeCmd(deps))
	rootCmd.AddCommand(NewInitCmd(deps))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// pas de config nécessaire
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
