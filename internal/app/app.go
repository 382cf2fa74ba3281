package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/patrickprogramme/podmark/internal/assets"
	"github.com/patrickprogramme/podmark/internal/bootstrap"
	"github.com/patrickprogramme/podmark/internal/clipboard"
	"github.com/patrickprogramme/podmark/internal/config"
	"github.com/patrickprogramme/podmark/internal/description"
	"github.com/patrickprogramme/podmark/internal/outline"
	"github.com/patrickprogramme/podmark/internal/source"
	"github.com/patrickprogramme/podmark/internal/transcript"
	"github.com/patrickprogramme/podmark/internal/ui"
	"github.com/patrickprogramme/podmark/pkg/model"
)

// Clipboard : ce dont l'app a besoin du presse-papier.
type Clipboard interface {
	WriteAll(text string) error
	Equals(text string) bool
}

// MarkOptions : paramètres de la commande mark.
type MarkOptions struct {
	Transcript string // chemin ou URL
	Outline    string // chemin ou URL
	Output     string // vide -> <output_dir>/<marked_filename>
	Copy       bool
	TOCOnly    bool // n'affiche que la table des matières, aucun fichier écrit
}

// DescribeOptions : paramètres de la commande describe.
type DescribeOptions struct {
	Podcast string
	Episode string
	Outline string
	Output  string // vide -> <output_dir>/<description_filename>
}

// App orchestre les différentes dépendances (UI, config, FS, presse-papier...)
type App struct {
	cfg       *config.Config
	ui        ui.Interface
	renderer  *description.Renderer
	marker    *transcript.Marker
	loader    source.Loader
	clipboard Clipboard
}

// New construit l'application avec les dépendances par défaut.
// renderer peut être nil : les templates embarqués seront utilisés.
func New(cfg *config.Config, uiClient ui.Interface, renderer *description.Renderer) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	return &App{
		cfg:      cfg,
		ui:       uiClient,
		renderer: renderer,
		marker:   transcript.NewMarker(),
		loader: source.Loader{
			Timeout:  cfg.FetchTimeout(),
			MaxBytes: cfg.Fetch.MaxBytes,
		},
		clipboard: clipboard.System{},
	}
}

// WithClipboard remplace le presse-papier (tests).
func (a *App) WithClipboard(c Clipboard) *App {
	a.clipboard = c
	return a
}

// WithLoader remplace le loader d'entrées (client HTTP de test, limites...).
func (a *App) WithLoader(l source.Loader) *App {
	a.loader = l
	return a
}

// Mark lit transcript + outline, insère les titres et écrit le résultat.
// Retourne le chemin écrit ("" en mode TOCOnly).
// Rien n'est écrit si une étape échoue.
func (a *App) Mark(ctx context.Context, opts MarkOptions) (string, error) {
	entries, err := a.loadOutline(ctx, opts.Outline)
	if err != nil {
		return "", err
	}
	text, err := a.loader.Load(ctx, opts.Transcript)
	if err != nil {
		return "", fmt.Errorf("transcript: %w", err)
	}

	res, err := a.marker.Mark(text, entries)
	if err != nil {
		return "", fmt.Errorf("mark %s: %w", opts.Transcript, err)
	}
	if a.cfg.WarnUnplaced {
		a.warnUnplaced(ctx, res)
	}

	out := res.Text
	if opts.TOCOnly {
		out = transcript.RenderContents(res.Contents)
		a.ui.PrintInfo(ctx, out)
	}

	if opts.Copy || a.cfg.CopyToClipboard {
		a.copyResult(ctx, out)
	}
	if opts.TOCOnly {
		return "", nil
	}

	path, err := a.save(opts.Output, a.cfg.MarkedFilename, []byte(out))
	if err != nil {
		return "", err
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Transcript annoté écrit : %s (%d titres)", path, res.Inserted))
	return path, nil
}

// Describe produit la description d'épisode (content.md).
func (a *App) Describe(ctx context.Context, opts DescribeOptions) (string, error) {
	podDoc, err := a.loader.Load(ctx, opts.Podcast)
	if err != nil {
		return "", fmt.Errorf("podcast: %w", err)
	}
	podcast, err := description.ParsePodcastInfo(podDoc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", opts.Podcast, err)
	}

	epDoc, err := a.loader.Load(ctx, opts.Episode)
	if err != nil {
		return "", fmt.Errorf("episode: %w", err)
	}
	episode, err := description.ParseEpisode(epDoc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", opts.Episode, err)
	}

	entries, err := a.loadOutline(ctx, opts.Outline)
	if err != nil {
		return "", err
	}

	r := a.renderer
	if r == nil {
		if r, err = description.EmbeddedRenderer(); err != nil {
			return "", err
		}
	}
	md, err := description.GenerateContentMarkdown(r, podcast, episode, SortedEntries(entries))
	if err != nil {
		return "", err
	}

	path, err := a.save(opts.Output, a.cfg.DescriptionFilename, []byte(md))
	if err != nil {
		return "", err
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Description écrite : %s", path))
	a.ui.PrintInfo(ctx, fmt.Sprintf("Transcript en ligne : %s", description.TranscriptURL(episode, podcast)))
	return path, nil
}

// Init écrit podcast.yaml et episode.yaml dans dir.
// withTemplates : exporte aussi les templates embarqués dans dir/templates.
// Les fichiers existants sont conservés (avertissement).
func (a *App) Init(ctx context.Context, dir string, withTemplates bool) ([]string, error) {
	var written []string

	starters := []func(string) (string, error){
		description.MakePodcastInfoStarter,
		func(d string) (string, error) { return description.MakeEpisodeStarter(d, "") },
	}
	for _, mk := range starters {
		p, err := mk(dir)
		if err != nil {
			if errors.Is(err, fs.ErrExist) {
				a.ui.PrintWarning(ctx, fmt.Sprintf("fichier conservé : %v", err))
				continue
			}
			return written, err
		}
		written = append(written, p)
		a.ui.PrintInfo(ctx, fmt.Sprintf("créé : %s", p))
	}

	if withTemplates {
		tplDir := filepath.Join(dir, assets.TemplatesRoot)
		status, err := bootstrap.ExportDefaults(assets.Embedded, assets.TemplatesRoot, tplDir, false)
		if err != nil {
			return written, fmt.Errorf("export des templates : %w", err)
		}
		names := make([]string, 0, len(status))
		for name := range status {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			a.ui.PrintInfo(ctx, fmt.Sprintf("%s : %s", name, status[name]))
		}
	}
	return written, nil
}

func (a *App) loadOutline(ctx context.Context, ref string) ([]model.OutlineEntry, error) {
	doc, err := a.loader.Load(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}
	entries, err := outline.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("outline %s: %w", ref, err)
	}
	return entries, nil
}
