package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/patrickprogramme/podmark/internal/fsutil"
	"github.com/patrickprogramme/podmark/internal/transcript"
	"github.com/patrickprogramme/podmark/pkg/model"
)

const dirPerm = 0o755

// SortedEntries retourne une copie triée (tri stable) de l'outline.
func SortedEntries(entries []model.OutlineEntry) []model.OutlineEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, model.CompareEntries)
	return sorted
}

// save écrit content de façon atomique.
// output vide -> <output_dir>/<defaultName> ; sinon output est le chemin complet.
// Sans overwrite, un suffixe _1, _2... évite d'écraser un fichier existant.
func (a *App) save(output, defaultName string, content []byte) (string, error) {
	dir, name := a.cfg.OutputDir, defaultName
	if output != "" {
		dir, name = filepath.Dir(output), filepath.Base(output)
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("create out dir: %w", err)
	}
	path, err := fsutil.SaveAtomic(dir, name, content, a.cfg.Overwrite)
	if err != nil {
		return "", fmt.Errorf("cannot save file to disk: %w", err)
	}
	return path, nil
}

// warnUnplaced signale les entrées de l'outline qui n'ont reçu aucun titre
// (aucun repère du transcript ne les atteint, ou un seul repère pour plusieurs entrées).
func (a *App) warnUnplaced(ctx context.Context, res transcript.Result) {
	if len(res.Unplaced) == 0 {
		return
	}
	labels := make([]string, 0, len(res.Unplaced))
	for _, e := range res.Unplaced {
		labels = append(labels, e.String())
	}
	a.ui.PrintWarning(ctx, fmt.Sprintf("%d entrée(s) de l'outline sans titre dans le transcript :\n  %s",
		len(res.Unplaced), strings.Join(labels, "\n  ")))
}

// copyResult copie text dans le presse-papier ; un échec n'est pas fatal.
func (a *App) copyResult(ctx context.Context, text string) {
	if err := a.clipboard.WriteAll(text); err != nil {
		a.ui.PrintWarning(ctx, fmt.Sprintf("copie dans le presse-papier impossible : %v", err))
		return
	}
	if !a.clipboard.Equals(text) {
		a.ui.PrintWarning(ctx, "le presse-papier ne contient pas le texte copié")
		return
	}
	a.ui.PrintInfo(ctx, "Copié dans le presse-papier.")
}
