package transcript

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/patrickprogramme/podmark/internal/slug"
	"github.com/patrickprogramme/podmark/internal/textutil"
	"github.com/patrickprogramme/podmark/pkg/model"
)

// cuePattern : ligne de transcript qui commence par "[HH:MM:SS]" suivi d'un blanc
// (ou de la fin de ligne). Seule la forme à trois composants est un repère :
// "[01:37]" n'est pas un cue.
const cuePattern = `^\[(\d{2,}:\d{2}:\d{2})\](?:\s|$)`

// TOCHeading est le titre du bloc de table des matières.
const TOCHeading = "## Table of Contents"

// Result contient le transcript annoté et quelques infos pour l'appelant.
type Result struct {
	Text     string               // document final (table des matières + transcript annoté)
	Contents []ContentsEntry      // triplets de la table des matières, dans l'ordre trié
	Inserted int                  // nombre de titres insérés
	Unplaced []model.OutlineEntry // entrées jamais atteintes par un cue (aucun titre inséré)
}

// Marker fusionne un outline dans un transcript.
// Le regex des cues est compilé une seule fois, à la construction ;
// un Marker peut être partagé entre goroutines.
type Marker struct {
	cueRe *regexp.Regexp
}

// NewMarker construit un Marker prêt à l'emploi.
func NewMarker() *Marker {
	return &Marker{cueRe: regexp.MustCompile(cuePattern)}
}

// Mark est un raccourci : NewMarker().Mark(text, entries).
func Mark(text string, entries []model.OutlineEntry) (Result, error) {
	return NewMarker().Mark(text, entries)
}

// Mark insère "## <libellé>" juste avant la première ligne dont le repère
// atteint ou dépasse le time code de l'entrée, puis préfixe le tout d'une
// table des matières.
//
// - les entrées sont triées (tri stable) sur une copie : le slice de l'appelant n'est pas modifié
// - au plus UNE entrée est consommée par ligne-repère, même si plusieurs sont déjà atteintes
// - un repère dont le time code est invalide fait échouer toute l'opération
func (m *Marker) Mark(text string, entries []model.OutlineEntry) (Result, error) {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, model.CompareEntries)

	contents := BuildContents(sorted)

	lines := textutil.SplitLines(text)
	out := make([]string, 0, len(lines)+len(sorted)+2)
	out = append(out, TOCHeading+"\n")
	out = append(out, RenderContents(contents)+"\n")

	next := 0 // index de la prochaine entrée en attente dans sorted
	for i, line := range lines {
		tc, ok, err := m.cueTimeCode(line)
		if err != nil {
			return Result{}, fmt.Errorf("transcript line %d: %w", i+1, err)
		}
		if ok && next < len(sorted) && !tc.Before(sorted[next].TimeCode) {
			out = append(out, "## "+sorted[next].Text+"\n")
			next++
		}
		out = append(out, strings.TrimSpace(line))
	}

	return Result{
		Text:     strings.Join(out, "\n"),
		Contents: contents,
		Inserted: next,
		Unplaced: slices.Clone(sorted[next:]),
	}, nil
}

// cueTimeCode extrait le repère en tête de ligne.
// ok == false : pas de repère (ligne normale, pas une erreur).
func (m *Marker) cueTimeCode(line string) (model.TimeCode, bool, error) {
	sub := m.cueRe.FindStringSubmatch(strings.TrimLeft(line, " \t"))
	if sub == nil {
		return model.TimeCode{}, false, nil
	}
	tc, err := model.ParseTimeCode(sub[1])
	if err != nil {
		return model.TimeCode{}, false, err
	}
	return tc, true, nil
}

// IsCue indique si la ligne porte un repère reconnu (valide ou non).
func (m *Marker) IsCue(line string) bool {
	return m.cueRe.MatchString(strings.TrimLeft(line, " \t"))
}

// ContentsEntry est le triplet fourni aux moteurs de rendu :
// le time code formaté, le libellé et l'ancre (sans '#').
type ContentsEntry struct {
	TimeCode string `yaml:"time_code" json:"time_code"`
	Label    string `yaml:"label" json:"label"`
	Slug     string `yaml:"slug" json:"slug"`
}

// BuildContents construit les triplets dans l'ordre des entrées fournies.
func BuildContents(entries []model.OutlineEntry) []ContentsEntry {
	contents := make([]ContentsEntry, 0, len(entries))
	for _, e := range entries {
		contents = append(contents, ContentsEntry{
			TimeCode: e.TimeCode.String(),
			Label:    e.Text,
			Slug:     slug.Make(e.Text),
		})
	}
	return contents
}

// RenderContents produit les puces Markdown "- [[<tc>] <libellé>](#<slug>)".
func RenderContents(contents []ContentsEntry) string {
	var b strings.Builder
	for i, c := range contents {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- [[%s] %s](#%s)", c.TimeCode, c.Label, c.Slug)
	}
	return b.String()
}
