// Package outline lit un document d'outline : une entrée par ligne,
// "<time code> <libellé>".
package outline

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/patrickprogramme/podmark/internal/textutil"
	"github.com/patrickprogramme/podmark/pkg/model"
)

// ErrInvalidOutlineEntry : ligne sans time code reconnaissable suivi d'un libellé non vide.
// Un time code présent mais invalide remonte model.ErrInvalidTimeCode à la place.
var ErrInvalidOutlineEntry = errors.New("invalid outline entry")

// EntryError décrit la ligne refusée (numéro à partir de 1 + texte brut).
type EntryError struct {
	Line   int
	Raw    string
	Reason string
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("invalid outline entry at line %d (%s): %q", e.Line, e.Reason, e.Raw)
}

func (e *EntryError) Unwrap() error { return ErrInvalidOutlineEntry }

// Parse analyse le document ligne par ligne et retourne les entrées dans
// l'ordre du document (pas de tri ici).
// La première ligne invalide interrompt tout : pas de résultat partiel.
func Parse(doc string) ([]model.OutlineEntry, error) {
	lines := textutil.SplitLines(doc)
	entries := make([]model.OutlineEntry, 0, len(lines))

	for i, line := range lines {
		entry, err := parseLine(line)
		if err != nil {
			var entryErr *EntryError
			if errors.As(err, &entryErr) {
				entryErr.Line = i + 1
				return nil, entryErr
			}
			return nil, fmt.Errorf("outline line %d: %w", i+1, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseLine : premier mot = time code, le reste (espaces compris) = libellé.
func parseLine(line string) (model.OutlineEntry, error) {
	trimmed := strings.TrimSpace(line)

	sep := strings.IndexFunc(trimmed, unicode.IsSpace)
	if sep < 0 {
		return model.OutlineEntry{}, &EntryError{Raw: line, Reason: "missing label"}
	}
	token := trimmed[:sep]
	label := strings.TrimSpace(trimmed[sep:])

	if !looksLikeTimeCode(token) {
		return model.OutlineEntry{}, &EntryError{Raw: line, Reason: "missing time code"}
	}
	tc, err := model.ParseTimeCode(token)
	if err != nil {
		return model.OutlineEntry{}, err
	}
	if label == "" {
		return model.OutlineEntry{}, &EntryError{Raw: line, Reason: "missing label"}
	}

	return model.OutlineEntry{TimeCode: tc, Text: label}, nil
}

// looksLikeTimeCode : uniquement des chiffres et des ':' et au moins un chiffre.
// Sert à distinguer "ligne mal formée" de "time code mal formé".
func looksLikeTimeCode(token string) bool {
	hasDigit := false
	for _, r := range token {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == ':':
		default:
			return false
		}
	}
	return hasDigit
}

// Format est l'inverse de Parse : une ligne "<time code> <libellé>" par entrée.
func Format(entries []model.OutlineEntry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.TimeCode.String())
		b.WriteByte(' ')
		b.WriteString(e.Text)
	}
	return b.String()
}
