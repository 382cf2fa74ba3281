// Package textutil regroupe les petits helpers de découpage de texte
// partagés par le parseur d'outline et le marqueur de transcript.
package textutil

import "strings"

// SplitLines découpe un document en lignes.
// - séparateur "\n", un "\r" final par ligne est retiré (fichiers CRLF)
// - un saut de ligne final ne produit pas de ligne vide supplémentaire
// - document vide -> aucune ligne
func SplitLines(doc string) []string {
	if doc == "" {
		return nil
	}
	doc = strings.TrimSuffix(doc, "\n")
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
