// Package slug transforme un libellé de titre en fragment d'URL (ancre).
//
// Contrat avec les moteurs de rendu : un titre Markdown "## <texte>" doit
// exposer l'ancre Make(<texte>), exactement.
package slug

import (
	"strings"
	"unicode"
)

// Make met le texte en minuscules, remplace chaque espace par un tiret puis
// supprime tout ce qui n'est ni lettre, ni chiffre, ni tiret.
// Pas de fusion des tirets multiples, pas de troncature.
// Fonction totale : un libellé sans caractère conservé donne "".
func Make(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if r == ' ' {
			r = '-'
		}
		if r == '-' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Anchor retourne le fragment complet, avec le '#'.
func Anchor(text string) string {
	return "#" + Make(text)
}
