package fsutil

import (
	"regexp"
	"strings"
)

// longueur maximale d'un nom de fichier (en octets)
const maxNameLen = 200

// invalidFileRunes définit les caractères interdits dans les noms de fichiers
// \x00-\x1F sont les caractères de contrôle
var invalidFileRunes = regexp.MustCompile(`[<>"/\\|?*\x00-\x1F]`)

// multiSpace détecte les séquences de plusieurs espaces pour les réduire à un seul.
var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeFilename nettoie une chaîne pour en faire un nom de fichier valide
// (noms de sortie venant de la config ou de la ligne de commande).
// - ":" devient "-" (fréquent dans les titres : "Épisode 3: ...")
// - les autres caractères interdits deviennent des espaces, réduits à un seul
// - points terminaux supprimés, longueur limitée sans couper une rune
// - fallback si le résultat est vide
func SanitizeFilename(name, fallback string) string {
	name = strings.ReplaceAll(name, ":", "-")
	clean := invalidFileRunes.ReplaceAllString(name, " ")
	clean = multiSpace.ReplaceAllString(strings.TrimSpace(clean), " ")
	clean = strings.TrimRight(clean, ".")

	if clean == "" {
		return fallback
	}
	if len(clean) > maxNameLen {
		clean = truncateRunes(clean, maxNameLen)
	}
	return clean
}

// truncateRunes coupe s à au plus n octets, sur une frontière de rune.
func truncateRunes(s string, n int) string {
	cut := 0
	for i := range s {
		if i > n {
			break
		}
		cut = i
	}
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:cut])
}
