package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// System : presse-papier du système, via atotto/clipboard.
type System struct{}

// WriteAll écrit une chaîne de caractères dans le presse-papier.
func (System) WriteAll(text string) error {
	return WriteAll(text)
}

// Equals vérifie que le presse-papier contient exactement text.
func (System) Equals(text string) bool {
	return ClipboardEquals(text)
}

// ReadAll lit le contenu texte du presse-papier.
func ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return text, nil
}

// WriteAll écrit une chaîne de caractères dans le presse-papier.
// Retourne une erreur si l'opération échoue ou si le texte est vide.
func WriteAll(text string) error {
	if text == "" {
		return errors.New("le texte à copier ne peut pas être vide")
	}
	return clipboard.WriteAll(text)
}

// ClipboardEquals vérifie si le contenu actuel du presse-papier
// est strictement égal à la chaîne passée en paramètre.
// En cas d'erreur de lecture, retourne false.
func ClipboardEquals(text string) bool {
	current, err := ReadAll()
	if err != nil {
		return false
	}
	return current == text
}
