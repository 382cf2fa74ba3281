package model

import "fmt"

// constantes pour les formats de fichiers de sortie
type Format string

const (
	FormatTXT      Format = "txt"
	FormatMARKDOWN Format = "md"
)

// du format en chaine à la constante de type Format, return une erreur si format inconnu
func ParseFormat(s string) (Format, error) {
	switch s {
	case "txt":
		return FormatTXT, nil
	case "md":
		return FormatMARKDOWN, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}

func (f Format) IsTextual() bool {
	return f == FormatTXT || f == FormatMARKDOWN
}

func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) String() string {
	return string(f)
}
