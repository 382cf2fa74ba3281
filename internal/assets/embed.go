package assets

import "embed"

//go:embed podmark.example.yaml
//go:embed templates/*.tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "podmark.example.yaml"

// TemplatesRoot : dossier des templates dans Embedded.
const TemplatesRoot = "templates"

// DefaultTemplatePaths : liste ordonnée des templates "par défaut" embarqués.
// Ce sont des chemins relatifs DANS Embedded (ex: "templates/content.md.tmpl").
var DefaultTemplatePaths = []string{
	"templates/spotify.html.tmpl",
	"templates/content.md.tmpl",
}
