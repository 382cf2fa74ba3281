package config

import (
	"fmt"
	"os"
)

// Validate vérifie la cohérence de la config.
// Retourne des warnings (non-fataux) et une erreur si c'est critique.
// templatesDir est le dossier effectif (voir ResolveTemplatesDir).
func (c *Config) Validate(templatesDir string) (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	if c.MarkedFilename == c.DescriptionFilename {
		return warnings, fmt.Errorf("marked_filename et description_filename sont identiques : %s", c.MarkedFilename)
	}

	// dossier de sortie : il sera créé au besoin, mais pas par-dessus un fichier
	if st, serr := os.Stat(c.OutputDir); serr != nil {
		if !os.IsNotExist(serr) {
			return warnings, fmt.Errorf("impossible d'accéder au dossier de sortie %s : %w", c.OutputDir, serr)
		}
		warnings = append(warnings, fmt.Sprintf("le dossier de sortie n'existe pas encore, il sera créé : %s", c.OutputDir))
	} else if !st.IsDir() {
		return warnings, fmt.Errorf("output_dir n'est pas un répertoire : %s", c.OutputDir)
	}

	// templates : absents -> les templates embarqués seront utilisés
	if templatesDir != "" {
		if st, serr := os.Stat(templatesDir); serr != nil {
			if !os.IsNotExist(serr) {
				return warnings, fmt.Errorf("impossible d'accéder au dossier de templates %s : %w", templatesDir, serr)
			}
			warnings = append(warnings, fmt.Sprintf("dossier de templates introuvable, templates embarqués utilisés : %s", templatesDir))
		} else if !st.IsDir() {
			return warnings, fmt.Errorf("templates_dir n'est pas un répertoire : %s", templatesDir)
		}
	}

	if c.Fetch.TimeoutSec > 300 {
		warnings = append(warnings, fmt.Sprintf("fetch.timeout_sec très élevé : %d s", c.Fetch.TimeoutSec))
	}

	return warnings, nil
}
