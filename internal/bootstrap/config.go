package bootstrap

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// EnsureConfigPresent copie un fichier embarqué (assetPath dans fsys) vers dstPath
// si dstPath n'existe pas encore. Le dossier parent est créé au besoin.
// Idempotent, ne remplace jamais un fichier existant.
func EnsureConfigPresent(dstPath string, fsys fs.FS, assetPath string) error {
	parent := filepath.Dir(dstPath)
	if st, err := os.Stat(parent); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("échec test parent %s: %w", parent, err)
		}
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("échec création répertoire parent %s: %w", parent, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	// déjà là -> rien à faire
	if _, err := os.Stat(dstPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("échec stat fichier cible %s: %w", dstPath, err)
	}

	if err := copyEmbedded(fsys, assetPath, dstPath); err != nil {
		return fmt.Errorf("config par défaut : %w", err)
	}

	log.Printf("info: fichier de configuration par défaut créé : %s", dstPath)
	return nil
}
