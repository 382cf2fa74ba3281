package bootstrap

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/patrickprogramme/podmark/internal/fsutil"
)

// Statuts retournés par ExportDefaults.
const (
	StatusWritten     = "written"
	StatusUnchanged   = "unchanged"
	StatusSkipped     = "skipped (different)"
	StatusOverwritten = "overwritten"
)

// ExportDefaults copie récursivement tous les fichiers sous srcPrefix (dans fsys)
// vers destDir en préservant la hiérarchie relative.
// - srcPrefix : chemin racine dans fsys à copier (ex: "templates")
// - force : si true, écrase les fichiers différents (avec backup)
//
// Retourne une map[embeddedPath]status et une erreur globale si Walk échoue.
func ExportDefaults(fsys fs.FS, srcPrefix, destDir string, force bool) (map[string]string, error) {
	status := make(map[string]string)

	err := fs.WalkDir(fsys, srcPrefix, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		// les chemins d'un fs.FS utilisent toujours des slashs
		rel := "."
		if p != srcPrefix {
			rel = p[len(srcPrefix)+1:]
		}

		if d.IsDir() {
			if rel == "." {
				return os.MkdirAll(destDir, 0o755)
			}
			return os.MkdirAll(filepath.Join(destDir, filepath.FromSlash(rel)), 0o755)
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			status[p] = "error: read embedded failed"
			return err
		}
		destPath := filepath.Join(destDir, filepath.FromSlash(rel))

		// fichier déjà présent : comparer
		if existing, err := os.ReadFile(destPath); err == nil {
			if bytes.Equal(existing, data) {
				status[p] = StatusUnchanged
				return nil
			}
			if !force {
				status[p] = StatusSkipped
				return nil
			}
			backup := destPath + ".bak." + time.Now().Format("20060102T150405")
			if err := fsutil.WriteFileAtomic(backup, existing, 0o644); err != nil {
				status[p] = "error: backup failed"
				return fmt.Errorf("backup failed for %s: %w", destPath, err)
			}
			if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
				status[p] = "error: overwrite failed"
				return err
			}
			status[p] = StatusOverwritten
			return nil
		}

		if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
			status[p] = "error: write failed"
			return err
		}
		status[p] = StatusWritten
		return nil
	})

	return status, err
}

// EnsureTemplatesPresent s'assure que les templates listés existent dans tplDir.
//
// - fsys    : embed.FS (ou autre fs.FS) contenant les ressources embarquées
// - srcFiles: chemins DANS fsys (ex: "templates/content.md.tmpl")
//
// Crée tplDir si besoin et copie chaque fichier absent.
// NE REMPLACE JAMAIS les fichiers existants (templates personnalisés).
func EnsureTemplatesPresent(tplDir string, fsys fs.FS, srcFiles []string) error {
	parent := filepath.Dir(tplDir)
	if st, err := os.Stat(parent); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("le répertoire parent n'existe pas : %s", parent)
		}
		return fmt.Errorf("échec lors du test du répertoire parent %s : %w", parent, err)
	} else if !st.IsDir() {
		return fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	if err := os.MkdirAll(tplDir, 0o755); err != nil {
		return fmt.Errorf("échec de création du répertoire de templates %s : %w", tplDir, err)
	}
	empty, err := fsutil.IsDirEmpty(tplDir)
	if err != nil {
		return fmt.Errorf("échec lors de la vérification du répertoire %s : %w", tplDir, err)
	}

	for _, src := range srcFiles {
		dest := filepath.Join(tplDir, path.Base(src))
		if _, err := os.Stat(dest); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("échec lors du test du fichier %s : %w", dest, err)
		}
		if err := copyEmbedded(fsys, src, dest); err != nil {
			return err
		}
	}
	if empty {
		log.Printf("info: templates par défaut installés dans %s", tplDir)
	}
	return nil
}

// copyEmbedded écrit atomiquement le fichier src de fsys vers dest.
func copyEmbedded(fsys fs.FS, src, dest string) error {
	data, err := fs.ReadFile(fsys, src)
	if err != nil {
		return fmt.Errorf("fichier embarqué introuvable %s : %w", src, err)
	}
	if err := fsutil.WriteFileAtomic(dest, data, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier %s : %w", dest, err)
	}
	return nil
}
