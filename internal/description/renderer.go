package description

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"
	"text/template"

	"github.com/patrickprogramme/podmark/internal/assets"
	"github.com/patrickprogramme/podmark/internal/fsutil"
)

// Noms des templates (basenames des fichiers .tmpl).
const (
	SpotifyTemplate = "spotify.html.tmpl"
	ContentTemplate = "content.md.tmpl"
)

// ErrMissingTemplate : le template demandé n'existe pas dans le jeu parsé.
var ErrMissingTemplate = errors.New("template introuvable")

// Renderer gère le parsing paresseux (lazy) des templates et fournit des méthodes de rendu.
type Renderer struct {
	templates *template.Template
	fsys      fs.FS    // embed.FS ou os.DirFS
	patterns  []string // patterns relatifs au fsys, ex: "*.tmpl"
	once      sync.Once
	err       error // erreur d'initialisation mémorisée (once)
}

// NewRendererFromFS prépare un Renderer ; le parsing a lieu au premier rendu.
func NewRendererFromFS(fsys fs.FS, patterns []string) (*Renderer, error) {
	if fsys == nil {
		return nil, fmt.Errorf("fsys est nil")
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("aucun template fourni")
	}
	return &Renderer{
		fsys:     fsys,
		patterns: append([]string(nil), patterns...),
	}, nil
}

// EmbeddedRenderer utilise les templates embarqués dans le binaire.
func EmbeddedRenderer() (*Renderer, error) {
	sub, err := fs.Sub(assets.Embedded, assets.TemplatesRoot)
	if err != nil {
		return nil, fmt.Errorf("templates embarqués : %w", err)
	}
	return NewRendererFromFS(sub, []string{"*.tmpl"})
}

// DefaultRenderer lit les templates de tplDir s'il en contient,
// sinon retombe sur les templates embarqués.
func DefaultRenderer(tplDir string) (*Renderer, error) {
	if tplDir != "" {
		ok, err := fsutil.DirHasMatchingFiles(tplDir, []string{"*.tmpl"})
		if err != nil {
			return nil, err
		}
		if ok {
			return NewRendererFromFS(os.DirFS(tplDir), []string{"*.tmpl"})
		}
	}
	return EmbeddedRenderer()
}

// parseTemplates effectue le parsing une seule fois (sync.Once).
func (r *Renderer) parseTemplates() error {
	r.once.Do(func() {
		t := template.New("root").Funcs(baseFuncMap())
		for _, p := range r.patterns {
			var err error
			t, err = t.ParseFS(r.fsys, p)
			if err != nil {
				r.err = fmt.Errorf("parse pattern %q: %w", p, err)
				return
			}
		}
		r.templates = t
	})
	return r.err
}

// ParseNow force le parsing immédiat.
func (r *Renderer) ParseNow() error {
	if r == nil {
		return fmt.Errorf("nil renderer")
	}
	return r.parseTemplates()
}

// Render exécute le template tmplName avec data.
func (r *Renderer) Render(tmplName string, data any) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if err := r.parseTemplates(); err != nil {
		return nil, err
	}
	if r.templates.Lookup(tmplName) == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingTemplate, tmplName)
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, tmplName, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}

// TemplateNames retourne les noms des templates parsés.
// Avant parsing : les basenames des patterns, à titre indicatif.
func (r *Renderer) TemplateNames() []string {
	if r == nil {
		return nil
	}
	if r.templates == nil {
		out := make([]string, 0, len(r.patterns))
		for _, p := range r.patterns {
			out = append(out, path.Base(p))
		}
		return out
	}
	names := make([]string, 0, len(r.templates.Templates()))
	for _, t := range r.templates.Templates() {
		if n := t.Name(); n != "" && n != "root" {
			names = append(names, n)
		}
	}
	return names
}
