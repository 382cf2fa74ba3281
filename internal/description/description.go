// Package description produit la description d'un épisode (content.md)
// à partir des fiches podcast/épisode et de l'outline.
package description

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/patrickprogramme/podmark/internal/fsutil"
	"github.com/patrickprogramme/podmark/pkg/model"
	"gopkg.in/yaml.v3"
)

// Noms des fichiers de départ écrits par MakePodcastInfoStarter / MakeEpisodeStarter.
const (
	PodcastFileName = "podcast.yaml"
	EpisodeFileName = "episode.yaml"
)

// Data : données passées aux templates.
type Data struct {
	Podcast     PodcastInfo
	Episode     Episode
	Outline     []model.OutlineEntry
	SpotifyHTML string // fragment spotify déjà passé par PrepareHTML (vide pour le template spotify)
}

// GenerateContentMarkdown rend le fragment spotify, le prépare avec PrepareHTML,
// puis rend content.md qui l'embarque.
func GenerateContentMarkdown(r *Renderer, podcast PodcastInfo, episode Episode, outline []model.OutlineEntry) (string, error) {
	data := Data{Podcast: podcast, Episode: episode, Outline: outline}

	spotify, err := r.Render(SpotifyTemplate, data)
	if err != nil {
		return "", fmt.Errorf("rendu du fragment spotify : %w", err)
	}
	data.SpotifyHTML = PrepareHTML(string(spotify))

	content, err := r.Render(ContentTemplate, data)
	if err != nil {
		return "", fmt.Errorf("rendu de la description : %w", err)
	}
	return string(content), nil
}

// MakePodcastInfoStarter écrit un podcast.yaml d'exemple dans saveDir.
// Retourne le chemin écrit. Un fichier existant n'est jamais remplacé.
func MakePodcastInfoStarter(saveDir string) (string, error) {
	p := PodcastInfo{
		Name:              "Your great podcast",
		TranscriptSiteURL: "https://www.ygp.com/transcripts",
		Links: []Link{
			{Text: "LinkedIn", Href: "https://www.linkedin.com/in/ygp/"},
			{Text: "Website", Href: "https://www.ygp.com/"},
		},
	}
	return writeStarter(saveDir, PodcastFileName, p)
}

// MakeEpisodeStarter écrit une fiche épisode d'exemple (fileName vide -> episode.yaml).
func MakeEpisodeStarter(saveDir, fileName string) (string, error) {
	if fileName == "" {
		fileName = EpisodeFileName
	}
	e := Episode{
		Title:       "Hello, world!",
		Number:      1,
		Description: "Your great episode\non multiple lines.",
		Links: []Link{
			{Text: "Company's LinkedIn", Href: "https://www.company.com/"},
		},
	}
	return writeStarter(saveDir, fileName, e)
}

func writeStarter(saveDir, fileName string, v any) (string, error) {
	if saveDir == "" {
		saveDir = "."
	}
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		return "", fmt.Errorf("création du dossier %s impossible : %w", saveDir, err)
	}
	dest := filepath.Join(saveDir, fileName)
	if _, err := os.Stat(dest); err == nil {
		return "", fmt.Errorf("%s : %w", dest, fs.ErrExist)
	}

	b, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encodage YAML de %s : %w", fileName, err)
	}
	if err := fsutil.WriteFileAtomic(dest, b, 0o644); err != nil {
		return "", err
	}
	return dest, nil
}
