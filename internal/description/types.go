package description

import (
	"fmt"
	"strings"

	"github.com/patrickprogramme/podmark/internal/slug"
	"gopkg.in/yaml.v3"
)

// Link : lien affiché dans la description (texte + cible).
type Link struct {
	Text string `yaml:"text"`
	Href string `yaml:"href"`
}

// PodcastInfo : fiche podcast.yaml, commune à tous les épisodes.
type PodcastInfo struct {
	Name              string `yaml:"name"`
	TranscriptSiteURL string `yaml:"transcript_site_url"`
	Links             []Link `yaml:"links"`
}

// Episode : fiche episode.yaml.
type Episode struct {
	Title       string `yaml:"title"`
	Number      int    `yaml:"number"`
	Description string `yaml:"description"`
	Links       []Link `yaml:"links"`
}

// ParsePodcastInfo décode une fiche podcast YAML.
func ParsePodcastInfo(doc string) (PodcastInfo, error) {
	var p PodcastInfo
	if err := yaml.Unmarshal([]byte(doc), &p); err != nil {
		return PodcastInfo{}, fmt.Errorf("analyse de la fiche podcast impossible : %w", err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return PodcastInfo{}, fmt.Errorf("fiche podcast : champ name manquant")
	}
	p.TranscriptSiteURL = strings.TrimRight(strings.TrimSpace(p.TranscriptSiteURL), "/")
	return p, nil
}

// ParseEpisode décode une fiche épisode YAML.
func ParseEpisode(doc string) (Episode, error) {
	var e Episode
	if err := yaml.Unmarshal([]byte(doc), &e); err != nil {
		return Episode{}, fmt.Errorf("analyse de la fiche épisode impossible : %w", err)
	}
	if strings.TrimSpace(e.Title) == "" {
		return Episode{}, fmt.Errorf("fiche épisode : champ title manquant")
	}
	if e.Number < 0 {
		return Episode{}, fmt.Errorf("fiche épisode : numéro négatif %d", e.Number)
	}
	return e, nil
}

// EpisodeSlug : "<numéro> <titre>" passé au générateur de slug.
// Ex: {1, "Hello, world!"} -> "1-hello-world".
func EpisodeSlug(e Episode) string {
	return slug.Make(fmt.Sprintf("%d %s", e.Number, e.Title))
}

// TranscriptURL : "<transcript_site_url>/<slug>.html".
func TranscriptURL(e Episode, p PodcastInfo) string {
	return fmt.Sprintf("%s/%s.html", p.TranscriptSiteURL, EpisodeSlug(e))
}
