package description

import (
	"html"
	"strings"
	"text/template"

	"github.com/patrickprogramme/podmark/internal/transcript"
	"github.com/patrickprogramme/podmark/pkg/model"
)

// baseFuncMap : fonctions exposées aux templates.
func baseFuncMap() template.FuncMap {
	return template.FuncMap{
		"episodeSlug":   EpisodeSlug,
		"transcriptURL": TranscriptURL,

		// {{ contents .Outline }} -> table des matières Markdown (ancres du transcript annoté)
		"contents": contentsPure,
		"quoteBlock": quoteBlockPure,
	}
}

// PrepareHTML échappe le fragment HTML pour le coller tel quel dans la description :
// échappement minimal, "\n" -> "<br/>", "-" -> "&#8211;".
func PrepareHTML(s string) string {
	s = html.EscapeString(s)
	s = strings.ReplaceAll(s, "\n", "<br/>")
	return strings.ReplaceAll(s, "-", "&#8211;")
}

func contentsPure(entries []model.OutlineEntry) string {
	return transcript.RenderContents(transcript.BuildContents(entries))
}

// quoteBlockPure : préfixe chaque ligne par "> " pour un blockquote Markdown.
func quoteBlockPure(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i := range lines {
		lines[i] = "> " + lines[i]
	}
	return strings.Join(lines, "\n")
}
