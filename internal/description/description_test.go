package description

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/patrickprogramme/podmark/pkg/model"
)

func samplePodcast() PodcastInfo {
	return PodcastInfo{
		Name:              "Audrow Nash Podcast",
		TranscriptSiteURL: "https://www.audrow.com",
		Links: []Link{
			{Text: "LinkedIn", Href: "https://www.linkedin.com/in/audrow/"},
		},
	}
}

func sampleEpisode() Episode {
	return Episode{
		Title:       "Hello, world!",
		Number:      1,
		Description: "A podcast about robots\n\nThe best stuff",
		Links:       []Link{{Text: "Full transcript", Href: "https://www.audrow.com/"}},
	}
}

func sampleOutline() []model.OutlineEntry {
	return []model.OutlineEntry{
		{TimeCode: model.MustTimeCode(0, 0, 0), Text: "Introduction"},
		{TimeCode: model.MustTimeCode(0, 1, 30), Text: "Nag and Mike introduce themselves"},
		{TimeCode: model.MustTimeCode(1, 30, 30), Text: "Wrapping up"},
	}
}

func TestEpisodeSlugAndTranscriptURL(t *testing.T) {
	ep := sampleEpisode()
	if got := EpisodeSlug(ep); got != "1-hello-world" {
		t.Fatalf("EpisodeSlug = %q", got)
	}
	if got := TranscriptURL(ep, samplePodcast()); got != "https://www.audrow.com/1-hello-world.html" {
		t.Fatalf("TranscriptURL = %q", got)
	}
}

func TestPrepareHTML(t *testing.T) {
	got := PrepareHTML("<p>a - b & c</p>\n<br>")
	want := "&lt;p&gt;a &#8211; b &amp; c&lt;/p&gt;<br/>&lt;br&gt;"
	if got != want {
		t.Fatalf("PrepareHTML = %q; want %q", got, want)
	}
}

func TestParseRecords(t *testing.T) {
	p, err := ParsePodcastInfo("name: Pod\ntranscript_site_url: https://x.org/t/\nlinks:\n  - text: Web\n    href: https://x.org\n")
	if err != nil {
		t.Fatalf("ParsePodcastInfo: %v", err)
	}
	if p.TranscriptSiteURL != "https://x.org/t" || len(p.Links) != 1 || p.Links[0].Text != "Web" {
		t.Fatalf("unexpected podcast %+v", p)
	}
	if _, err := ParsePodcastInfo("links: []\n"); err == nil {
		t.Fatalf("expected error for missing name")
	}

	e, err := ParseEpisode("title: Hi\nnumber: 7\ndescription: |\n  line one\n  line two\n")
	if err != nil {
		t.Fatalf("ParseEpisode: %v", err)
	}
	if e.Number != 7 || e.Description != "line one\nline two\n" {
		t.Fatalf("unexpected episode %+v", e)
	}
	if _, err := ParseEpisode("title: [oops\n"); err == nil {
		t.Fatalf("expected YAML error")
	}
}

func TestGenerateContentMarkdown_Embedded(t *testing.T) {
	r, err := EmbeddedRenderer()
	if err != nil {
		t.Fatalf("EmbeddedRenderer: %v", err)
	}

	md, err := GenerateContentMarkdown(r, samplePodcast(), sampleEpisode(), sampleOutline())
	if err != nil {
		t.Fatalf("GenerateContentMarkdown: %v", err)
	}

	for _, want := range []string{
		"# 1. Hello, world!",
		"> A podcast about robots",
		"- [[00:01:30] Nag and Mike introduce themselves](#nag-and-mike-introduce-themselves)",
		"- [Full transcript](https://www.audrow.com/1-hello-world.html)",
		"## Audrow Nash Podcast",
		"&lt;li&gt;(01:30:30) Wrapping up&lt;/li&gt;",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
	// le fragment spotify est sur une seule ligne après préparation
	if strings.Contains(md, "<p>") {
		t.Errorf("spotify fragment must be escaped:\n%s", md)
	}
}

func TestRenderer_CustomDirAndMissingTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		SpotifyTemplate: {Data: []byte("{{ .Episode.Title }}-{{ len .Outline }}")},
		ContentTemplate: {Data: []byte("{{ episodeSlug .Episode }}|{{ .SpotifyHTML }}")},
	}
	r, err := NewRendererFromFS(fsys, []string{"*.tmpl"})
	if err != nil {
		t.Fatal(err)
	}

	md, err := GenerateContentMarkdown(r, samplePodcast(), sampleEpisode(), sampleOutline())
	if err != nil {
		t.Fatalf("GenerateContentMarkdown: %v", err)
	}
	if md != "1-hello-world|Hello, world!&#8211;3" {
		t.Fatalf("md = %q", md)
	}

	if _, err := r.Render("nope.tmpl", Data{}); !errors.Is(err, ErrMissingTemplate) {
		t.Fatalf("expected ErrMissingTemplate, got %v", err)
	}
}

func TestDefaultRenderer_FallsBackToEmbedded(t *testing.T) {
	r, err := DefaultRenderer(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("DefaultRenderer: %v", err)
	}
	if err := r.ParseNow(); err != nil {
		t.Fatalf("ParseNow: %v", err)
	}
	names := strings.Join(r.TemplateNames(), ",")
	if !strings.Contains(names, SpotifyTemplate) || !strings.Contains(names, ContentTemplate) {
		t.Fatalf("TemplateNames = %s", names)
	}
}

func TestDefaultRenderer_UsesDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ContentTemplate), []byte("custom {{ .Episode.Number }}"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := DefaultRenderer(dir)
	if err != nil {
		t.Fatalf("DefaultRenderer: %v", err)
	}
	out, err := r.Render(ContentTemplate, Data{Episode: sampleEpisode()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(out) != "custom 1" {
		t.Fatalf("out = %q", out)
	}
}

func TestStarters(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "show")

	podPath, err := MakePodcastInfoStarter(dir)
	if err != nil {
		t.Fatalf("MakePodcastInfoStarter: %v", err)
	}
	epPath, err := MakeEpisodeStarter(dir, "")
	if err != nil {
		t.Fatalf("MakeEpisodeStarter: %v", err)
	}

	podData, _ := os.ReadFile(podPath)
	p, err := ParsePodcastInfo(string(podData))
	if err != nil {
		t.Fatalf("starter podcast does not parse: %v", err)
	}
	if p.Name != "Your great podcast" || len(p.Links) != 2 {
		t.Fatalf("unexpected podcast starter %+v", p)
	}

	epData, _ := os.ReadFile(epPath)
	e, err := ParseEpisode(string(epData))
	if err != nil {
		t.Fatalf("starter episode does not parse: %v", err)
	}
	if e.Title != "Hello, world!" || e.Description != "Your great episode\non multiple lines." {
		t.Fatalf("unexpected episode starter %+v", e)
	}

	if _, err := MakePodcastInfoStarter(dir); !errors.Is(err, fs.ErrExist) {
		t.Fatalf("expected fs.ErrExist, got %v", err)
	}
}
