package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_CreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", DefaultFileName)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if cfg.MarkedFilename != "marked_transcript.md" || cfg.DescriptionFilename != "content.md" {
		t.Fatalf("unexpected file names: %+v", cfg)
	}
	if !cfg.Overwrite || !cfg.WarnUnplaced || cfg.CopyToClipboard {
		t.Fatalf("unexpected flags: %+v", cfg)
	}
	if cfg.Fetch.TimeoutSec != 15 || cfg.Fetch.MaxBytes != 10_000_000 {
		t.Fatalf("unexpected fetch settings: %+v", cfg.Fetch)
	}
	if cfg.FilePath() != path {
		t.Fatalf("FilePath = %q", cfg.FilePath())
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	yml := "output_dir: out\\episodes\nmarked_filename: marked\noverwrite: false\nconfig_version: 1\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != filepath.Clean("out/episodes") {
		t.Fatalf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.MarkedFilename != "marked.md" {
		t.Fatalf("MarkedFilename = %q", cfg.MarkedFilename)
	}
	if cfg.Overwrite {
		t.Fatalf("overwrite should be false")
	}
	if cfg.DescriptionFilename != "content.md" || cfg.Fetch.TimeoutSec != 15 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoad_MigratesOldVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	// config_version absent vaudrait la valeur par défaut : on force une version ancienne
	if err := os.WriteFile(path, []byte("output_dir: .\nconfig_version: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Fatalf("ConfigVersion = %d", cfg.ConfigVersion)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "config_version: 1") {
		t.Fatalf("migrated file not rewritten:\n%s", data)
	}

	matches, _ := filepath.Glob(path + ".bak.*")
	if len(matches) != 1 {
		t.Fatalf("expected one backup, got %v", matches)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("overwrite: [not a bool\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvOutputDir, "/tmp/podmark-out")
	t.Setenv(EnvTemplatesDir, "tpl")
	t.Setenv(EnvCopy, "true")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.OutputDir != "/tmp/podmark-out" || cfg.TemplatesDir != "tpl" || !cfg.CopyToClipboard {
		t.Fatalf("env not applied: %+v", cfg)
	}

	t.Setenv(EnvCopy, "peut-être")
	if err := cfg.ApplyEnv(); err == nil {
		t.Fatalf("expected error for invalid %s", EnvCopy)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("PODMARK_TEMPLATES_DIR=from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// t.Setenv enregistre la restauration ; on vide ensuite pour laisser godotenv poser la valeur
	t.Setenv(EnvTemplatesDir, "")
	os.Unsetenv(EnvTemplatesDir)

	if err := LoadDotEnv(envFile, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv(EnvTemplatesDir); got != "from-dotenv" {
		t.Fatalf("%s = %q", EnvTemplatesDir, got)
	}
}

func TestResolveTemplatesDir(t *testing.T) {
	cfg := Default()
	if got := cfg.ResolveTemplatesDir("/opt/podmark"); got != filepath.Join("/opt/podmark", "templates") {
		t.Fatalf("ResolveTemplatesDir = %q", got)
	}
	cfg.TemplatesDir = "custom"
	if got := cfg.ResolveTemplatesDir("/opt/podmark"); got != "custom" {
		t.Fatalf("ResolveTemplatesDir = %q", got)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.OutputDir = filepath.Join(dir, "not-yet")

	warnings, err := cfg.Validate(filepath.Join(dir, "templates"))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.OutputDir = file
	if _, err := cfg.Validate(""); err == nil {
		t.Fatalf("expected error when output_dir is a file")
	}

	cfg.OutputDir = dir
	cfg.DescriptionFilename = cfg.MarkedFilename
	if _, err := cfg.Validate(""); err == nil {
		t.Fatalf("expected error for identical file names")
	}
}
