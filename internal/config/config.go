package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/patrickprogramme/podmark/internal/assets"
	"github.com/patrickprogramme/podmark/internal/bootstrap"
	"github.com/patrickprogramme/podmark/pkg/model"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// DefaultFileName : nom du fichier de configuration cherché par défaut.
const DefaultFileName = "podmark.yaml"

// Variables d'environnement reconnues (appliquées après le YAML).
const (
	EnvOutputDir    = "PODMARK_OUTPUT_DIR"
	EnvTemplatesDir = "PODMARK_TEMPLATES_DIR"
	EnvCopy         = "PODMARK_COPY"
)

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir    string `yaml:"output_dir"`
	TemplatesDir string `yaml:"templates_dir"`

	// Noms des fichiers produits
	MarkedFilename      string `yaml:"marked_filename"`
	DescriptionFilename string `yaml:"description_filename"`

	// Comportement
	Overwrite       bool `yaml:"overwrite"`
	CopyToClipboard bool `yaml:"copy_to_clipboard"`
	WarnUnplaced    bool `yaml:"warn_unplaced"`

	// Lecture des entrées distantes
	Fetch struct {
		TimeoutSec int   `yaml:"timeout_sec"`
		MaxBytes   int64 `yaml:"max_bytes"`
	} `yaml:"fetch"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant ou incomplet)
func defaultConfig() *Config {
	c := &Config{}

	// Chemins
	c.OutputDir = "."
	c.TemplatesDir = ""

	// Fichiers
	c.MarkedFilename = "marked_transcript.md"
	c.DescriptionFilename = "content.md"

	// Comportement
	c.Overwrite = true
	c.CopyToClipboard = false
	c.WarnUnplaced = true

	// Fetch
	c.Fetch.TimeoutSec = 15
	c.Fetch.MaxBytes = 10_000_000

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Default retourne la configuration par défaut, sans lecture disque.
func Default() *Config {
	c := defaultConfig()
	c.normalizeConfig()
	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets.
// Les variables d'environnement (et un éventuel .env) sont appliquées ensuite.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	// si le fichier n'existe pas -> créer à partir de l'asset embarqué
	if err := bootstrap.EnsureConfigPresent(path, assets.Embedded, assets.DefaultConfigAsset); err != nil {
		return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> sauvegarde + migration + réécriture
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		cfg.normalizeConfig()
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.normalizeConfig()

	return cfg, nil
}

// LoadDotEnv charge les fichiers .env fournis (ou ".env" par défaut).
// Un fichier absent n'est pas une erreur; les variables déjà définies ne sont pas écrasées.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("lecture de %s impossible : %w", f, err)
		}
	}
	return nil
}

// ApplyEnv applique les surcharges PODMARK_*.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvOutputDir); ok && strings.TrimSpace(v) != "" {
		c.OutputDir = v
	}
	if v, ok := os.LookupEnv(EnvTemplatesDir); ok && strings.TrimSpace(v) != "" {
		c.TemplatesDir = v
	}
	if v, ok := os.LookupEnv(EnvCopy); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s invalide %q : %w", EnvCopy, v, err)
		}
		c.CopyToClipboard = b
	}
	return nil
}

// FilePath retourne le chemin du fichier lu par Load ("" pour Default).
func (c *Config) FilePath() string {
	return c.configFilePath
}

// FetchTimeout retourne le timeout des lectures HTTP.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSec) * time.Second
}

// ResolveTemplatesDir retourne le dossier de templates effectif :
// templates_dir s'il est renseigné, sinon "<baseDir>/templates".
func (c *Config) ResolveTemplatesDir(baseDir string) string {
	if c.TemplatesDir != "" {
		return c.TemplatesDir
	}
	if baseDir == "" {
		baseDir = "."
	}
	return filepath.Join(baseDir, "templates")
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	c.OutputDir = filepath.Clean(c.OutputDir)
	c.TemplatesDir = strings.TrimSpace(c.TemplatesDir)
	if c.TemplatesDir != "" {
		c.TemplatesDir = filepath.Clean(c.TemplatesDir)
	}

	// noms de fichiers : un nom seul, jamais un chemin
	c.MarkedFilename = normalizeFileName(c.MarkedFilename, "marked_transcript.md")
	c.DescriptionFilename = normalizeFileName(c.DescriptionFilename, "content.md")

	if c.Fetch.TimeoutSec <= 0 {
		c.Fetch.TimeoutSec = 15
	}
	if c.Fetch.MaxBytes <= 0 {
		c.Fetch.MaxBytes = 10_000_000
	}
}

// normalizeFileName garde le nom de base et ajoute ".md" s'il manque une extension textuelle.
func normalizeFileName(name, fallback string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return fallback
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if f, err := model.ParseFormat(ext); err != nil || !f.IsTextual() {
		return name + model.FormatMARKDOWN.Extension()
	}
	return name
}
