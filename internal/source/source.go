// Package source charge les documents d'entrée (transcript, outline, fiches YAML)
// depuis un fichier local ou une URL http(s).
// Tout est lu en mémoire : les documents restent de taille modeste.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultMaxBytes  = 10_000_000
	DefaultUserAgent = "podmark/1.0"
)

// Erreurs exportées
var (
	ErrStatus   = errors.New("unexpected HTTP status")
	ErrTooLarge = errors.New("document too large")
)

// Loader lit un document local ou distant.
// La valeur zéro est utilisable (defaults + http.DefaultClient).
type Loader struct {
	Client   *http.Client  // nil -> http.DefaultClient
	Timeout  time.Duration // <=0 -> DefaultTimeout
	MaxBytes int64         // <=0 -> DefaultMaxBytes
}

// IsURL indique si ref désigne une ressource http(s).
func IsURL(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Load retourne le contenu texte de ref (chemin ou URL).
// Un BOM UTF-8 éventuel est retiré.
func (l Loader) Load(ctx context.Context, ref string) (string, error) {
	var (
		data []byte
		err  error
	)
	if IsURL(ref) {
		data, err = l.fetch(ctx, ref)
	} else {
		data, err = l.readFile(ref)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}

func (l Loader) maxBytes() int64 {
	if l.MaxBytes <= 0 {
		return DefaultMaxBytes
	}
	return l.MaxBytes
}

func (l Loader) readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("lecture de %s impossible : %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s est un répertoire", path)
	}
	if info.Size() > l.maxBytes() {
		return nil, fmt.Errorf("%w: %s (%d > %d octets)", ErrTooLarge, path, info.Size(), l.maxBytes())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture de %s impossible : %w", path, err)
	}
	return data, nil
}

// fetch télécharge l'URL et retourne les octets.
// - ctx peut être nil.
// - timeout et taille max selon le Loader.
func (l Loader) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	// defaults
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxBytes := l.maxBytes()
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	// valider l'URL tôt
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("fetch: invalid url %q: %w", rawURL, err)
	}

	// timeout via context
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: new request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: %w: %s", rawURL, ErrStatus, resp.Status)
	}

	// si Content-Length connu et supérieur à maxBytes -> échouer vite
	if resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("fetch: %w: content-length %d exceeds limit %d", ErrTooLarge, resp.ContentLength, maxBytes)
	}

	r := io.LimitReader(resp.Body, maxBytes+1) // +1 pour détecter dépassement
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("fetch: %w (>%d bytes)", ErrTooLarge, maxBytes)
	}
	return data, nil
}
