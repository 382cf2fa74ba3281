package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "outline.txt")
	if err := os.WriteFile(p, []byte("\ufeff00:00 Start\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Loader{}.Load(context.Background(), p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "00:00 Start\n" {
		t.Fatalf("content = %q (BOM should be stripped)", got)
	}
}

func TestLoad_FileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := (Loader{}).Load(context.Background(), filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := (Loader{}).Load(context.Background(), dir); err == nil {
		t.Fatalf("expected error for directory")
	}

	big := filepath.Join(dir, "big.txt")
	if err := os.WriteFile(big, []byte(strings.Repeat("x", 64)), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Loader{MaxBytes: 10}.Load(context.Background(), big)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestLoad_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != DefaultUserAgent {
			t.Errorf("user agent = %q", r.Header.Get("User-Agent"))
		}
		switch r.URL.Path {
		case "/transcript.txt":
			fmt.Fprint(w, "[00:00:00] hello")
		case "/big.txt":
			fmt.Fprint(w, strings.Repeat("x", 100))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := Loader{Client: srv.Client(), MaxBytes: 50}

	got, err := l.Load(context.Background(), srv.URL+"/transcript.txt")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "[00:00:00] hello" {
		t.Fatalf("content = %q", got)
	}

	if _, err := l.Load(context.Background(), srv.URL+"/missing"); !errors.Is(err, ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
	if _, err := l.Load(context.Background(), srv.URL+"/big.txt"); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestIsURL(t *testing.T) {
	if !IsURL("HTTPS://example.com/x") || !IsURL("http://x") {
		t.Fatalf("expected URLs")
	}
	if IsURL("transcript.txt") || IsURL("/tmp/http://x") {
		t.Fatalf("expected local paths")
	}
}
