package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewLocal(dir, "http://localhost:8080/", nil)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	url, err := sink.Store(context.Background(), "badem içi.jpg", strings.NewReader("jpegbytes"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:8080/files/") {
		t.Fatalf("unexpected url %q", url)
	}
	if strings.Contains(url, " ") {
		t.Fatalf("url contains unsafe characters: %q", url)
	}

	name := strings.TrimPrefix(url, "http://localhost:8080/files/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "jpegbytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestLocalStoreUniqueNames(t *testing.T) {
	sink, err := NewLocal(t.TempDir(), "http://x", nil)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	a, err := sink.Store(context.Background(), "same.png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	b, err := sink.Store(context.Background(), "same.png", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct urls, both %q", a)
	}
}

func TestSanitize(t *testing.T) {
	if got := sanitize("../../etc/passwd"); strings.Contains(got, "/") {
		t.Fatalf("path not stripped: %q", got)
	}
	if got := sanitize(""); got != "upload" {
		t.Fatalf("expected fallback name, got %q", got)
	}
}
