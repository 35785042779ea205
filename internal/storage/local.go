// Package storage is the image sink: bytes in, retrievable URL out.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Sink stores an uploaded file and returns its public URL.
type Sink interface {
	Store(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Local writes uploads to a directory served under /files.
type Local struct {
	dir     string
	urlBase string
	logger  *log.Logger
}

func NewLocal(dir, urlBase string, logger *log.Logger) (*Local, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir, urlBase: strings.TrimRight(urlBase, "/"), logger: logger}, nil
}

// Dir is the directory the router serves statically.
func (l *Local) Dir() string { return l.dir }

func (l *Local) Store(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := uuid.NewString() + "_" + sanitize(filename)
	path := filepath.Join(l.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload: %w", err)
	}

	url := l.urlBase + "/files/" + name
	l.logger.Printf("storage: stored %s", url)
	return url, nil
}

// sanitize keeps only the base name and replaces path-hostile characters.
func sanitize(filename string) string {
	base := filepath.Base(filename)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	if base == "" || base == "." {
		return "upload"
	}
	return base
}
