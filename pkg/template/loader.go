package template

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotFound reports a template reference that resolved to no file. It is
// fatal for the render call that asked for it; there is no fallback template.
var ErrNotFound = errors.New("template: not found")

// Loader fetches template documents from a Source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOption customises loader construction.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	fs       fs.FS
	fallback Size
}

// WithFS supplies the fs.FS consulted for SourceKindFS sources.
func WithFS(fsys fs.FS) LoaderOption {
	return func(cfg *loaderConfig) {
		cfg.fs = fsys
	}
}

// WithFallbackSize overrides the size used when a template path carries no
// WIDTHxHEIGHT segment.
func WithFallbackSize(size Size) LoaderOption {
	return func(cfg *loaderConfig) {
		cfg.fallback = size
	}
}

type loader struct {
	cfg loaderConfig
}

// NewLoader constructs the default Loader, reading file sources from disk and
// fs sources from the configured fs.FS.
func NewLoader(options ...LoaderOption) Loader {
	cfg := loaderConfig{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &loader{cfg: cfg}
}

// Load fetches the template body and wraps it in a Document.
func (l *loader) Load(ctx context.Context, src Source) (Document, error) {
	if src == nil {
		return Document{}, errors.New("template loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case SourceKindFile:
		data, err = os.ReadFile(src.Location())
	case SourceKindFS:
		if l.cfg.fs == nil {
			return Document{}, errors.New("template loader: fs support not configured")
		}
		data, err = fs.ReadFile(l.cfg.fs, src.Location())
	default:
		return Document{}, fmt.Errorf("template loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("template loader: %q: %w", src.Location(), ErrNotFound)
		}
		return Document{}, fmt.Errorf("template loader: read %q: %w", src.Location(), err)
	}

	return NewDocument(src, data, l.cfg.fallback)
}
