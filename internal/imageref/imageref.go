// Package imageref rewrites image arguments into a form the headless
// rendering surface can load directly.
package imageref

import (
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

var passthroughSchemes = []string{"http://", "https://", "data:", "file://"}

// Normalizer classifies an image reference as a remote URL, a data URI, or a
// filesystem path, and rewrites paths into file:// URIs resolved against a
// working root.
type Normalizer struct {
	root   string
	logger *slog.Logger
}

// Option customises a Normalizer.
type Option func(*Normalizer)

// WithRoot overrides the working root used to resolve relative paths. It
// defaults to the process working directory.
func WithRoot(root string) Option {
	return func(n *Normalizer) {
		if root != "" {
			n.root = root
		}
	}
}

// WithLogger routes normalization warnings to the supplied logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// New constructs a Normalizer applying any provided options.
func New(options ...Option) *Normalizer {
	n := &Normalizer{logger: slog.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(n)
	}
	return n
}

// Normalize returns the reference in a renderer-consumable form. Values that
// already carry a recognized scheme pass through unchanged. Anything else is
// treated as a filesystem path: relative paths resolve against the working
// root, a missing file only logs a warning (the render degrades to a dangling
// image, it does not fail), and the result is rewritten as a file:// URI.
func (n *Normalizer) Normalize(ref string) string {
	if ref == "" {
		return ref
	}
	for _, scheme := range passthroughSchemes {
		if strings.HasPrefix(ref, scheme) {
			return ref
		}
	}

	path := ref
	if !filepath.IsAbs(path) {
		root := n.root
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				n.logger.Warn("cannot resolve working directory for image path", "image", ref, "error", err)
				return ref
			}
			root = cwd
		}
		path = filepath.Join(root, path)
	}

	if _, err := os.Stat(path); err != nil {
		// Degrades to a dangling reference in the rendered frame; the
		// original value is kept so the markup still shows what was asked.
		n.logger.Warn("image file not found", "path", path)
		return ref
	}

	uri := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return uri.String()
}
