package template

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver maps a path-like template key ("1080x1920/default.html") onto an
// absolute file location by probing an ordered list of template roots. User
// overrides conventionally sit in a data directory searched before the
// built-in templates directory.
type Resolver struct {
	roots []string
}

// NewResolver constructs a Resolver over the given roots, probed in order.
func NewResolver(roots ...string) *Resolver {
	cleaned := make([]string, 0, len(roots))
	for _, root := range roots {
		if root == "" {
			continue
		}
		cleaned = append(cleaned, filepath.Clean(root))
	}
	return &Resolver{roots: cleaned}
}

// Resolve returns a file Source for the first root containing key. Keys that
// are already absolute paths to existing files resolve to themselves.
func (r *Resolver) Resolve(key string) (Source, error) {
	if key == "" {
		return nil, fmt.Errorf("template resolver: key is required")
	}

	if filepath.IsAbs(key) {
		if _, err := os.Stat(key); err == nil {
			return SourceFromFile(key), nil
		}
		return nil, fmt.Errorf("template resolver: %q: %w", key, ErrNotFound)
	}

	for _, root := range r.roots {
		candidate := filepath.Join(root, filepath.FromSlash(key))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return SourceFromFile(candidate), nil
		}
	}
	return nil, fmt.Errorf("template resolver: %q: %w", key, ErrNotFound)
}
