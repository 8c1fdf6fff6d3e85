package chrome

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// defaultCandidates lists well-known browser install locations, preferred
// order first. Snap-packaged builds resolve under /snap/ and are rejected:
// their AppArmor confinement blocks the sandbox and file-access flags the
// renderer needs.
var defaultCandidates = []string{
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/usr/local/bin/chrome",
	"/usr/local/bin/chromium",
}

// Locator finds a browser executable for the rendering session. Platforms
// without a useful probe supply NoopLocator so the session falls back to the
// rendering surface's own lookup.
type Locator interface {
	// Executable returns the preferred browser path. ok is false when no
	// acceptable candidate was found.
	Executable(ctx context.Context) (path string, ok bool)
}

// NoopLocator always defers to the default executable resolution.
type NoopLocator struct{}

func (NoopLocator) Executable(context.Context) (string, bool) {
	return "", false
}

// FixedLocator pins a known browser executable, skipping the probe entirely.
type FixedLocator string

func (f FixedLocator) Executable(context.Context) (string, bool) {
	return string(f), f != ""
}

// SystemLocator probes a fixed candidate list once and memoizes the result
// for the locator's lifetime. The probe is best-effort: every step is
// tolerant of missing files and bounded by a short per-step timeout.
type SystemLocator struct {
	candidates  []string
	stepTimeout time.Duration
	logger      *slog.Logger

	once sync.Once
	path string
	ok   bool
}

// LocatorOption customises a SystemLocator.
type LocatorOption func(*SystemLocator)

// WithCandidates replaces the probed executable paths.
func WithCandidates(paths ...string) LocatorOption {
	return func(l *SystemLocator) {
		if len(paths) > 0 {
			l.candidates = paths
		}
	}
}

// WithProbeTimeout bounds each probe step.
func WithProbeTimeout(d time.Duration) LocatorOption {
	return func(l *SystemLocator) {
		if d > 0 {
			l.stepTimeout = d
		}
	}
}

// WithLocatorLogger routes probe logging to the supplied logger.
func WithLocatorLogger(logger *slog.Logger) LocatorOption {
	return func(l *SystemLocator) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewSystemLocator constructs a SystemLocator applying any provided options.
func NewSystemLocator(options ...LocatorOption) *SystemLocator {
	l := &SystemLocator{
		candidates:  defaultCandidates,
		stepTimeout: time.Second,
		logger:      slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Executable runs the probe on first call and returns the memoized result
// afterwards.
func (l *SystemLocator) Executable(ctx context.Context) (string, bool) {
	l.once.Do(func() {
		l.path, l.ok = l.probe(ctx)
	})
	return l.path, l.ok
}

func (l *SystemLocator) probe(ctx context.Context) (string, bool) {
	for _, candidate := range l.candidates {
		if err := ctx.Err(); err != nil {
			return "", false
		}

		stepCtx, cancel := context.WithTimeout(ctx, l.stepTimeout)
		path, ok := l.probeCandidate(stepCtx, candidate)
		cancel()
		if ok {
			return path, true
		}
	}

	l.logger.Warn("no non-snap browser found, deferring to default executable resolution",
		"candidates", len(l.candidates))
	return "", false
}

func (l *SystemLocator) probeCandidate(ctx context.Context, candidate string) (string, bool) {
	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return "", false
	}
	if info.Mode().Perm()&0o111 == 0 {
		return "", false
	}
	if err := ctx.Err(); err != nil {
		return "", false
	}

	real, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		l.logger.Debug("cannot resolve browser candidate", "path", candidate, "error", err)
		return "", false
	}
	if strings.Contains(real, "/snap/") {
		l.logger.Debug("skipping snap-confined browser", "path", candidate, "resolved", real)
		return "", false
	}

	l.logger.Debug("found browser executable", "path", candidate, "resolved", real)
	return candidate, true
}

var (
	sharedLocatorOnce sync.Once
	sharedLocator     *SystemLocator
)

// DefaultLocator returns the process-wide locator. Its probe runs at most
// once per process and the result is read-only afterwards.
func DefaultLocator() *SystemLocator {
	sharedLocatorOnce.Do(func() {
		sharedLocator = NewSystemLocator()
	})
	return sharedLocator
}
