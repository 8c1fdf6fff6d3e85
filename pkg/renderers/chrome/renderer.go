package chrome

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/goliatone/go-framegen/pkg/render"
	"github.com/goliatone/go-framegen/pkg/template"
)

// Option customises the renderer configuration.
type Option func(*Renderer)

// WithLocator injects the browser discovery strategy. Defaults to the
// process-wide SystemLocator.
func WithLocator(locator Locator) Option {
	return func(r *Renderer) {
		if locator != nil {
			r.locator = locator
		}
	}
}

// WithOutputDir sets the directory used when a frame omits an explicit
// output path. Defaults to the working directory.
func WithOutputDir(dir string) Option {
	return func(r *Renderer) {
		if dir != "" {
			r.outputDir = dir
		}
	}
}

// WithLogger routes renderer logging to the supplied logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFlags appends browser flags on top of the built-in stability set.
func WithFlags(flags map[string]any) Option {
	return func(r *Renderer) {
		if len(flags) == 0 {
			return
		}
		if r.extraFlags == nil {
			r.extraFlags = make(map[string]any, len(flags))
		}
		for name, value := range flags {
			r.extraFlags[name] = value
		}
	}
}

// WithSurface injects a pre-built rendering surface, bypassing the lazy
// session creation. The surface is assumed to match the sizes it is asked to
// render.
func WithSurface(surface Surface) Option {
	return func(r *Renderer) {
		if surface != nil {
			r.surface = surface
			r.surfaceInjected = true
		}
	}
}

// Renderer rasterizes frames through a headless browser session. The session
// is created lazily on the first Render call, sized to that frame, and reused
// until Close; a frame at a different size requires a new Renderer. Render
// calls are not internally serialized — one in-flight render per instance is
// the caller's responsibility.
type Renderer struct {
	locator    Locator
	outputDir  string
	logger     *slog.Logger
	extraFlags map[string]any

	surface         Surface
	surfaceInjected bool
	sessionSize     template.Size
}

// New constructs a Renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{logger: slog.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.locator == nil {
		r.locator = DefaultLocator()
	}
	return r
}

func (r *Renderer) Name() string {
	return "chrome"
}

func (r *Renderer) ContentType() string {
	return "image/png"
}

// Render submits the frame markup to the session and writes the PNG to the
// frame's output path, or to an auto-generated unique filename when none was
// given. Any rasterization failure wraps the underlying cause; there is no
// automatic retry.
func (r *Renderer) Render(ctx context.Context, frame render.Frame) (render.Result, error) {
	if frame.HTML == "" {
		return render.Result{}, fmt.Errorf("chrome: frame markup is empty")
	}
	size := frame.Size
	if size.IsZero() {
		size = template.DefaultSize
	}

	surface, err := r.ensureSurface(ctx, size)
	if err != nil {
		return render.Result{}, err
	}
	if !r.surfaceInjected && size != r.sessionSize {
		return render.Result{}, fmt.Errorf("chrome: session is fixed at %s, cannot render %s (create a new renderer)",
			r.sessionSize, size)
	}

	outputPath, err := r.resolveOutputPath(frame.OutputPath)
	if err != nil {
		return render.Result{}, err
	}

	pageURL, cleanup, err := pageFileURL(frame.HTML)
	if err != nil {
		return render.Result{}, err
	}
	defer cleanup()

	png, err := surface.Screenshot(ctx, pageURL)
	if err != nil {
		return render.Result{}, fmt.Errorf("chrome: render failed: %w", err)
	}

	if err := os.WriteFile(outputPath, png, 0o644); err != nil {
		return render.Result{}, fmt.Errorf("chrome: write frame: %w", err)
	}

	r.logger.Debug("frame rendered", "path", outputPath, "size", size.String())
	return render.Result{Path: outputPath, Size: size}, nil
}

// Close releases the browser session. The renderer cannot be reused after.
func (r *Renderer) Close() error {
	if r.surface == nil || r.surfaceInjected {
		return nil
	}
	err := r.surface.Close()
	r.surface = nil
	return err
}

func (r *Renderer) ensureSurface(ctx context.Context, size template.Size) (Surface, error) {
	if r.surface != nil {
		return r.surface, nil
	}

	s, err := newSession(ctx, size, r.locator, r.extraFlags, r.logger)
	if err != nil {
		return nil, err
	}
	r.surface = s
	r.sessionSize = size
	return s, nil
}

func (r *Renderer) resolveOutputPath(explicit string) (string, error) {
	path := explicit
	if path == "" {
		id := uuid.New()
		path = filepath.Join(r.outputDir, fmt.Sprintf("frame_%x.png", id[:8]))
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("chrome: create output dir: %w", err)
		}
	}
	return path, nil
}
