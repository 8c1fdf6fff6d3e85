package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-framegen/internal/imageref"
	"github.com/goliatone/go-framegen/pkg/params"
	"github.com/goliatone/go-framegen/pkg/render"
	"github.com/goliatone/go-framegen/pkg/renderers/chrome"
	"github.com/goliatone/go-framegen/pkg/template"
)

const defaultRendererName = "chrome"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom template loader.
func WithLoader(loader template.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom placeholder parser.
func WithParser(parser *params.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithFallbackSize overrides the frame size used when a template path carries
// no WIDTHxHEIGHT segment.
func WithFallbackSize(size template.Size) Option {
	return func(o *Orchestrator) {
		o.fallbackSize = size
	}
}

// WithImageRoot sets the working root for resolving relative image paths.
func WithImageRoot(root string) Option {
	return func(o *Orchestrator) {
		o.imageRoot = root
	}
}

// WithOutputDir sets the directory for auto-generated frame files when the
// default renderer is used.
func WithOutputDir(dir string) Option {
	return func(o *Orchestrator) {
		o.outputDir = dir
	}
}

// WithLogger routes pipeline logging to the supplied logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the full pipeline from template reference to
// rendered frame: load, parse, normalize the image reference, substitute, and
// rasterize. It applies sensible defaults (file loader, chrome renderer)
// while remaining open to dependency injection for advanced callers.
//
// A single orchestrator reuses one rendering session, which is pinned to one
// frame size; callers rendering multiple sizes concurrently should hold one
// orchestrator per size and serialize renders on each.
type Orchestrator struct {
	loader          template.Loader
	parser          *params.Parser
	normalizer      *imageref.Normalizer
	registry        *render.Registry
	defaultRenderer string
	fallbackSize    template.Size
	imageRoot       string
	outputDir       string
	logger          *slog.Logger
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render one frame.
type Request struct {
	// Source identifies where the template lives. Optional when Document is
	// supplied.
	Source template.Source

	// Document allows callers to bypass the loader when they already have a
	// loaded template.
	Document *template.Document

	// Title is the optional frame title, exposed as {{title}}.
	Title string

	// Text is the required narration text for this frame, exposed as {{text}}.
	Text string

	// Image is an optional image reference (path, URL, or data URI), exposed
	// as {{image}} after normalization.
	Image string

	// Ext carries additional context values matched against template
	// placeholder names (content_title, content_author, custom parameters...).
	Ext map[string]any

	// OutputPath optionally pins the frame destination. Auto-generated when
	// empty.
	OutputPath string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string
}

// Frame is a produced raster image at a known size.
type Frame struct {
	Path   string        `json:"path"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Size   template.Size `json:"-"`
}

// Generate executes the load → parse → substitute → render sequence and
// returns the produced frame. Template-not-found and rendering failures are
// fatal for the call; placeholder anomalies degrade with warnings instead.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Frame, error) {
	if ctx == nil {
		return Frame{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}
	if req.Text == "" {
		return Frame{}, errors.New("orchestrator: text is required")
	}

	doc, err := o.resolveDocument(ctx, req.Source, req.Document)
	if err != nil {
		return Frame{}, err
	}

	vars := o.buildContext(req)
	html := params.Substitute(doc.Body(), vars)

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Frame{}, err
	}

	result, err := renderer.Render(ctx, render.Frame{
		HTML:       html,
		Size:       doc.Size(),
		OutputPath: req.OutputPath,
	})
	if err != nil {
		return Frame{}, fmt.Errorf("orchestrator: render frame: %w", err)
	}

	o.logger.Debug("frame generated", "path", result.Path, "size", result.Size.String())
	return Frame{
		Path:   result.Path,
		Width:  result.Size.Width,
		Height: result.Size.Height,
		Size:   result.Size,
	}, nil
}

// Schema loads a template and returns its parameter declarations, letting UI
// layers build input controls without re-parsing placeholder syntax.
func (o *Orchestrator) Schema(ctx context.Context, src template.Source) (params.Schema, error) {
	if ctx == nil {
		return params.Schema{}, errors.New("orchestrator: context is required")
	}
	doc, err := o.resolveDocument(ctx, src, nil)
	if err != nil {
		return params.Schema{}, err
	}
	return o.parser.Parse(doc.Body()), nil
}

// SchemaFromDocument parses a pre-loaded template.
func (o *Orchestrator) SchemaFromDocument(doc template.Document) params.Schema {
	return o.parser.Parse(doc.Body())
}

func (o *Orchestrator) resolveDocument(ctx context.Context, src template.Source, doc *template.Document) (template.Document, error) {
	if doc != nil {
		return *doc, nil
	}
	if src == nil {
		return template.Document{}, errors.New("orchestrator: source or document is required")
	}
	loaded, err := o.loader.Load(ctx, src)
	if err != nil {
		return template.Document{}, fmt.Errorf("orchestrator: load template: %w", err)
	}
	return loaded, nil
}

// buildContext assembles the variable context for one render: the reserved
// keys first, then extension values, which may intentionally shadow them.
func (o *Orchestrator) buildContext(req Request) params.Context {
	vars := params.Context{
		"title": req.Title,
		"text":  req.Text,
		"image": o.normalizer.Normalize(req.Image),
	}
	for key, value := range req.Ext {
		vars[key] = value
	}
	return vars
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = template.NewLoader(template.WithFallbackSize(o.fallbackSize))
	}
	if o.parser == nil {
		o.parser = params.NewParser(params.WithLogger(o.logger))
	}
	if o.normalizer == nil {
		o.normalizer = imageref.New(
			imageref.WithRoot(o.imageRoot),
			imageref.WithLogger(o.logger),
		)
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(chrome.New(
			chrome.WithOutputDir(o.outputDir),
			chrome.WithLogger(o.logger),
		))
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
