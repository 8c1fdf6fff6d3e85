package render

import (
	"context"

	"github.com/goliatone/go-framegen/pkg/template"
)

// Frame is the fully substituted markup a renderer turns into a raster image.
type Frame struct {
	// HTML is the final markup, placeholders already resolved.
	HTML string

	// Size is the target raster size in pixels. Renderers must produce a file
	// of exactly these dimensions.
	Size template.Size

	// OutputPath optionally pins the destination file. When empty the
	// renderer generates a unique path of its own.
	OutputPath string
}

// Result reports where a rendered frame landed.
type Result struct {
	Path string
	Size template.Size
}

// Renderer rasterizes a Frame into an image file. Implementations own their
// rendering surface; a renderer instance is a serially reusable resource and
// callers must bound concurrent Render calls themselves.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, frame Frame) (Result, error)
}
