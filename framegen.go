// Package framegen renders HTML templates into fixed-size frame images. A
// small placeholder DSL ({{name:type=default}}) embedded in the template
// declares typed parameters; framegen resolves them against a caller-supplied
// variable context, substitutes them into the markup, and rasterizes the
// result through a headless browser session.
package framegen

import (
	"context"

	"github.com/goliatone/go-framegen/pkg/orchestrator"
	"github.com/goliatone/go-framegen/pkg/params"
	"github.com/goliatone/go-framegen/pkg/template"
)

// Request mirrors the orchestrator request; aliased via the root package for
// convenience.
type Request = orchestrator.Request

// Frame is a produced raster image at a known size.
type Frame = orchestrator.Frame

// Schema is the ordered parameter declaration mapping parsed from a template.
type Schema = params.Schema

// Declaration is the typed schema entry for one placeholder name.
type Declaration = params.Declaration

// Size holds frame dimensions in pixels.
type Size = template.Size

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so most callers only import framegen.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderFrame loads the template, substitutes the request's context, and
// rasterizes a single frame. It is the simplest entry point for callers that
// just want an image path back; callers issuing many renders should hold a
// single orchestrator instead of constructing one per call.
func RenderFrame(ctx context.Context, req Request, options ...orchestrator.Option) (Frame, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, req)
}

// TemplateSchema parses a template's parameter declarations so a UI layer can
// build input controls without touching placeholder syntax itself.
func TemplateSchema(ctx context.Context, source template.Source, options ...orchestrator.Option) (Schema, error) {
	gen := orchestrator.New(options...)
	return gen.Schema(ctx, source)
}
