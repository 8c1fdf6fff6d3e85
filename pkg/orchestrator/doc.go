// Package orchestrator coordinates the frame pipeline: template loading,
// placeholder parsing, image reference normalization, substitution, and
// rasterization through a registered renderer.
package orchestrator
