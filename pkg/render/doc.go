// Package render defines the contract between the frame pipeline and the
// rendering surfaces that rasterize substituted markup, plus the registry
// used to select one by name.
package render
