// Package template exposes the public contracts for locating and loading
// frame templates. A template is plain HTML carrying placeholder syntax; its
// storage path doubles as the size convention ("1080x1920/default.html"), so
// loading resolves both the body and the target raster dimensions.
package template
