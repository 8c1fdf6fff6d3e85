// Package uischema bridges the placeholder parameter schema to OpenAPI so
// downstream form generators can render input controls for a template's
// custom parameters.
package uischema
