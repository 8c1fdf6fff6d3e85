// Package params exposes the placeholder DSL contracts: the
// {{name:type=default}} grammar, the typed Declaration schema a template
// yields, and the substitution entry points. Implementations live under
// internal/params to keep the parsing details out of the public surface.
package params
