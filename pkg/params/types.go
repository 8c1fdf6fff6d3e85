package params

import internalparams "github.com/goliatone/go-framegen/internal/params"

// Type re-exports the internal placeholder type enumeration.
type Type = internalparams.Type

const (
	TypeText   = internalparams.TypeText
	TypeNumber = internalparams.TypeNumber
	TypeColor  = internalparams.TypeColor
	TypeBool   = internalparams.TypeBool
)

type Declaration = internalparams.Declaration
type Schema = internalparams.Schema
type Context = internalparams.Context

// Parser re-exports the internal parser so callers can run the placeholder
// scan without importing internal packages.
type Parser = internalparams.Parser
type ParserOption = internalparams.ParserOption

// NewParser constructs a placeholder parser.
func NewParser(options ...ParserOption) *Parser {
	return internalparams.NewParser(options...)
}

// WithLogger routes parse warnings to the supplied logger.
var WithLogger = internalparams.WithLogger

// Substitute rewrites every placeholder occurrence in body using ctx.
func Substitute(body string, ctx Context) string {
	return internalparams.Substitute(body, ctx)
}

// Stringify renders a context value the way substitution would.
func Stringify(value any) string {
	return internalparams.Stringify(value)
}

// Reserved reports whether name is a built-in context key excluded from
// template schemas.
func Reserved(name string) bool {
	return internalparams.Reserved(name)
}
