package params

import (
	"log/slog"
	"regexp"
)

// placeholderPattern matches the wire syntax {{name}}, {{name=default}},
// {{name:type}}, and {{name:type=default}}. The grammar is load-bearing for
// existing templates and must not change: names are identifiers, the type
// token is lowercase letters, and the default is everything up to the first
// closing brace.
var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z_][a-zA-Z0-9_]*)(?::([a-z]+))?(?:=([^}]+))?\}\}`)

// Parser extracts typed parameter declarations from raw template text.
type Parser struct {
	logger *slog.Logger
}

// ParserOption customises a Parser.
type ParserOption func(*Parser)

// WithLogger routes parse warnings to the supplied logger.
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser constructs a Parser applying any provided options.
func NewParser(options ...ParserOption) *Parser {
	p := &Parser{logger: slog.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Parse scans the template body for every placeholder occurrence and returns
// the schema of declarable parameters, ordered by first occurrence. Reserved
// built-in names are skipped, repeated names keep their first declaration,
// and an unrecognised type token degrades to text with a warning. Parse never
// fails: templates are semi-trusted authored content and anomalies are
// recovered with best-effort defaults.
func (p *Parser) Parse(body string) Schema {
	schema := NewSchema()

	for _, match := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		name := match[1]
		typeToken := match[2]
		rawDefault := match[3]

		if Reserved(name) {
			continue
		}
		if schema.Has(name) {
			continue
		}

		declared := TypeText
		if typeToken != "" {
			declared = Type(typeToken)
			if !declared.Valid() {
				p.logger.Warn("unknown parameter type, defaulting to text",
					"param", name, "type", typeToken)
				declared = TypeText
			}
		}

		schema.Add(Declaration{
			Name:       name,
			Type:       declared,
			Default:    p.coerceDefault(name, declared, rawDefault),
			RawDefault: rawDefault,
			Label:      name,
		})
	}

	return schema
}
