package params

// Type is the simplified enum of value kinds a placeholder can declare.
type Type string

const (
	TypeText   Type = "text"
	TypeNumber Type = "number"
	TypeColor  Type = "color"
	TypeBool   Type = "bool"
)

// Valid reports whether the type token is one of the supported kinds.
func (t Type) Valid() bool {
	switch t {
	case TypeText, TypeNumber, TypeColor, TypeBool:
		return true
	}
	return false
}

// Declaration is the parsed, typed schema entry for one distinct placeholder
// name. Default holds the coerced value (string, int, float64, or bool
// depending on Type); RawDefault preserves the literal exactly as the author
// wrote it, because substitution reuses that text verbatim.
type Declaration struct {
	Name       string `json:"name"`
	Type       Type   `json:"type"`
	Default    any    `json:"default"`
	RawDefault string `json:"-"`
	Label      string `json:"label"`
}

// Schema is the ordered collection of declarations parsed from one template.
// Order follows first textual occurrence so UI layers can lay controls out in
// the order the author introduced them.
type Schema struct {
	names        []string
	declarations map[string]Declaration
}

// NewSchema returns an empty schema ready to accept declarations.
func NewSchema() Schema {
	return Schema{declarations: make(map[string]Declaration)}
}

// Add records a declaration unless the name is already present.
func (s *Schema) Add(decl Declaration) {
	if s.declarations == nil {
		s.declarations = make(map[string]Declaration)
	}
	if _, exists := s.declarations[decl.Name]; exists {
		return
	}
	s.names = append(s.names, decl.Name)
	s.declarations[decl.Name] = decl
}

// Get returns the declaration for name, if any.
func (s Schema) Get(name string) (Declaration, bool) {
	decl, ok := s.declarations[name]
	return decl, ok
}

// Has reports whether name is declared.
func (s Schema) Has(name string) bool {
	_, ok := s.declarations[name]
	return ok
}

// Len returns the number of declared parameters.
func (s Schema) Len() int {
	return len(s.names)
}

// Names returns the parameter names in first-occurrence order.
func (s Schema) Names() []string {
	return append([]string(nil), s.names...)
}

// Declarations returns the declarations in first-occurrence order.
func (s Schema) Declarations() []Declaration {
	out := make([]Declaration, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.declarations[name])
	}
	return out
}

// Context is the runtime key-value set a caller supplies to fill placeholders
// for one render. It is assembled per call and never persisted.
type Context map[string]any

// reservedNames are built-in context keys that participate in substitution
// but are never exposed as declarable parameters.
var reservedNames = map[string]struct{}{
	"title":            {},
	"text":             {},
	"image":            {},
	"content_title":    {},
	"content_author":   {},
	"content_subtitle": {},
	"content_genre":    {},
}

// Reserved reports whether name belongs to the built-in parameter set.
func Reserved(name string) bool {
	_, ok := reservedNames[name]
	return ok
}
