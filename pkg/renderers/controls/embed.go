package controls

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded controls page template for consumers that
// want to restyle or extend it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
