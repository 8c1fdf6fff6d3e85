// Package controls renders an HTML control panel for a template's custom
// parameters, giving operator UIs a ready-made input form without teaching
// them the placeholder DSL.
package controls

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-framegen/pkg/params"
)

const pageTemplate = "templates/controls.html.tpl"

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// Renderer turns parameter declarations into a standalone HTML controls page.
// Author-supplied text (labels, defaults) is sanitized before it reaches the
// page; unlike frame substitution, this output is meant to be served to
// browsers directly.
type Renderer struct {
	set    *pongo2.TemplateSet
	policy *bluemonday.Policy
}

// New constructs the controls renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	set := pongo2.NewSet("framegen-controls", pongo2.NewFSLoader(cfg.templateFS))
	if _, err := set.FromFile(pageTemplate); err != nil {
		return nil, fmt.Errorf("controls renderer: load template: %w", err)
	}

	return &Renderer{
		set:    set,
		policy: bluemonday.StrictPolicy(),
	}, nil
}

func (r *Renderer) Name() string {
	return "controls"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the controls page for one template's schema. templateName
// is display-only.
func (r *Renderer) Render(ctx context.Context, templateName string, schema params.Schema) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpl, err := r.set.FromFile(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("controls renderer: load template: %w", err)
	}

	out, err := tmpl.ExecuteBytes(pongo2.Context{
		"template_name": r.policy.Sanitize(templateName),
		"fields":        r.fields(schema),
	})
	if err != nil {
		return nil, fmt.Errorf("controls renderer: execute template: %w", err)
	}
	return out, nil
}

func (r *Renderer) fields(schema params.Schema) []map[string]any {
	declarations := schema.Declarations()
	out := make([]map[string]any, 0, len(declarations))
	for _, decl := range declarations {
		field := map[string]any{
			"name":  decl.Name,
			"type":  string(decl.Type),
			"label": r.policy.Sanitize(decl.Label),
		}
		switch decl.Type {
		case params.TypeBool:
			checked, _ := decl.Default.(bool)
			field["checked"] = checked
		default:
			field["value"] = r.policy.Sanitize(params.Stringify(decl.Default))
		}
		out = append(out, field)
	}
	return out
}
