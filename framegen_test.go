package framegen

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-framegen/pkg/orchestrator"
	"github.com/goliatone/go-framegen/pkg/params"
	"github.com/goliatone/go-framegen/pkg/render"
	"github.com/goliatone/go-framegen/pkg/template"
)

type memoryRenderer struct {
	html string
}

func (m *memoryRenderer) Name() string        { return "memory" }
func (m *memoryRenderer) ContentType() string { return "image/png" }

func (m *memoryRenderer) Render(_ context.Context, frame render.Frame) (render.Result, error) {
	m.html = frame.HTML
	return render.Result{Path: "out.png", Size: frame.Size}, nil
}

func facadeOptions(fsys fstest.MapFS, renderer *memoryRenderer) []orchestrator.Option {
	registry := render.NewRegistry()
	registry.MustRegister(renderer)
	return []orchestrator.Option{
		orchestrator.WithLoader(template.NewLoader(template.WithFS(fsys))),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("memory"),
		orchestrator.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
}

func TestRenderFrame(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"1080x1920/default.html": &fstest.MapFile{
			Data: []byte(`<h1>{{title}}</h1><p>{{text}}</p>`),
		},
	}
	renderer := &memoryRenderer{}

	frame, err := RenderFrame(context.Background(), Request{
		Source: template.SourceFromFS("1080x1920/default.html"),
		Title:  "Hello",
		Text:   "World",
	}, facadeOptions(fsys, renderer)...)
	if err != nil {
		t.Fatalf("render frame: %v", err)
	}
	if frame.Width != 1080 || frame.Height != 1920 {
		t.Fatalf("unexpected frame size %dx%d", frame.Width, frame.Height)
	}
	if !strings.Contains(renderer.html, "Hello") || !strings.Contains(renderer.html, "World") {
		t.Fatalf("unexpected markup:\n%s", renderer.html)
	}
}

func TestTemplateSchema(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"frame.html": &fstest.MapFile{
			Data: []byte(`{{mood:text=calm}}{{title}}`),
		},
	}

	schema, err := TemplateSchema(context.Background(),
		template.SourceFromFS("frame.html"),
		facadeOptions(fsys, &memoryRenderer{})...)
	if err != nil {
		t.Fatalf("template schema: %v", err)
	}
	if schema.Len() != 1 {
		t.Fatalf("expected one declaration, got %v", schema.Names())
	}
	decl, _ := schema.Get("mood")
	if decl.Type != params.TypeText || decl.Default != "calm" {
		t.Fatalf("unexpected declaration: %+v", decl)
	}
}
