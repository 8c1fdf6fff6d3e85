package chrome

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-framegen/pkg/render"
	"github.com/goliatone/go-framegen/pkg/template"
)

type fakeSurface struct {
	pages  []string
	fail   error
	closed bool
}

func (f *fakeSurface) Screenshot(_ context.Context, pageURL string) ([]byte, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.pages = append(f.pages, pageURL)
	return []byte("png-bytes"), nil
}

func (f *fakeSurface) Close() error {
	f.closed = true
	return nil
}

func TestRenderWritesExplicitOutputPath(t *testing.T) {
	t.Parallel()

	surface := &fakeSurface{}
	renderer := New(WithSurface(surface))

	out := filepath.Join(t.TempDir(), "nested", "frame.png")
	result, err := renderer.Render(context.Background(), render.Frame{
		HTML:       "<h1>hi</h1>",
		Size:       template.Size{Width: 100, Height: 200},
		OutputPath: out,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result.Path != out {
		t.Fatalf("expected %q, got %q", out, result.Path)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected file contents: %q", data)
	}
	if len(surface.pages) != 1 || !strings.HasPrefix(surface.pages[0], "file://") {
		t.Fatalf("expected one file:// page navigation, got %v", surface.pages)
	}
}

func TestRenderGeneratesUniqueFilenames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	renderer := New(WithSurface(&fakeSurface{}), WithOutputDir(dir))

	frame := render.Frame{HTML: "<p>x</p>", Size: template.Size{Width: 10, Height: 10}}
	first, err := renderer.Render(context.Background(), frame)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := renderer.Render(context.Background(), frame)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if first.Path == second.Path {
		t.Fatalf("expected unique paths, both were %q", first.Path)
	}
	for _, result := range []render.Result{first, second} {
		base := filepath.Base(result.Path)
		if !strings.HasPrefix(base, "frame_") || !strings.HasSuffix(base, ".png") {
			t.Fatalf("unexpected generated name %q", base)
		}
		if filepath.Dir(result.Path) != dir {
			t.Fatalf("expected output in %q, got %q", dir, result.Path)
		}
	}
}

func TestRenderWrapsSurfaceFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("target crashed")
	renderer := New(WithSurface(&fakeSurface{fail: cause}))

	_, err := renderer.Render(context.Background(), render.Frame{
		HTML: "<p>x</p>",
		Size: template.Size{Width: 10, Height: 10},
	})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "render failed") {
		t.Fatalf("expected render failure message, got %v", err)
	}
}

func TestRenderRejectsEmptyMarkup(t *testing.T) {
	t.Parallel()

	renderer := New(WithSurface(&fakeSurface{}))
	if _, err := renderer.Render(context.Background(), render.Frame{}); err == nil {
		t.Fatalf("expected error for empty markup")
	}
}

func TestRendererIdentity(t *testing.T) {
	t.Parallel()

	renderer := New()
	if renderer.Name() != "chrome" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if renderer.ContentType() != "image/png" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestCloseIgnoresInjectedSurface(t *testing.T) {
	t.Parallel()

	surface := &fakeSurface{}
	renderer := New(WithSurface(surface))
	if err := renderer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if surface.closed {
		t.Fatalf("injected surface must stay owned by the caller")
	}
}

func TestPageFileURLRoundTrip(t *testing.T) {
	t.Parallel()

	url, cleanup, err := pageFileURL("<html><body>frame</body></html>")
	if err != nil {
		t.Fatalf("pageFileURL: %v", err)
	}
	defer cleanup()

	if !strings.HasPrefix(url, "file://") {
		t.Fatalf("expected file:// URL, got %q", url)
	}
	path := strings.TrimPrefix(url, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read scratch page: %v", err)
	}
	if !strings.Contains(string(data), "frame") {
		t.Fatalf("scratch page missing markup: %q", data)
	}

	cleanup()
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected scratch page removed, stat err %v", err)
	}
}

func TestRenderKeepsSessionSizeFixed(t *testing.T) {
	t.Parallel()

	// Session creation would launch a browser, so this exercises the size
	// pinning through the internal fields directly.
	renderer := New(WithOutputDir(t.TempDir()))
	renderer.surface = &fakeSurface{}
	renderer.sessionSize = template.Size{Width: 100, Height: 100}

	if _, err := renderer.Render(context.Background(), render.Frame{
		HTML: "<p>x</p>",
		Size: template.Size{Width: 200, Height: 200},
	}); err == nil || !strings.Contains(err.Error(), "fixed at 100x100") {
		t.Fatalf("expected fixed-size error, got %v", err)
	}

	if _, err := renderer.Render(context.Background(), render.Frame{
		HTML: "<p>x</p>",
		Size: template.Size{Width: 100, Height: 100},
	}); err != nil {
		t.Fatalf("same-size render should succeed, got %v", err)
	}
}

var _ render.Renderer = (*Renderer)(nil)
