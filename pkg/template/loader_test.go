package template

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestLoaderLoadsFileSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sized := filepath.Join(dir, "1080x1920")
	if err := os.MkdirAll(sized, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(sized, "default.html")
	if err := os.WriteFile(path, []byte("<h1>{{title}}</h1>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := NewLoader().Load(context.Background(), SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Body() != "<h1>{{title}}</h1>" {
		t.Fatalf("unexpected body: %q", doc.Body())
	}
	if doc.Size() != (Size{1080, 1920}) {
		t.Fatalf("expected size from path, got %v", doc.Size())
	}
}

func TestLoaderMissingTemplateIsFatal(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), SourceFromFile(filepath.Join(t.TempDir(), "missing.html")))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoaderLoadsFSSource(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"720x1280/minimal.html": &fstest.MapFile{Data: []byte("<p>{{text}}</p>")},
	}

	doc, err := NewLoader(WithFS(fsys)).Load(context.Background(), SourceFromFS("720x1280/minimal.html"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Size() != (Size{720, 1280}) {
		t.Fatalf("expected 720x1280, got %v", doc.Size())
	}
}

func TestLoaderFSWithoutConfiguration(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), SourceFromFS("a.html"))
	if err == nil {
		t.Fatalf("expected error for unconfigured fs source")
	}
}

func TestLoaderFallbackSize(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"plain.html": &fstest.MapFile{Data: []byte("<p>hi</p>")},
	}

	doc, err := NewLoader(WithFS(fsys), WithFallbackSize(Size{800, 600})).Load(context.Background(), SourceFromFS("plain.html"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Size() != (Size{800, 600}) {
		t.Fatalf("expected fallback size, got %v", doc.Size())
	}
}

func TestResolverProbesRootsInOrder(t *testing.T) {
	t.Parallel()

	primary := t.TempDir()
	secondary := t.TempDir()
	for _, dir := range []string{primary, secondary} {
		if err := os.MkdirAll(filepath.Join(dir, "1080x1920"), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(secondary, "1080x1920", "default.html"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	src, err := NewResolver(primary, secondary).Resolve("1080x1920/default.html")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if src.Kind() != SourceKindFile {
		t.Fatalf("expected file source, got %v", src.Kind())
	}
	want := filepath.Join(secondary, "1080x1920", "default.html")
	if src.Location() != want {
		t.Fatalf("expected %q, got %q", want, src.Location())
	}

	if err := os.WriteFile(filepath.Join(primary, "1080x1920", "default.html"), []byte("y"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src, err = NewResolver(primary, secondary).Resolve("1080x1920/default.html")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if src.Location() != filepath.Join(primary, "1080x1920", "default.html") {
		t.Fatalf("expected primary root to win, got %q", src.Location())
	}
}

func TestResolverUnknownKey(t *testing.T) {
	t.Parallel()

	_, err := NewResolver(t.TempDir()).Resolve("nope.html")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
