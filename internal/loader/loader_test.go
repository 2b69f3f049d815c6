package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	pkgschema "github.com/goliatone/go-formschema/pkg/schema"
)

const sampleDoc = `{"type":"string"}`

func TestLoader_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ldr := New(pkgschema.NewLoaderOptions())
	doc, err := ldr.Load(context.Background(), pkgschema.SourceFromFile(path))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(doc.Raw()) != sampleDoc {
		t.Fatalf("unexpected payload: %s", doc.Raw())
	}
}

func TestLoader_LoadFromFS(t *testing.T) {
	files := fstest.MapFS{
		"schemas/tag.json": &fstest.MapFile{Data: []byte(sampleDoc)},
	}

	ldr := New(pkgschema.NewLoaderOptions(pkgschema.WithFileSystem(files)))
	doc, err := ldr.Load(context.Background(), pkgschema.SourceFromFS("schemas/tag.json"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.Location() != "schemas/tag.json" {
		t.Fatalf("unexpected location %q", doc.Location())
	}
}

func TestLoader_LoadFromHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleDoc))
	}))
	defer server.Close()

	ldr := New(pkgschema.NewLoaderOptions(pkgschema.WithHTTPClient(server.Client())))
	doc, err := ldr.Load(context.Background(), pkgschema.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(doc.Raw()) != sampleDoc {
		t.Fatalf("unexpected payload: %s", doc.Raw())
	}
}

func TestLoader_HTTPDisabledByDefault(t *testing.T) {
	ldr := New(pkgschema.NewLoaderOptions())
	if _, err := ldr.Load(context.Background(), pkgschema.SourceFromURL("http://example.com/schema.json")); err == nil {
		t.Fatal("expected error when http support is disabled")
	}
}

func TestLoader_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer server.Close()

	ldr := New(pkgschema.NewLoaderOptions(pkgschema.WithHTTPClient(server.Client())))
	if _, err := ldr.Load(context.Background(), pkgschema.SourceFromURL(server.URL)); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestLoader_NilSource(t *testing.T) {
	ldr := New(pkgschema.NewLoaderOptions())
	if _, err := ldr.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ldr := New(pkgschema.NewLoaderOptions())
	if _, err := ldr.Load(ctx, pkgschema.SourceFromFile("ignored.json")); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
