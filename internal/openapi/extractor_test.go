package openapi

import (
	"context"
	"testing"

	"github.com/goliatone/go-formschema/pkg/resolver"
	pkgschema "github.com/goliatone/go-formschema/pkg/schema"
)

const sampleSpec = `{
  "openapi": "3.0.3",
  "info": {"title": "Sample", "version": "1.0.0"},
  "paths": {
    "/articles": {
      "post": {
        "operationId": "createArticle",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "title": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      }
    }
  },
  "components": {
    "schemas": {
      "Tag": {
        "title": "Tag",
        "anyOf": [
          {"type": "string", "enum": [1, 2]},
          {"type": "null"}
        ]
      },
      "Article": {
        "type": "object",
        "properties": {
          "name": {"type": "string", "default": "untitled"}
        }
      }
    }
  }
}`

func mustDocument(t *testing.T, raw string) pkgschema.Document {
	t.Helper()
	return pkgschema.MustNewDocument(pkgschema.SourceFromFS("spec.json"), []byte(raw))
}

func TestExtractor_ComponentSchemas(t *testing.T) {
	extractor := New(Options{})
	nodes, err := extractor.Schemas(context.Background(), mustDocument(t, sampleSpec))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	article, ok := nodes["Article"]
	if !ok {
		t.Fatalf("missing Article component: %#v", nodes)
	}
	if !article.IsObject() {
		t.Fatalf("expected object schema, got %q", article.Type)
	}
	name, ok := article.Properties["name"]
	if !ok {
		t.Fatalf("missing name property: %#v", article.Properties)
	}
	if !name.HasDefault || name.Default != "untitled" {
		t.Fatalf("expected default to survive conversion, got %#v", name.Default)
	}
}

func TestExtractor_RequestBodySchemas(t *testing.T) {
	extractor := New(Options{})
	nodes, err := extractor.Schemas(context.Background(), mustDocument(t, sampleSpec))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	body, ok := nodes["createArticle"]
	if !ok {
		t.Fatalf("missing request body schema: %#v", nodes)
	}
	if !body.IsObject() {
		t.Fatalf("expected object request body, got %q", body.Type)
	}
}

func TestExtractor_UnionSurvivesConversion(t *testing.T) {
	extractor := New(Options{})
	nodes, err := extractor.Schemas(context.Background(), mustDocument(t, sampleSpec))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	tag, ok := nodes["Tag"]
	if !ok {
		t.Fatalf("missing Tag component: %#v", nodes)
	}
	if !tag.IsUnion() {
		t.Fatalf("expected anyOf to survive conversion, got %#v", tag)
	}

	result, err := resolver.Extract(tag)
	if err != nil {
		t.Fatalf("resolve extracted union: %v", err)
	}
	if !result.Nullable {
		t.Fatal("expected nullable union")
	}
	if result.Schema.Type != pkgschema.TypeString {
		t.Fatalf("expected string alternative, got %q", result.Schema.Type)
	}
	if result.Schema.Title != "Tag" {
		t.Fatalf("expected inherited title, got %q", result.Schema.Title)
	}
	if len(result.Schema.Enum) != 2 || result.Schema.Enum[0] != "1" {
		t.Fatalf("expected coerced enum, got %#v", result.Schema.Enum)
	}
}

func TestExtractor_EmptyDocument(t *testing.T) {
	extractor := New(Options{})
	empty := `{"openapi": "3.0.3", "info": {"title": "Empty", "version": "1.0.0"}, "paths": {}}`
	if _, err := extractor.Schemas(context.Background(), mustDocument(t, empty)); err == nil {
		t.Fatal("expected error for document without schemas")
	}

	lenient := New(Options{AllowPartialDocuments: true})
	nodes, err := lenient.Schemas(context.Background(), mustDocument(t, empty))
	if err != nil {
		t.Fatalf("expected partial documents to be accepted, got %v", err)
	}
	if len(nodes) != 0 {
		t.Fatalf("expected no schemas, got %#v", nodes)
	}
}
