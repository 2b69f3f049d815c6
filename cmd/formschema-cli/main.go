package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	json "github.com/goccy/go-json"

	internalloader "github.com/goliatone/go-formschema/internal/loader"
	internalopenapi "github.com/goliatone/go-formschema/internal/openapi"
	"github.com/goliatone/go-formschema/pkg/resolver"
	"github.com/goliatone/go-formschema/pkg/schema"
)

func main() {
	source := flag.String("source", "", "schema document path or URL")
	name := flag.String("schema", "", "component name or operation id to resolve (openapi format)")
	format := flag.String("format", "openapi", "document format: openapi or schema")
	sanitize := flag.Bool("sanitize", false, "strip markup from titles and descriptions (schema format)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	ldr := internalloader.New(schema.NewLoaderOptions(schema.WithHTTPFallback(30 * time.Second)))
	doc, err := ldr.Load(ctx, src)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	var node schema.Node
	switch *format {
	case "schema":
		node, err = schema.ParseDocument(doc, schema.ParseOptions{SanitizeMetadata: *sanitize})
		if err != nil {
			log.Fatalf("Failed to parse schema: %v", err)
		}
	case "openapi":
		extractor := internalopenapi.New(internalopenapi.Options{AllowPartialDocuments: true})
		nodes, err := extractor.Schemas(ctx, doc)
		if err != nil {
			log.Fatalf("Failed to extract schemas: %v", err)
		}
		node, err = pickNode(nodes, *name)
		if err != nil {
			log.Fatalf("%v", err)
		}
	default:
		log.Fatalf("unknown format: %q", *format)
	}

	result, err := resolver.Extract(node)
	if err != nil {
		log.Fatalf("Failed to resolve schema: %v", err)
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, encoded, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Resolved schema written to %s\n", *output)
	} else {
		fmt.Println(string(encoded))
	}
}

// pickNode selects a schema by name, or prompts when several are
// available and none was requested.
func pickNode(nodes map[string]schema.Node, name string) (schema.Node, error) {
	if len(nodes) == 0 {
		return schema.Node{}, fmt.Errorf("document contains no schemas")
	}
	if name != "" {
		node, ok := nodes[name]
		if !ok {
			return schema.Node{}, fmt.Errorf("schema %q not found in document", name)
		}
		return node, nil
	}

	names := make([]string, 0, len(nodes))
	for key := range nodes {
		names = append(names, key)
	}
	sort.Strings(names)
	if len(names) == 1 {
		return nodes[names[0]], nil
	}

	var selected string
	prompt := &survey.Select{
		Message: "Select a schema:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return schema.Node{}, fmt.Errorf("select schema: %w", err)
	}
	return nodes[selected], nil
}

func parseSource(raw string) schema.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return schema.SourceFromURL(path)
	}
	return schema.SourceFromFile(path)
}
