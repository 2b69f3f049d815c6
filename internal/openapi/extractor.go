// Package openapi extracts named schema nodes from OpenAPI documents
// using kin-openapi, keeping openapi3 types out of the public API.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgschema "github.com/goliatone/go-formschema/pkg/schema"
)

// choicesExtensionKey carries selection options on OpenAPI schemas,
// where a bare "choices" keyword would be rejected.
const choicesExtensionKey = "x-choices"

// Options configures document loading and validation.
type Options struct {
	// ResolveReferences runs kin-openapi validation so $ref targets are
	// resolved before extraction.
	ResolveReferences bool

	// AllowPartialDocuments accepts documents without any extractable
	// schemas instead of failing.
	AllowPartialDocuments bool
}

// Extractor converts OpenAPI documents into schema nodes keyed by
// component name or operation id.
type Extractor struct {
	options Options
}

// New constructs an Extractor with the given options.
func New(options Options) *Extractor {
	return &Extractor{options: options}
}

// Schemas loads the document and returns every component schema plus
// each operation's request body schema, keyed by component name and
// operation id respectively.
func (e *Extractor) Schemas(ctx context.Context, doc pkgschema.Document) (map[string]pkgschema.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: e.options.ResolveReferences,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if e.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	nodes := make(map[string]pkgschema.Node)
	if spec.Components != nil {
		for name, ref := range spec.Components.Schemas {
			nodes[name] = convertSchema(ref)
		}
	}
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			for method, op := range item.Operations() {
				if op == nil {
					continue
				}
				node, ok := requestBodyNode(op.RequestBody)
				if !ok {
					continue
				}
				id := op.OperationID
				if id == "" {
					id = strings.ToLower(method) + ":" + path
				}
				nodes[id] = node
			}
		}
	}

	if len(nodes) == 0 && !e.options.AllowPartialDocuments {
		return nil, errors.New("openapi: no schemas extracted")
	}
	return nodes, nil
}

func requestBodyNode(ref *openapi3.RequestBodyRef) (pkgschema.Node, bool) {
	if ref == nil || ref.Value == nil {
		return pkgschema.Node{}, false
	}
	content := ref.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return convertSchema(mt.Schema), true
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return convertSchema(mt.Schema), true
		}
	}
	return pkgschema.Node{}, false
}

func convertSchema(ref *openapi3.SchemaRef) pkgschema.Node {
	if ref == nil || ref.Value == nil {
		return pkgschema.Node{}
	}
	src := ref.Value

	node := pkgschema.Node{
		Type:        firstType(src.Type),
		Title:       src.Title,
		Description: src.Description,
	}
	if src.Default != nil {
		node.Default = src.Default
		node.HasDefault = true
	}
	if len(src.Enum) > 0 {
		node.Enum = append([]any(nil), src.Enum...)
	}
	if len(src.Properties) > 0 {
		node.Properties = make(map[string]pkgschema.Node, len(src.Properties))
		for name, property := range src.Properties {
			node.Properties[name] = convertSchema(property)
		}
	}
	if src.Items != nil {
		items := convertSchema(src.Items)
		node.Items = &items
	}
	if len(src.AnyOf) > 0 {
		node.AnyOf = make([]pkgschema.Node, 0, len(src.AnyOf))
		for _, alt := range src.AnyOf {
			node.AnyOf = append(node.AnyOf, convertSchema(alt))
		}
	}
	if raw, ok := src.Extensions[choicesExtensionKey]; ok {
		// Malformed choice extensions are dropped rather than failing
		// the whole extraction.
		if choices, err := pkgschema.NormalizeChoices(raw); err == nil {
			node.Choices = choices
		}
	}
	node.Extensions = cloneExtensions(src.Extensions)
	return node
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}

func cloneExtensions(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	cloned := make(map[string]any, len(raw))
	for key, value := range raw {
		cloned[key] = value
	}
	return cloned
}
