package resolver

import "github.com/goliatone/go-formschema/pkg/schema"

// ExtractedSchema is the resolver's only output: a concrete schema plus
// whether the original union listed a null alternative. Schema is never
// itself a union.
type ExtractedSchema struct {
	Schema   schema.Node `json:"schema"`
	Nullable bool        `json:"isNullable"`
}

// Extract normalizes a single schema node. Union nodes collapse to one
// representative alternative with merged metadata; anything else passes
// through unchanged with Nullable false. This is the sole entry point
// consumed by rendering layers.
func Extract(node schema.Node) (ExtractedSchema, error) {
	if node.IsUnion() {
		return resolveUnion(node)
	}
	return ExtractedSchema{Schema: node}, nil
}
