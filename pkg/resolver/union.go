package resolver

import "github.com/goliatone/go-formschema/pkg/schema"

// resolveUnion collapses an anyOf node. Null markers only record
// nullability, one alternative is chosen by precedence, its enum values
// are coerced to strings, and the union's shared metadata folds into it.
func resolveUnion(union schema.Node) (ExtractedSchema, error) {
	alternatives := make([]schema.Node, 0, len(union.AnyOf))
	nullable := false
	for _, alt := range union.AnyOf {
		if alt.IsNull() {
			nullable = true
			continue
		}
		alternatives = append(alternatives, alt)
	}
	if len(alternatives) == 0 {
		return ExtractedSchema{}, ErrEmptyUnion
	}

	selected := selectRepresentative(alternatives)
	selected.Enum = normalizeEnum(selected.Enum)

	merged, err := combine(union, selected)
	if err != nil {
		return ExtractedSchema{}, err
	}
	return ExtractedSchema{Schema: merged, Nullable: nullable}, nil
}

// selectRepresentative picks the alternative that stands in for the
// whole union. Concrete leaf shapes win over structural ones: the common
// producer patterns are "primitive or null" and "primitive or
// richer-but-rarer structure". Selection order is stable, so resolution
// stays deterministic.
func selectRepresentative(alternatives []schema.Node) schema.Node {
	for _, alt := range alternatives {
		if alt.IsPrimitive() {
			return alt
		}
	}
	for _, alt := range alternatives {
		if alt.IsArray() {
			return alt
		}
	}
	for _, alt := range alternatives {
		if alt.IsObject() {
			return alt
		}
	}
	return alternatives[0]
}

func normalizeEnum(values []any) []any {
	if len(values) == 0 {
		return values
	}
	normalized := make([]any, len(values))
	for idx, value := range values {
		normalized[idx] = schema.Stringify(value)
	}
	return normalized
}
