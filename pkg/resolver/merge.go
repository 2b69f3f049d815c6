package resolver

import (
	"fmt"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// combine folds the union's shared metadata into the selected
// alternative. The child always wins on collision; the union only fills
// gaps. The exact rule depends on the kind of the selected schema.
func combine(union, selected schema.Node) (schema.Node, error) {
	switch {
	case selected.IsUnion(), selected.IsArray(), selected.IsObject():
		// Nested unions get the same plain merge as structural shapes
		// and surface to the caller unresolved.
		merged := mergeShared(union, selected)
		if merged.Enum == nil && len(union.Enum) > 0 {
			merged.Enum = append([]any(nil), union.Enum...)
		}
		if merged.Choices == nil {
			merged.Choices = union.Choices.Clone()
		}
		return merged, nil
	case selected.HasType():
		// Primitive: the union's enum has no meaning once a concrete
		// scalar is chosen, so only the child's enum survives. Choices
		// still fall back to the union's.
		merged := mergeShared(union, selected)
		if merged.Choices == nil {
			merged.Choices = union.Choices.Clone()
		}
		return merged, nil
	default:
		return schema.Node{}, fmt.Errorf("%w: unrecognized alternative", ErrInvalidShape)
	}
}

// mergeShared resolves title, description and default: child value when
// present, union value as fallback. A child default that is defined but
// falsy still wins over the union's.
func mergeShared(union, child schema.Node) schema.Node {
	merged := child.Clone()
	if merged.Title == "" {
		merged.Title = union.Title
	}
	if merged.Description == "" {
		merged.Description = union.Description
	}
	if !merged.HasDefault && union.HasDefault {
		merged.Default = union.Default
		merged.HasDefault = true
	}
	merged.Extensions = mergeExtensions(union.Extensions, merged.Extensions)
	return merged
}

func mergeExtensions(parent, child map[string]any) map[string]any {
	if len(parent) == 0 {
		return child
	}
	merged := make(map[string]any, len(parent)+len(child))
	for key, value := range parent {
		merged[key] = value
	}
	for key, value := range child {
		merged[key] = value
	}
	return merged
}
