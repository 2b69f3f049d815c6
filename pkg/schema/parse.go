package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseOptions tunes the validating parse at the document boundary.
type ParseOptions struct {
	// SanitizeMetadata strips markup from titles and descriptions before
	// they reach a UI.
	SanitizeMetadata bool
}

// ParseDocument decodes a schema document and converts it into the
// tagged node representation.
func ParseDocument(doc Document, opts ParseOptions) (Node, error) {
	payload, err := DecodePayload(doc.Raw())
	if err != nil {
		return Node{}, err
	}
	return FromMap(payload, opts)
}

// DecodePayload interprets raw bytes as a JSON object, falling back to
// YAML for documents authored that way.
func DecodePayload(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, errors.New("schema: raw document is empty")
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err == nil {
		return payload, nil
	}
	if err := yaml.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("schema: decode document: %w", err)
	}
	return payload, nil
}

// FromMap converts a duck-typed schema payload into a Node, validating
// structure as it goes.
func FromMap(payload map[string]any, opts ParseOptions) (Node, error) {
	return nodeFromPayload(payload, "#", opts)
}

func nodeFromPayload(payload map[string]any, path string, opts ParseOptions) (Node, error) {
	if payload == nil {
		return Node{}, fmt.Errorf("schema: schema is nil at %s", path)
	}

	node := Node{
		Type:        strings.TrimSpace(readString(payload, "type")),
		Title:       strings.TrimSpace(readString(payload, "title")),
		Description: strings.TrimSpace(readString(payload, "description")),
		Extensions:  extractExtensions(payload),
	}

	if node.Type != "" && !isAllowedType(node.Type) {
		return Node{}, fmt.Errorf("schema: unsupported type %q at %s", node.Type, path)
	}

	if value, ok := payload["default"]; ok {
		node.Default = value
		node.HasDefault = true
	}

	if enumRaw, ok := payload["enum"]; ok {
		list, ok := enumRaw.([]any)
		if !ok {
			return Node{}, fmt.Errorf("schema: enum must be an array at %s", path)
		}
		node.Enum = append([]any(nil), list...)
	}

	if choicesRaw, ok := payload["choices"]; ok {
		choices, err := NormalizeChoices(choicesRaw)
		if err != nil {
			return Node{}, fmt.Errorf("%w at %s", err, path)
		}
		node.Choices = choices
	}

	if propertiesRaw, ok := payload["properties"]; ok {
		props, ok := propertiesRaw.(map[string]any)
		if !ok {
			return Node{}, fmt.Errorf("schema: properties must be an object at %s", path)
		}
		node.Properties = make(map[string]Node, len(props))
		for _, name := range sortedKeys(props) {
			child, ok := props[name].(map[string]any)
			if !ok {
				return Node{}, fmt.Errorf("schema: property %q must be an object at %s", name, path)
			}
			converted, err := nodeFromPayload(child, joinPath(path, "properties", name), opts)
			if err != nil {
				return Node{}, err
			}
			node.Properties[name] = converted
		}
	}

	if itemsRaw, ok := payload["items"]; ok {
		child, ok := itemsRaw.(map[string]any)
		if !ok {
			return Node{}, fmt.Errorf("schema: items must be an object at %s", path)
		}
		converted, err := nodeFromPayload(child, joinPath(path, "items"), opts)
		if err != nil {
			return Node{}, err
		}
		node.Items = &converted
	}

	if anyOfRaw, ok := payload["anyOf"]; ok {
		list, ok := anyOfRaw.([]any)
		if !ok {
			return Node{}, fmt.Errorf("schema: anyOf must be an array at %s", path)
		}
		// Presence matters even when the list is empty: the resolver
		// rejects an empty union, a plain node it would pass through.
		node.AnyOf = make([]Node, 0, len(list))
		for idx, entry := range list {
			child, ok := entry.(map[string]any)
			if !ok {
				return Node{}, fmt.Errorf("schema: anyOf[%d] must be an object at %s", idx, path)
			}
			converted, err := nodeFromPayload(child, joinPath(path, "anyOf", fmt.Sprintf("%d", idx)), opts)
			if err != nil {
				return Node{}, err
			}
			node.AnyOf = append(node.AnyOf, converted)
		}
	}

	if opts.SanitizeMetadata {
		node.Title = sanitizeMetadata(node.Title)
		node.Description = sanitizeMetadata(node.Description)
	}

	return node, nil
}

func readString(payload map[string]any, key string) string {
	if value, ok := payload[key].(string); ok {
		return value
	}
	return ""
}

func isAllowedType(value string) bool {
	switch value {
	case TypeString, TypeInteger, TypeNumber, TypeBoolean, TypeArray, TypeObject, TypeNull:
		return true
	default:
		return false
	}
}

func isVendorExtension(key string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(key)), "x-")
}

func extractExtensions(payload map[string]any) map[string]any {
	var extensions map[string]any
	for _, key := range sortedKeys(payload) {
		if !isVendorExtension(key) {
			continue
		}
		if extensions == nil {
			extensions = make(map[string]any)
		}
		extensions[key] = payload[key]
	}
	return extensions
}

func sortedKeys(payload map[string]any) []string {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func joinPath(path string, segments ...string) string {
	if path == "" {
		path = "#"
	}
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		path = path + "/" + segment
	}
	return path
}
