package schema

// Recognized values for the "type" keyword.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
	TypeNull    = "null"
)

// Node is the canonical representation of a single schema fragment.
// Values are parsed once at the document boundary and treated as
// read-only afterwards; Clone exists for the rare spot that needs an
// owned copy.
//
// AnyOf keeps presence information: a union whose anyOf list was present
// but empty carries a non-nil empty slice, so IsUnion still reports true
// and the resolver can reject it instead of silently passing it through.
type Node struct {
	Type        string          `json:"type,omitempty"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Default     any             `json:"default,omitempty"`
	Enum        []any           `json:"enum,omitempty"`
	Choices     *Choices        `json:"choices,omitempty"`
	Properties  map[string]Node `json:"properties,omitempty"`
	Items       *Node           `json:"items,omitempty"`
	AnyOf       []Node          `json:"anyOf,omitempty"`

	// HasDefault distinguishes an explicit default (including null or
	// another falsy value) from no default at all.
	HasDefault bool `json:"-"`

	// Extensions collects x- vendor keys present on the source node.
	Extensions map[string]any `json:"-"`
}

// HasType reports whether the node declares a type at all, separating
// typed alternatives from bare anyOf wrappers.
func (n Node) HasType() bool {
	return n.Type != ""
}

// IsPrimitive reports whether the node describes a scalar value.
func (n Node) IsPrimitive() bool {
	switch n.Type {
	case TypeString, TypeInteger, TypeNumber, TypeBoolean:
		return true
	default:
		return false
	}
}

// IsArray reports whether the node describes an array value.
func (n Node) IsArray() bool {
	return n.Type == TypeArray
}

// IsObject reports whether the node describes an object value.
func (n Node) IsObject() bool {
	return n.Type == TypeObject
}

// IsNull reports whether the node is the nullability marker inside a
// union. No other null convention is recognized.
func (n Node) IsNull() bool {
	return n.Type == TypeNull
}

// IsUnion reports whether the node carried an anyOf list, even an empty
// one.
func (n Node) IsUnion() bool {
	return n.AnyOf != nil
}

// Clone creates a deep copy of the node tree to avoid accidental
// mutation of parsed documents.
func (n Node) Clone() Node {
	cloned := n
	if len(n.Enum) > 0 {
		cloned.Enum = append([]any(nil), n.Enum...)
	}
	cloned.Choices = n.Choices.Clone()
	if len(n.Properties) > 0 {
		cloned.Properties = make(map[string]Node, len(n.Properties))
		for name, prop := range n.Properties {
			cloned.Properties[name] = prop.Clone()
		}
	}
	if n.Items != nil {
		items := n.Items.Clone()
		cloned.Items = &items
	}
	if n.AnyOf != nil {
		cloned.AnyOf = make([]Node, 0, len(n.AnyOf))
		for _, alt := range n.AnyOf {
			cloned.AnyOf = append(cloned.AnyOf, alt.Clone())
		}
	}
	if len(n.Extensions) > 0 {
		cloned.Extensions = make(map[string]any, len(n.Extensions))
		for key, value := range n.Extensions {
			cloned.Extensions[key] = value
		}
	}
	return cloned
}
