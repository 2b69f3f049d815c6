package schema

import (
	"fmt"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"
)

// Choice pairs a display label with the value submitted for it.
type Choice struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Choices carries the enumerated options attached to a primitive field.
// Exactly one representation is populated: a flat ordered list of
// label/value pairs, or named groups of plain values. Renderers can
// switch on Grouped instead of probing the raw payload.
type Choices struct {
	Flat   []Choice
	Groups map[string][]string
}

// Grouped reports whether the options are organized into named groups.
func (c *Choices) Grouped() bool {
	return c != nil && c.Groups != nil
}

// GroupNames returns the group names in sorted order for stable display.
func (c *Choices) GroupNames() []string {
	if c == nil || len(c.Groups) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.Groups))
	for name := range c.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone creates a deep copy. A nil receiver yields nil.
func (c *Choices) Clone() *Choices {
	if c == nil {
		return nil
	}
	cloned := &Choices{}
	if c.Flat != nil {
		cloned.Flat = append([]Choice(nil), c.Flat...)
	}
	if c.Groups != nil {
		cloned.Groups = make(map[string][]string, len(c.Groups))
		for name, values := range c.Groups {
			cloned.Groups[name] = append([]string(nil), values...)
		}
	}
	return cloned
}

// MarshalJSON emits the same wire shape the source document used: an
// array of label/value pairs, or an object keyed by group name.
func (c Choices) MarshalJSON() ([]byte, error) {
	if c.Groups != nil {
		return json.Marshal(c.Groups)
	}
	return json.Marshal(c.Flat)
}

// NormalizeChoices converts a raw choices payload into the canonical
// tagged form, coercing labels and values to strings. Accepted shapes
// are a list of {label, value} pairs (scalar entries stand in for both
// label and value) and a mapping from group name to a list of values.
func NormalizeChoices(raw any) (*Choices, error) {
	switch typed := raw.(type) {
	case nil:
		return nil, nil
	case *Choices:
		return typed.Clone(), nil
	case []any:
		flat := make([]Choice, 0, len(typed))
		for idx, entry := range typed {
			pair, ok := entry.(map[string]any)
			if !ok {
				value := Stringify(entry)
				flat = append(flat, Choice{Label: value, Value: value})
				continue
			}
			label, hasLabel := pair["label"]
			value, hasValue := pair["value"]
			switch {
			case !hasLabel && !hasValue:
				return nil, fmt.Errorf("schema: choices[%d] has neither label nor value", idx)
			case !hasLabel:
				label = value
			case !hasValue:
				value = label
			}
			flat = append(flat, Choice{Label: Stringify(label), Value: Stringify(value)})
		}
		return &Choices{Flat: flat}, nil
	case map[string]any:
		groups := make(map[string][]string, len(typed))
		for name, entries := range typed {
			list, ok := entries.([]any)
			if !ok {
				return nil, fmt.Errorf("schema: choices group %q must be a list", name)
			}
			values := make([]string, 0, len(list))
			for _, entry := range list {
				values = append(values, Stringify(entry))
			}
			groups[name] = values
		}
		return &Choices{Groups: groups}, nil
	case map[string][]string:
		groups := make(map[string][]string, len(typed))
		for name, values := range typed {
			groups[name] = append([]string(nil), values...)
		}
		return &Choices{Groups: groups}, nil
	default:
		return nil, fmt.Errorf("schema: unsupported choices shape %T", raw)
	}
}

// Stringify coerces a scalar payload value to its display string.
// Integral floats drop the decimal point so JSON numbers round-trip the
// way authors wrote them.
func Stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
