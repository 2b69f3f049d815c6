package resolver

import "errors"

var (
	// ErrEmptyUnion marks an anyOf list whose only members are null
	// markers, or which is empty outright. The document is malformed;
	// callers decide whether to skip the field or abort.
	ErrEmptyUnion = errors.New("resolver: union has no non-null alternatives")

	// ErrInvalidShape marks a node reached during merge that declares
	// neither a type nor an anyOf.
	ErrInvalidShape = errors.New("resolver: schema has neither type nor anyOf")
)
