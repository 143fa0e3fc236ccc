package store

import (
	"fmt"
	"strings"
)

// Kind identifies an entity type inside the store.
type Kind string

// Descriptor is the static description of an entity type. Every entity type
// declares exactly one Descriptor; all type-level policy (identity fields,
// strict uniqueness, template name) lives here rather than being derived at
// runtime.
type Descriptor struct {
	// Kind is the store key for the type's collection.
	Kind Kind

	// KeyFields names, in order, the fields that form the identity key. Used
	// for sort order and for duplicate error messages.
	KeyFields []string

	// Template is the renderer template name for the type, empty if the type
	// is never rendered on its own.
	Template string

	// Strict makes a second entity with an equal identity key a hard error.
	Strict bool
}

// Entity is implemented by every record the store can hold.
type Entity interface {
	// Describe returns the type's static descriptor.
	Describe() Descriptor

	// Key returns the identity-key tuple. Elements are ints or strings and
	// must be key-comparable across all entities of the same kind.
	Key() Key

	// Fields returns the entity's field values keyed by field name. The map
	// is used for attribute filtering and as template data; values may be
	// scalars, Mappings, or references to other entities.
	Fields() map[string]any

	// String returns the canonical full-value form of the entity. Two
	// entities are equal for set-membership purposes iff their canonical
	// forms match.
	String() string
}

// Key is an entity's ordered identity-key tuple.
type Key []any

// Compare imposes a total order on keys of the same kind: elementwise, ints
// numerically and strings lexicographically, with a shorter key ordering
// before a longer one that it prefixes.
func (k Key) Compare(other Key) int {
	for i := 0; i < len(k) && i < len(other); i++ {
		if c := compareElem(k[i], other[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(k) < len(other):
		return -1
	case len(k) > len(other):
		return 1
	}
	return 0
}

func compareElem(a, b any) int {
	if ai, ok := a.(int); ok {
		if bi, ok := b.(int); ok {
			switch {
			case ai < bi:
				return -1
			case ai > bi:
				return 1
			}
			return 0
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.Compare(as, bs)
		}
	}
	// Mixed element types never happen within one kind, but keep the order
	// total anyway.
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
