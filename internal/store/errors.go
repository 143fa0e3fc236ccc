package store

import "fmt"

// NotFoundError reports a single-result lookup that matched nothing.
type NotFoundError struct {
	Kind  Kind
	Field string
	Value any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found matching %s=%v", e.Kind, e.Field, e.Value)
}

// AmbiguousResultError reports a single-result lookup that matched more than
// one stored entity.
type AmbiguousResultError struct {
	Kind  Kind
	Field string
	Value any
	Count int
}

func (e *AmbiguousResultError) Error() string {
	return fmt.Sprintf("%d %s entities match %s=%v, expected exactly one", e.Count, e.Kind, e.Field, e.Value)
}

// DuplicateEntityError reports a save of a strictly-unique kind whose identity
// key collides with an already-stored entity.
type DuplicateEntityError struct {
	Kind      Kind
	KeyFields []string
	Key       Key
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("%s: duplicates not allowed; another %s already has fields %v with values %v",
		e.Kind, e.Kind, e.KeyFields, []any(e.Key))
}
