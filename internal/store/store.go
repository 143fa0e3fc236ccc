package store

import (
	"reflect"
	"sort"
)

// Store owns the canonical collection of every entity instance created during
// one conversion run. It is not safe for concurrent use; a run performs a
// single linear pass over the input document, so no locking is needed.
type Store struct {
	records map[Kind][]Entity
}

// New returns an empty Store.
func New() *Store {
	return &Store{records: make(map[Kind][]Entity)}
}

// Save inserts the entity into its kind's ordered collection.
//
// If an entity with the same full value is already stored the call is a no-op.
// If the kind is strict and a different entity with an equal identity key is
// already stored, Save fails with a DuplicateEntityError. Otherwise the entity
// is inserted keeping the collection sorted by identity key; entities with
// equal keys keep their insertion order.
func (s *Store) Save(e Entity) error {
	d := e.Describe()
	items := s.records[d.Kind]
	canon := e.String()

	lo := sort.Search(len(items), func(i int) bool { return items[i].Key().Compare(e.Key()) >= 0 })
	hi := sort.Search(len(items), func(i int) bool { return items[i].Key().Compare(e.Key()) > 0 })

	for i := lo; i < hi; i++ {
		if items[i].String() == canon {
			return nil
		}
	}
	if d.Strict && hi > lo {
		return &DuplicateEntityError{Kind: d.Kind, KeyFields: d.KeyFields, Key: e.Key()}
	}

	items = append(items, nil)
	copy(items[hi+1:], items[hi:])
	items[hi] = e
	s.records[d.Kind] = items
	return nil
}

// All returns the full ordered collection for the kind. The result is never
// nil, so callers need no fallback branch; it is a copy and safe to retain.
func (s *Store) All(kind Kind) []Entity {
	items := s.records[kind]
	out := make([]Entity, len(items))
	copy(out, items)
	return out
}

// Filter returns the ordered sub-collection of the kind whose named field
// equals the given value. Exactly one field is supported per call.
func (s *Store) Filter(kind Kind, field string, value any) []Entity {
	out := []Entity{}
	for _, e := range s.records[kind] {
		if reflect.DeepEqual(e.Fields()[field], value) {
			out = append(out, e)
		}
	}
	return out
}

// Get is Filter restricted to exactly one result: it fails with NotFoundError
// on zero matches and AmbiguousResultError on more than one.
func (s *Store) Get(kind Kind, field string, value any) (Entity, error) {
	matches := s.Filter(kind, field, value)
	switch len(matches) {
	case 0:
		return nil, &NotFoundError{Kind: kind, Field: field, Value: value}
	case 1:
		return matches[0], nil
	default:
		return nil, &AmbiguousResultError{Kind: kind, Field: field, Value: value, Count: len(matches)}
	}
}
