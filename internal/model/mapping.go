package model

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Mapping is the canonical representation of a nested mapping-valued field
// (e.g. a remote state's backend config). Unlike a plain map it has a
// deterministic string form, which is what lets entities that contain nested
// mappings participate in ordered sets and full-value equality comparisons.
type Mapping map[string]any

// NewMapping converts a decoded YAML mapping into a Mapping, recursing into
// nested mappings so the canonical form holds at every depth.
func NewMapping(src map[string]any) Mapping {
	m := make(Mapping, len(src))
	for k, v := range src {
		if nested, ok := v.(map[string]any); ok {
			m[k] = NewMapping(nested)
		} else {
			m[k] = v
		}
	}
	return m
}

// String renders the mapping with keys in sorted order, recursively.
func (m Mapping) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(canonical(m[k]))
	}
	b.WriteByte('}')
	return b.String()
}

// Terraform renders the mapping as Terraform argument lines indented by the
// given number of spaces, one "key = value" per line with nested mappings as
// nested blocks. Keys are emitted in sorted order.
func (m Mapping) Terraform(indent int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pad := strings.Repeat(" ", indent)
	var b strings.Builder
	for _, k := range keys {
		switch v := m[k].(type) {
		case Mapping:
			fmt.Fprintf(&b, "%s%s = {\n%s%s}\n", pad, k, v.Terraform(indent+2), pad)
		case string:
			fmt.Fprintf(&b, "%s%s = %q\n", pad, k, v)
		default:
			fmt.Fprintf(&b, "%s%s = %v\n", pad, k, v)
		}
	}
	return b.String()
}

// canonical renders any field value deterministically. Entities contribute
// their own canonical forms, mappings sort their keys, and slices render
// element by element; everything else falls back to fmt.
func canonical(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case Mapping:
		return t.String()
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = canonical(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		keys := rv.MapKeys()
		rendered := make([]string, len(keys))
		for i, k := range keys {
			rendered[i] = canonical(k.Interface()) + ": " + canonical(rv.MapIndex(k).Interface())
		}
		sort.Strings(rendered)
		return "{" + strings.Join(rendered, ", ") + "}"
	}
	return fmt.Sprint(v)
}

// canonicalEntity renders an entity as "<kind>{field: value, ...}" with field
// names sorted. All entity String methods funnel through here.
func canonicalEntity(kind string, fields map[string]any) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(kind)
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(canonical(fields[name]))
	}
	b.WriteByte('}')
	return b.String()
}
