package model

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/theandrelima/terraframe/internal/store"
)

// SchemaError reports a directive payload that fails type or shape validation
// for an entity's fields.
type SchemaError struct {
	Kind   store.Kind
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s definition: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("invalid %s definition: %s", e.Kind, e.Reason)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// schemaErrorf builds a SchemaError from a format string.
func schemaErrorf(kind store.Kind, format string, args ...any) *SchemaError {
	return &SchemaError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// decodePayload decodes a directive payload mapping into the typed params
// struct for an entity. Unknown keys and wrongly-typed values both surface as
// SchemaErrors.
func decodePayload(kind store.Kind, payload map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(payload); err != nil {
		return &SchemaError{Kind: kind, Err: err}
	}
	return nil
}
