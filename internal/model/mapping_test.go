package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMappingConvertsNestedMappings(t *testing.T) {
	m := NewMapping(map[string]any{
		"bucket": "states",
		"assume_role": map[string]any{
			"role_arn": "arn:aws:iam::1:role/x",
		},
	})

	assert.IsType(t, Mapping{}, m["assume_role"],
		"nested mappings must be converted recursively")
}

func TestMappingStringIsCanonical(t *testing.T) {
	a := NewMapping(map[string]any{"b": 2, "a": 1, "c": map[string]any{"y": "v", "x": "u"}})
	b := NewMapping(map[string]any{"c": map[string]any{"x": "u", "y": "v"}, "a": 1, "b": 2})

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, "{a: 1, b: 2, c: {x: u, y: v}}", a.String())
}

func TestMappingTerraform(t *testing.T) {
	m := NewMapping(map[string]any{
		"bucket":  "states",
		"encrypt": true,
		"nested":  map[string]any{"key": "path/to/state"},
	})

	expected := "" +
		"    bucket = \"states\"\n" +
		"    encrypt = true\n" +
		"    nested = {\n" +
		"      key = \"path/to/state\"\n" +
		"    }\n"
	assert.Equal(t, expected, m.Terraform(4))
}
