package model

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theandrelima/terraframe/internal/store"
)

// writeModule puts a variable-declaration file into a module source directory
// under the project root.
func writeModule(t *testing.T, p *Project, source string, content string) {
	t.Helper()
	path := filepath.Join(p.Root, source, p.VariablesFileName)
	require.NoError(t, afero.WriteFile(p.FS, path, []byte(content), 0o644))
}

func TestCreateChildModuleDiscoversVariables(t *testing.T) {
	p := newTestProject()
	writeModule(t, p, "modules/vpc", "variable \"zone\" {}\n\nvariable \"cidr\" {}\n")

	cm, err := CreateChildModule(context.Background(), p, map[string]any{
		"name":   "vpc",
		"source": "modules/vpc",
	})
	require.NoError(t, err)

	// Variables are auto-discovered from the source, then held in canonical
	// identity-key order regardless of file order.
	require.Len(t, cm.Variables, 2)
	assert.Equal(t, "cidr", cm.Variables[0].Name)
	assert.Equal(t, "zone", cm.Variables[1].Name)

	// The discovered variables are stored, not just referenced.
	_, err = ChildModuleVariableByName(p.Store, "cidr")
	require.NoError(t, err)
	assert.Len(t, p.Store.All(KindChildModuleVariable), 2)
}

func TestCreateChildModuleMissingVariablesFile(t *testing.T) {
	p := newTestProject()

	_, err := CreateChildModule(context.Background(), p, map[string]any{
		"name":   "vpc",
		"source": "modules/vpc",
	})
	require.Error(t, err)

	// The read failure is surfaced as-is, not wrapped into a schema error.
	var schemaErr *SchemaError
	assert.False(t, errors.As(err, &schemaErr), "IO failures must not be schema errors")
}

func TestCreateChildModuleResolvesRemoteStateInputs(t *testing.T) {
	p := newTestProject()
	ctx := context.Background()
	writeModule(t, p, "modules/app", "variable \"vpc_id\" {}\nvariable \"image\" {}\n")

	_, err := CreateRemoteState(ctx, p, map[string]any{"name": "network", "backend": "s3"})
	require.NoError(t, err)

	cm, err := CreateChildModule(ctx, p, map[string]any{
		"name":   "app",
		"source": "modules/app",
		"remote_state_inputs": []any{
			map[string]any{"var": "vpc_id", "output": "vpc_id", "remote_state": "network"},
		},
	})
	require.NoError(t, err)

	require.Len(t, cm.RemoteStateInputs, 1)
	b := cm.RemoteStateInputs[0]
	assert.Equal(t, "vpc_id", b.Variable.Name)
	assert.Equal(t, "vpc_id", b.Output.Name)
	assert.Equal(t, "network", b.Output.RemoteState.Name)

	// Outputs and bindings land in the store as part of resolution.
	assert.Len(t, p.Store.All(KindChildModuleOutput), 1)
	assert.Len(t, p.Store.All(KindRemoteStateInput), 1)

	assert.Same(t, b, cm.BindingFor("vpc_id"))
	assert.Nil(t, cm.BindingFor("image"))
}

func TestCreateChildModuleUnresolvedReferences(t *testing.T) {
	p := newTestProject()
	ctx := context.Background()
	writeModule(t, p, "modules/app", "variable \"vpc_id\" {}\n")

	var notFound *store.NotFoundError

	// Unknown remote state.
	_, err := CreateChildModule(ctx, p, map[string]any{
		"name":   "app",
		"source": "modules/app",
		"remote_state_inputs": []any{
			map[string]any{"var": "vpc_id", "output": "vpc_id", "remote_state": "absent"},
		},
	})
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, KindRemoteState, notFound.Kind)

	// A var name the module does not declare.
	_, err = CreateRemoteState(ctx, p, map[string]any{"name": "network", "backend": "s3"})
	require.NoError(t, err)
	_, err = CreateChildModule(ctx, p, map[string]any{
		"name":   "app2",
		"source": "modules/app",
		"remote_state_inputs": []any{
			map[string]any{"var": "nope", "output": "vpc_id", "remote_state": "network"},
		},
	})
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, KindChildModuleVariable, notFound.Kind)
}

func TestCreateChildModuleNameOnlyIsAReference(t *testing.T) {
	p := newTestProject()
	ctx := context.Background()
	writeModule(t, p, "modules/vpc", "variable \"cidr\" {}\n")

	declared, err := CreateChildModule(ctx, p, map[string]any{"name": "vpc", "source": "modules/vpc"})
	require.NoError(t, err)

	// A bare name resolves to the declared module instead of declaring a new
	// one; nothing extra lands in the store.
	ref, err := CreateChildModule(ctx, p, map[string]any{"name": "vpc"})
	require.NoError(t, err)
	assert.Same(t, declared, ref)
	assert.Len(t, p.Store.All(KindChildModule), 1)

	// Referencing a module that was never declared is a lookup failure.
	var notFound *store.NotFoundError
	_, err = CreateChildModule(ctx, p, map[string]any{"name": "absent"})
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, KindChildModule, notFound.Kind)
}

func TestCreateChildModuleSchemaErrors(t *testing.T) {
	p := newTestProject()
	ctx := context.Background()

	var schemaErr *SchemaError

	// Bindings without a source to scan are a declaration with a hole in it,
	// not a reference.
	_, err := CreateChildModule(ctx, p, map[string]any{
		"name": "vpc",
		"remote_state_inputs": []any{
			map[string]any{"var": "cidr", "output": "cidr", "remote_state": "network"},
		},
	})
	require.ErrorAs(t, err, &schemaErr, "missing source")

	_, err = CreateChildModule(ctx, p, map[string]any{"source": "modules/vpc"})
	require.ErrorAs(t, err, &schemaErr, "missing name")

	writeModule(t, p, "modules/vpc", "variable \"cidr\" {}\n")
	_, err = CreateChildModule(ctx, p, map[string]any{
		"name":   "vpc",
		"source": "modules/vpc",
		"remote_state_inputs": []any{
			map[string]any{"var": "cidr"},
		},
	})
	require.ErrorAs(t, err, &schemaErr, "incomplete remote_state_inputs entry")
}
