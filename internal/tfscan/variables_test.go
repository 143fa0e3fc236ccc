package tfscan

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariablesExtractsDeclarationsInFileOrder(t *testing.T) {
	fsys := afero.NewMemMapFs()
	content := `# network module

variable "region" {
  type = string
}

# a comment mentioning variable "decoy" should not match
variable "zone" {}
`
	require.NoError(t, afero.WriteFile(fsys, "/mod/variables.tf", []byte(content), 0o644))

	names, err := Variables(fsys, "/mod", "variables.tf")
	require.NoError(t, err)
	assert.Equal(t, []string{"region", "zone"}, names)
}

func TestVariablesMissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_, err := Variables(fsys, "/mod", "variables.tf")
	require.Error(t, err)
}

func TestVariablesDeclarationWithoutQuotedName(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/mod/variables.tf", []byte("variable region {}\n"), 0o644))

	_, err := Variables(fsys, "/mod", "variables.tf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without a quoted name")
}

func TestVariablesEmptyFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/mod/variables.tf", nil, 0o644))

	names, err := Variables(fsys, "/mod", "variables.tf")
	require.NoError(t, err)
	assert.Empty(t, names)
}
