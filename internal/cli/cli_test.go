package cli

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const projectYAML = `
remote_states:
    - name: net
      backend: s3
      config:
          bucket: tf-state
          key: net.tfstate

child_modules:
    - name: vpc
      source: modules/vpc
    - name: app
      source: modules/app
      remote_state_inputs:
          - var: vpc_id
            output: vpc_id
            remote_state: net

deployments:
    - name: prod
      prefix: prod_
      child_modules:
          - name: app
`

func newProjectFs(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/proj/terraframe.yaml", []byte(projectYAML), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/proj/modules/vpc/variables.tf",
		[]byte("variable \"cidr\" {}\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/proj/modules/app/variables.tf",
		[]byte("variable \"vpc_id\" {}\nvariable \"image\" {}\n"), 0o644))
	return fsys
}

func execute(fsys afero.Fs, args ...string) error {
	cmd := NewRootCommand(io.Discard, fsys)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRootCommandGeneratesDeployment(t *testing.T) {
	fsys := newProjectFs(t)

	require.NoError(t, execute(fsys, "/proj"))

	mainContent, err := afero.ReadFile(fsys, "/proj/prod/main.tf")
	require.NoError(t, err)
	assert.Contains(t, string(mainContent), `data "terraform_remote_state" "net" {`)
	assert.Contains(t, string(mainContent), `module "app" {`)
	assert.Contains(t, string(mainContent), `vpc_id = data.terraform_remote_state.net.outputs.vpc_id`)
	assert.Contains(t, string(mainContent), `image = var.prod_image`)

	varsContent, err := afero.ReadFile(fsys, "/proj/prod/variables.tf")
	require.NoError(t, err)
	assert.Contains(t, string(varsContent), `variable "prod_image"`)

	scaffoldContent, err := afero.ReadFile(fsys, "/proj/deployment_vars.yaml")
	require.NoError(t, err)
	var scaffold map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(scaffoldContent, &scaffold))
	require.Contains(t, scaffold, "prod")
	assert.Contains(t, scaffold["prod"], "prod_image")
	assert.Contains(t, scaffold["prod"], "prod_vpc_id")
}

func TestRootCommandCustomFileNames(t *testing.T) {
	fsys := newProjectFs(t)
	require.NoError(t, fsys.Rename("/proj/terraframe.yaml", "/proj/stack.yaml"))

	err := execute(fsys, "/proj",
		"--file", "stack.yaml",
		"--main-file", "deployment.tf",
		"--scaffold-file", "values.yaml")
	require.NoError(t, err)

	exists, err := afero.Exists(fsys, "/proj/prod/deployment.tf")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = afero.Exists(fsys, "/proj/values.yaml")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRootCommandMissingProjectFile(t *testing.T) {
	err := execute(afero.NewMemMapFs(), "/nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening project file")
}

func TestRootCommandRequiresProjectPath(t *testing.T) {
	assert.Error(t, execute(afero.NewMemMapFs()))
}

func TestExitErrorMessage(t *testing.T) {
	err := &ExitError{Code: 2, Message: "bad configuration"}
	assert.Equal(t, "bad configuration", err.Error())
}
