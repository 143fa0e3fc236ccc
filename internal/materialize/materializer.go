// Package materialize emits the generated file tree for every deployment in
// the store: one directory per deployment holding the rendered main and
// variables files, plus one project-level YAML scaffold of variable values.
package materialize

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/theandrelima/terraframe/internal/ctxlog"
	"github.com/theandrelima/terraframe/internal/fsutil"
	"github.com/theandrelima/terraframe/internal/model"
	"github.com/theandrelima/terraframe/internal/render"
	"github.com/theandrelima/terraframe/internal/tfscan"
	"gopkg.in/yaml.v3"
)

// Default generated file names.
const (
	DefaultMainFileName     = "main.tf"
	DefaultTfvarsFileName   = "terraform.tfvars"
	DefaultScaffoldFileName = "deployment_vars.yaml"
)

// Materializer writes the generated files for every deployment of a run.
type Materializer struct {
	Renderer *render.Renderer

	MainFileName      string
	VariablesFileName string

	// TfvarsFileName names the empty per-deployment tfvars scaffold; an empty
	// value disables it.
	TfvarsFileName string

	// ScaffoldFileName names the single project-level YAML scaffold mapping
	// deployment names to null-valued variables; an empty value disables it.
	ScaffoldFileName string
}

// New returns a Materializer with default file names.
func New(r *render.Renderer) *Materializer {
	return &Materializer{
		Renderer:          r,
		MainFileName:      DefaultMainFileName,
		VariablesFileName: model.DefaultVariablesFileName,
		TfvarsFileName:    DefaultTfvarsFileName,
		ScaffoldFileName:  DefaultScaffoldFileName,
	}
}

// Run materializes every deployment in store order, then writes the project
// scaffold once. Directory creation is idempotent; any write failure aborts
// the run, leaving a partially-populated tree that a rerun overwrites in
// place.
func (m *Materializer) Run(ctx context.Context, p *model.Project) error {
	logger := ctxlog.FromContext(ctx)

	deployments := model.Deployments(p.Store)
	for _, d := range deployments {
		dir := filepath.Join(p.Root, d.Name)
		if err := p.FS.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		logger.Debug("Materializing deployment.", "deployment", d.Name, "dir", dir)

		text, err := m.Renderer.Render(d, nil)
		if err != nil {
			return err
		}
		if err := afero.WriteFile(p.FS, filepath.Join(dir, m.MainFileName), []byte(text), 0o644); err != nil {
			return err
		}

		if err := m.writeVariablesFile(d, dir, p.FS); err != nil {
			return err
		}

		if m.TfvarsFileName != "" {
			if err := afero.WriteFile(p.FS, filepath.Join(dir, m.TfvarsFileName), nil, 0o644); err != nil {
				return err
			}
		}
	}

	if err := m.writeScaffold(deployments, p); err != nil {
		return err
	}

	logger.Info("Materialization finished.", "deployments", len(deployments))
	return nil
}

// writeVariablesFile renders every variable of every child module, each with
// the deployment's prefix. The file is re-opened in truncate mode per child
// module, so only the last module's variables survive when a deployment has
// more than one; this mirrors the long-standing generator behavior and is
// pinned by a test.
func (m *Materializer) writeVariablesFile(d *model.Deployment, dir string, fsys afero.Fs) error {
	for _, cm := range d.ChildModules {
		f, err := fsys.Create(filepath.Join(dir, m.VariablesFileName))
		if err != nil {
			return err
		}
		for _, v := range cm.Variables {
			text, err := m.Renderer.Render(v, map[string]any{"prefix": d.Prefix})
			if err != nil {
				f.Close()
				return err
			}
			if _, err := fmt.Fprintf(f, "%s\n", text); err != nil {
				f.Close()
				return err
			}
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// writeScaffold builds the project-level mapping of deployment name to
// null-valued variables by scanning the variables files just generated (their
// declared names already carry the deployment prefix) and dumps it as YAML
// with 4-space indent.
func (m *Materializer) writeScaffold(deployments []*model.Deployment, p *model.Project) error {
	if m.ScaffoldFileName == "" {
		return nil
	}
	scaffold := make(map[string]map[string]any, len(deployments))
	for _, d := range deployments {
		vars := map[string]any{}
		files, err := fsutil.FindFilesByName(p.FS, filepath.Join(p.Root, d.Name), m.VariablesFileName)
		if err != nil {
			return err
		}
		for _, file := range files {
			names, err := tfscan.Variables(p.FS, filepath.Dir(file), filepath.Base(file))
			if err != nil {
				return err
			}
			for _, name := range names {
				vars[name] = nil
			}
		}
		scaffold[d.Name] = vars
	}

	f, err := p.FS.Create(filepath.Join(p.Root, m.ScaffoldFileName))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(4)
	if err := enc.Encode(scaffold); err != nil {
		return err
	}
	return enc.Close()
}
