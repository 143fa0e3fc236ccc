// Package render turns stored entities into the text written to generated
// files. A renderer resolves each entity's template by the name declared on
// its descriptor, merges the entity's field values with caller-supplied extra
// values, and executes the template.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"text/template"

	"github.com/spf13/afero"
	"github.com/theandrelima/terraframe/internal/store"
)

// Ext is the file extension template names are resolved with.
const Ext = ".tmpl"

// TemplateNotFoundError reports a missing template file for an entity's
// resolved template name.
type TemplateNotFoundError struct {
	Name string
	Path string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("no template file for %q (looked for %s)", e.Name, e.Path)
}

// Renderer renders entities through the templates of one directory.
type Renderer struct {
	fsys  afero.Fs
	dir   string
	cache map[string]*template.Template
}

// New returns a Renderer reading templates from the given directory of the
// given filesystem. Use DefaultFS with an empty dir for the shipped templates.
func New(fsys afero.Fs, dir string) *Renderer {
	return &Renderer{
		fsys:  fsys,
		dir:   dir,
		cache: make(map[string]*template.Template),
	}
}

// Render produces the textual form of the entity: the entity's field values,
// overlaid with extra (extra wins on key collision), executed through the
// entity's template. Entities whose descriptor declares no template cannot be
// rendered.
func (r *Renderer) Render(e store.Entity, extra map[string]any) (string, error) {
	d := e.Describe()
	if d.Template == "" {
		return "", fmt.Errorf("%s entities are not renderable", d.Kind)
	}

	tmpl, err := r.lookup(d.Template)
	if err != nil {
		return "", err
	}

	data := make(map[string]any)
	for k, v := range e.Fields() {
		data[k] = v
	}
	for k, v := range extra {
		data[k] = v
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s through template %q: %w", d.Kind, d.Template, err)
	}
	return buf.String(), nil
}

func (r *Renderer) lookup(name string) (*template.Template, error) {
	if tmpl, ok := r.cache[name]; ok {
		return tmpl, nil
	}

	filePath := path.Join(r.dir, name+Ext)
	content, err := afero.ReadFile(r.fsys, filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &TemplateNotFoundError{Name: name, Path: filePath}
	}
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %q: %w", name, err)
	}
	r.cache[name] = tmpl
	return tmpl, nil
}
