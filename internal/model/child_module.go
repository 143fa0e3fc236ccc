package model

import (
	"context"
	"path/filepath"

	"github.com/theandrelima/terraframe/internal/store"
	"github.com/theandrelima/terraframe/internal/tfscan"
)

// ChildModule is a reusable infrastructure unit invoked by deployments. Its
// variables are auto-discovered from the module's source directory; its
// bindings wire some of those variables to remote state outputs.
type ChildModule struct {
	Name   string
	Source string

	// Variables and RemoteStateInputs are canonical ordered sets, sorted by
	// the referenced entities' identity keys.
	Variables         []*ChildModuleVariable
	RemoteStateInputs []*RemoteStateInputBinding
}

// remoteStateInputSpec is the wire shape of one remote_state_inputs entry.
type remoteStateInputSpec struct {
	Var         string `mapstructure:"var"`
	Output      string `mapstructure:"output"`
	RemoteState string `mapstructure:"remote_state"`
}

var childModuleDescriptor = store.Descriptor{
	Kind:      KindChildModule,
	KeyFields: []string{"name"},
	Template:  "child_module",
}

func (c *ChildModule) Describe() store.Descriptor { return childModuleDescriptor }

func (c *ChildModule) Key() store.Key { return store.Key{c.Name} }

func (c *ChildModule) Fields() map[string]any {
	return map[string]any{
		"name":                c.Name,
		"source":              c.Source,
		"variables":           c.Variables,
		"remote_state_inputs": c.RemoteStateInputs,
	}
}

func (c *ChildModule) String() string {
	return canonicalEntity(string(KindChildModule), c.Fields())
}

// BindingFor returns the binding of the named variable, or nil when the
// variable takes its value from a project-level variable instead of a remote
// state output. Templates use it to choose each argument's right-hand side.
func (c *ChildModule) BindingFor(varName string) *RemoteStateInputBinding {
	for _, b := range c.RemoteStateInputs {
		if b.Variable.Name == varName {
			return b
		}
	}
	return nil
}

// CreateChildModule validates the payload, discovers the module's variables
// by scanning the variable file under its source directory, resolves every
// remote_state_inputs entry into a (variable, output) binding, creating the
// output on the fly and looking up the remote state it belongs to, then
// persists the record and returns it.
//
// A payload carrying only a name is a reference, not a declaration: the
// already-created module of that name is returned. Deployment entries list
// their child modules this way when the modules are declared at the top
// level.
func CreateChildModule(ctx context.Context, p *Project, payload map[string]any) (*ChildModule, error) {
	var params struct {
		Name              string                 `mapstructure:"name"`
		Source            string                 `mapstructure:"source"`
		RemoteStateInputs []remoteStateInputSpec `mapstructure:"remote_state_inputs"`
	}
	if err := decodePayload(KindChildModule, payload, &params); err != nil {
		return nil, err
	}
	if params.Name == "" {
		return nil, schemaErrorf(KindChildModule, "missing required field %q", "name")
	}
	if params.Source == "" {
		if len(params.RemoteStateInputs) == 0 {
			return ChildModuleByName(p.Store, params.Name)
		}
		return nil, schemaErrorf(KindChildModule, "missing required field %q", "source")
	}

	names, err := tfscan.Variables(p.FS, filepath.Join(p.Root, params.Source), p.VariablesFileName)
	if err != nil {
		return nil, err
	}
	variables := make([]*ChildModuleVariable, 0, len(names))
	for _, name := range names {
		v, err := CreateChildModuleVariable(p, name)
		if err != nil {
			return nil, err
		}
		variables = append(variables, v)
	}

	bindings := make([]*RemoteStateInputBinding, 0, len(params.RemoteStateInputs))
	for _, spec := range params.RemoteStateInputs {
		b, err := resolveRemoteStateInput(p, spec)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}

	cm := &ChildModule{
		Name:              params.Name,
		Source:            params.Source,
		Variables:         canonicalSet(variables),
		RemoteStateInputs: canonicalSet(bindings),
	}
	if err := p.Store.Save(cm); err != nil {
		return nil, err
	}
	return cm, nil
}

// resolveRemoteStateInput turns one wire-level entry into a stored binding.
// The variable and the remote state must already exist; the output is created
// here because outputs only exist as part of a binding.
func resolveRemoteStateInput(p *Project, spec remoteStateInputSpec) (*RemoteStateInputBinding, error) {
	if spec.Var == "" || spec.Output == "" || spec.RemoteState == "" {
		return nil, schemaErrorf(KindRemoteStateInput,
			"entries require %q, %q and %q fields", "var", "output", "remote_state")
	}

	v, err := ChildModuleVariableByName(p.Store, spec.Var)
	if err != nil {
		return nil, err
	}
	rs, err := RemoteStateByName(p.Store, spec.RemoteState)
	if err != nil {
		return nil, err
	}
	o, err := CreateChildModuleOutput(p, spec.Output, rs)
	if err != nil {
		return nil, err
	}
	return CreateRemoteStateInputBinding(p, v, o)
}

// ChildModuleByName looks up the single child module with the given name.
func ChildModuleByName(st *store.Store, name string) (*ChildModule, error) {
	e, err := st.Get(KindChildModule, "name", name)
	if err != nil {
		return nil, err
	}
	return e.(*ChildModule), nil
}
