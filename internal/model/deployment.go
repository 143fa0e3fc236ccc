package model

import (
	"context"

	"github.com/theandrelima/terraframe/internal/store"
)

// OutputRef names the (remote state, output) pair a deployment variable is
// fed from.
type OutputRef struct {
	RemoteState string
	Output      string
}

func (r OutputRef) String() string { return "(" + r.RemoteState + ", " + r.Output + ")" }

// Deployment is a top-level unit materialized as one directory of generated
// files. It references already-created child modules and the remote states
// their bindings depend on. Deployments are strictly unique by (index, name),
// where index is the zero-based position in the YAML deployments list.
type Deployment struct {
	Index  int
	Name   string
	Prefix string

	// ChildModules and RemoteStates are canonical ordered sets, sorted by the
	// referenced entities' identity keys.
	ChildModules []*ChildModule
	RemoteStates []*RemoteState

	// RemoteStateInputs maps each bound variable name to the output feeding
	// it, across all the deployment's child modules. Derived once, inside
	// CreateDeployment, before the record is saved.
	RemoteStateInputs map[string]OutputRef
}

var deploymentDescriptor = store.Descriptor{
	Kind:      KindDeployment,
	KeyFields: []string{"index", "name"},
	Template:  "deployment",
	Strict:    true,
}

func (d *Deployment) Describe() store.Descriptor { return deploymentDescriptor }

func (d *Deployment) Key() store.Key { return store.Key{d.Index, d.Name} }

func (d *Deployment) Fields() map[string]any {
	return map[string]any{
		"index":               d.Index,
		"name":                d.Name,
		"prefix":              d.Prefix,
		"child_modules":       d.ChildModules,
		"remote_states":       d.RemoteStates,
		"remote_state_inputs": d.RemoteStateInputs,
	}
}

func (d *Deployment) String() string {
	return canonicalEntity(string(KindDeployment), d.Fields())
}

// CreateDeployment validates the payload, resolves each listed child module
// name to the already-created record, collects the distinct remote states
// referenced by those modules' bindings, derives the variable-to-output map,
// then persists the record and returns it. The index is assigned by the
// deployments factory and is part of the identity key.
func CreateDeployment(ctx context.Context, p *Project, index int, payload map[string]any) (*Deployment, error) {
	var params struct {
		Name         string `mapstructure:"name"`
		Prefix       string `mapstructure:"prefix"`
		ChildModules []struct {
			Name string `mapstructure:"name"`
			// The full module declaration appears inline in a deployment
			// entry; source and remote_state_inputs are consumed by the child
			// module's own construction during the loader's nested walk, and
			// only the name is dereferenced here.
			Source            string                 `mapstructure:"source"`
			RemoteStateInputs []remoteStateInputSpec `mapstructure:"remote_state_inputs"`
		} `mapstructure:"child_modules"`
	}
	if err := decodePayload(KindDeployment, payload, &params); err != nil {
		return nil, err
	}
	if params.Name == "" {
		return nil, schemaErrorf(KindDeployment, "missing required field %q", "name")
	}
	if _, ok := payload["child_modules"]; !ok {
		return nil, schemaErrorf(KindDeployment, "missing required field %q", "child_modules")
	}

	childModules := make([]*ChildModule, 0, len(params.ChildModules))
	var remoteStates []*RemoteState
	for _, ref := range params.ChildModules {
		cm, err := ChildModuleByName(p.Store, ref.Name)
		if err != nil {
			return nil, err
		}
		childModules = append(childModules, cm)
		for _, b := range cm.RemoteStateInputs {
			remoteStates = append(remoteStates, b.Output.RemoteState)
		}
	}

	d := &Deployment{
		Index:        index,
		Name:         params.Name,
		Prefix:       params.Prefix,
		ChildModules: canonicalSet(childModules),
		RemoteStates: canonicalSet(remoteStates),
	}
	d.RemoteStateInputs = deriveRemoteStateInputs(d.ChildModules)

	if err := p.Store.Save(d); err != nil {
		return nil, err
	}
	return d, nil
}

// deriveRemoteStateInputs unions the bindings of all child modules into one
// variable-name-to-output map.
func deriveRemoteStateInputs(childModules []*ChildModule) map[string]OutputRef {
	m := make(map[string]OutputRef)
	for _, cm := range childModules {
		for _, b := range cm.RemoteStateInputs {
			m[b.Variable.Name] = OutputRef{
				RemoteState: b.Output.RemoteState.Name,
				Output:      b.Output.Name,
			}
		}
	}
	return m
}

// Deployments returns every deployment in store order.
func Deployments(st *store.Store) []*Deployment {
	entities := st.All(KindDeployment)
	out := make([]*Deployment, len(entities))
	for i, e := range entities {
		out[i] = e.(*Deployment)
	}
	return out
}
