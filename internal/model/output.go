package model

import (
	"github.com/theandrelima/terraframe/internal/store"
)

// ChildModuleOutput names one output of a remote state. It is only ever
// constructed as part of a remote-state-input binding, never from a directive
// of its own.
type ChildModuleOutput struct {
	Name        string
	RemoteState *RemoteState
}

var childModuleOutputDescriptor = store.Descriptor{
	Kind:      KindChildModuleOutput,
	KeyFields: []string{"name", "remote_state"},
}

func (o *ChildModuleOutput) Describe() store.Descriptor { return childModuleOutputDescriptor }

func (o *ChildModuleOutput) Key() store.Key { return store.Key{o.Name, o.RemoteState.Name} }

func (o *ChildModuleOutput) Fields() map[string]any {
	return map[string]any{
		"name":         o.Name,
		"remote_state": o.RemoteState,
	}
}

func (o *ChildModuleOutput) String() string {
	return canonicalEntity(string(KindChildModuleOutput), o.Fields())
}

// CreateChildModuleOutput persists an output record owned by an
// already-stored remote state and returns it.
func CreateChildModuleOutput(p *Project, name string, rs *RemoteState) (*ChildModuleOutput, error) {
	if name == "" {
		return nil, schemaErrorf(KindChildModuleOutput, "missing required field %q", "name")
	}
	o := &ChildModuleOutput{Name: name, RemoteState: rs}
	if err := p.Store.Save(o); err != nil {
		return nil, err
	}
	return o, nil
}
