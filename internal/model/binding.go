package model

import (
	"github.com/theandrelima/terraframe/internal/store"
)

// RemoteStateInputBinding binds one child module variable to one named output
// of one remote state: at rendering time the bound variable takes its value
// from the remote state's output instead of a project-level variable.
type RemoteStateInputBinding struct {
	Variable *ChildModuleVariable
	Output   *ChildModuleOutput
}

var remoteStateInputDescriptor = store.Descriptor{
	Kind:      KindRemoteStateInput,
	KeyFields: []string{"variable", "output"},
}

func (b *RemoteStateInputBinding) Describe() store.Descriptor { return remoteStateInputDescriptor }

// Key flattens the binding's (variable, output) identity pair into the
// referenced entities' own key tuples.
func (b *RemoteStateInputBinding) Key() store.Key {
	return store.Key{b.Variable.Name, b.Output.Name, b.Output.RemoteState.Name}
}

func (b *RemoteStateInputBinding) Fields() map[string]any {
	return map[string]any{
		"variable": b.Variable,
		"output":   b.Output,
	}
}

func (b *RemoteStateInputBinding) String() string {
	return canonicalEntity(string(KindRemoteStateInput), b.Fields())
}

// CreateRemoteStateInputBinding persists a binding between an already-stored
// variable and output and returns it.
func CreateRemoteStateInputBinding(p *Project, v *ChildModuleVariable, o *ChildModuleOutput) (*RemoteStateInputBinding, error) {
	b := &RemoteStateInputBinding{Variable: v, Output: o}
	if err := p.Store.Save(b); err != nil {
		return nil, err
	}
	return b, nil
}
