package model

import (
	"context"

	"github.com/theandrelima/terraframe/internal/store"
)

// RemoteState is a named external state backend from which output values can
// be referenced by child module variables.
type RemoteState struct {
	Name    string
	Backend string
	Config  Mapping
}

var remoteStateDescriptor = store.Descriptor{
	Kind:      KindRemoteState,
	KeyFields: []string{"name"},
	Template:  "remote_state",
}

func (r *RemoteState) Describe() store.Descriptor { return remoteStateDescriptor }

func (r *RemoteState) Key() store.Key { return store.Key{r.Name} }

func (r *RemoteState) Fields() map[string]any {
	return map[string]any{
		"name":    r.Name,
		"backend": r.Backend,
		"config":  r.Config,
	}
}

func (r *RemoteState) String() string {
	return canonicalEntity(string(KindRemoteState), r.Fields())
}

// CreateRemoteState validates the payload, converts the backend config into
// its canonical mapping form, persists the record and returns it.
func CreateRemoteState(ctx context.Context, p *Project, payload map[string]any) (*RemoteState, error) {
	var params struct {
		Name    string         `mapstructure:"name"`
		Backend string         `mapstructure:"backend"`
		Config  map[string]any `mapstructure:"config"`
	}
	if err := decodePayload(KindRemoteState, payload, &params); err != nil {
		return nil, err
	}
	if params.Name == "" {
		return nil, schemaErrorf(KindRemoteState, "missing required field %q", "name")
	}
	if params.Backend == "" {
		return nil, schemaErrorf(KindRemoteState, "missing required field %q", "backend")
	}

	rs := &RemoteState{
		Name:    params.Name,
		Backend: params.Backend,
		Config:  NewMapping(params.Config),
	}
	if err := p.Store.Save(rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// RemoteStateByName looks up the single remote state with the given name.
func RemoteStateByName(st *store.Store, name string) (*RemoteState, error) {
	e, err := st.Get(KindRemoteState, "name", name)
	if err != nil {
		return nil, err
	}
	return e.(*RemoteState), nil
}
