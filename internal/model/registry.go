package model

import (
	"context"

	"github.com/theandrelima/terraframe/internal/store"
)

// Directive strings: YAML mapping keys that trigger bulk construction of the
// corresponding record type.
const (
	DirectiveRemoteStates = "remote_states"
	DirectiveChildModules = "child_modules"
	DirectiveDeployments  = "deployments"
)

// Factory is a bulk-construction entry point for one directive. The payload
// is either a single mapping (create one record) or a sequence of mappings
// (create one record per element).
type Factory func(ctx context.Context, p *Project, payload any) error

// Registry maps directive strings to their factories. Directives are visited
// by the loader in registration order, so registration order is dependency
// order: a record type must be registered after every type its construction
// dereferences.
type Registry struct {
	order     []string
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a directive and its factory. Registering the same directive
// twice is a programming error.
func (r *Registry) Register(directive string, f Factory) {
	if _, exists := r.factories[directive]; exists {
		panic("directive already registered: " + directive)
	}
	r.order = append(r.order, directive)
	r.factories[directive] = f
}

// Directives returns the registered directive strings in registration order.
func (r *Registry) Directives() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Factory returns the factory registered for the directive.
func (r *Registry) Factory(directive string) (Factory, bool) {
	f, ok := r.factories[directive]
	return f, ok
}

// DefaultRegistry registers every directive-addressable record type in
// dependency order: deployments dereference remote states and child modules,
// so they come last.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(DirectiveRemoteStates, RemoteStatesFromPayload)
	r.Register(DirectiveChildModules, ChildModulesFromPayload)
	r.Register(DirectiveDeployments, DeploymentsFromPayload)
	return r
}

// eachMapping invokes fn once per payload mapping: once for a bare mapping,
// once per element for a sequence of mappings.
func eachMapping(kind store.Kind, payload any, fn func(map[string]any) error) error {
	switch v := payload.(type) {
	case map[string]any:
		return fn(v)
	case []any:
		for _, elem := range v {
			m, ok := elem.(map[string]any)
			if !ok {
				return schemaErrorf(kind, "expected a mapping, got %T", elem)
			}
			if err := fn(m); err != nil {
				return err
			}
		}
		return nil
	default:
		return schemaErrorf(kind, "expected a mapping or a sequence of mappings, got %T", payload)
	}
}

// RemoteStatesFromPayload is the factory for the remote_states directive.
func RemoteStatesFromPayload(ctx context.Context, p *Project, payload any) error {
	return eachMapping(KindRemoteState, payload, func(m map[string]any) error {
		_, err := CreateRemoteState(ctx, p, m)
		return err
	})
}

// ChildModulesFromPayload is the factory for the child_modules directive.
func ChildModulesFromPayload(ctx context.Context, p *Project, payload any) error {
	return eachMapping(KindChildModule, payload, func(m map[string]any) error {
		_, err := CreateChildModule(ctx, p, m)
		return err
	})
}

// DeploymentsFromPayload is the factory for the deployments directive. On top
// of the generic contract it assigns each record a zero-based index matching
// its declaration order; the index is part of the deployment identity key.
func DeploymentsFromPayload(ctx context.Context, p *Project, payload any) error {
	index := 0
	return eachMapping(KindDeployment, payload, func(m map[string]any) error {
		_, err := CreateDeployment(ctx, p, index, m)
		index++
		return err
	})
}
