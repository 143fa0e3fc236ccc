package model

import (
	"github.com/theandrelima/terraframe/internal/store"
)

// ChildModuleVariable is one input variable of a child module. Variables are
// never declared in the YAML document; they are discovered by scanning the
// module's variable-declaration file during CreateChildModule.
type ChildModuleVariable struct {
	Name string

	// Type and Description are carried for rendering but are not populated by
	// the naive variable scan today.
	Type        string
	Description string
}

var childModuleVariableDescriptor = store.Descriptor{
	Kind:      KindChildModuleVariable,
	KeyFields: []string{"name"},

	// Explicit override: the type name would derive to "child_module_variable"
	// but the shipped template for variables has always been "variables".
	Template: "variables",
}

func (v *ChildModuleVariable) Describe() store.Descriptor { return childModuleVariableDescriptor }

func (v *ChildModuleVariable) Key() store.Key { return store.Key{v.Name} }

func (v *ChildModuleVariable) Fields() map[string]any {
	return map[string]any{
		"name":        v.Name,
		"type":        v.Type,
		"description": v.Description,
	}
}

func (v *ChildModuleVariable) String() string {
	return canonicalEntity(string(KindChildModuleVariable), v.Fields())
}

// CreateChildModuleVariable persists a variable record discovered from a
// module's variable file and returns it.
func CreateChildModuleVariable(p *Project, name string) (*ChildModuleVariable, error) {
	if name == "" {
		return nil, schemaErrorf(KindChildModuleVariable, "missing required field %q", "name")
	}
	v := &ChildModuleVariable{Name: name}
	if err := p.Store.Save(v); err != nil {
		return nil, err
	}
	return v, nil
}

// ChildModuleVariableByName looks up the single variable with the given name.
func ChildModuleVariableByName(st *store.Store, name string) (*ChildModuleVariable, error) {
	e, err := st.Get(KindChildModuleVariable, "name", name)
	if err != nil {
		return nil, err
	}
	return e.(*ChildModuleVariable), nil
}
