// Package model defines the typed records a conversion run is built from and
// the construction logic that turns YAML directive payloads into them.
//
// # Core concepts
//
//   - RemoteState: a named external state backend whose outputs can be wired
//     into child module variables. Declared directly in YAML.
//
//   - ChildModule: a reusable infrastructure unit invoked by a deployment. Its
//     input variables are never listed by the author; they are discovered by
//     scanning the variable-declaration file of the module's source directory.
//
//   - ChildModuleVariable / ChildModuleOutput / RemoteStateInputBinding: the
//     leaf records a ChildModule is assembled from. A binding ties one module
//     variable to one named output of one remote state.
//
//   - Deployment: a top-level unit that references already-created child
//     modules and, through their bindings, the remote states they depend on.
//     Deployments are strictly unique by (index, name).
//
// Every record exposes one constructive operation, Create*, which validates
// the payload, converts nested mappings to their canonical representation,
// resolves cross-references by Store lookup (constructors receive identifying
// scalars from the loader, never entities), persists the instance and returns
// it. Directive-addressable records additionally expose a bulk factory used by
// the loader, registered in a Registry in dependency order.
//
// Records are immutable after construction. The one derived field, a
// deployment's variable-to-remote-state-output map, is computed inside
// CreateDeployment before the entity is saved.
package model
