// Package store provides the single source of truth for every entity created
// during a conversion run.
//
// # Purpose
//
// The Store maps each entity kind to an ordered, deduplicated collection of
// instances, and is the only place where identity and uniqueness policy is
// enforced. All other components hold non-owning references obtained through
// Store lookups; no entity exists outside it.
//
// # Identity vs. equality
//
// Two notions are deliberately kept distinct:
//
//   - The identity key (Entity.Key) drives sort order and duplicate *detection*:
//     a strict kind rejects a second entity whose key equals an existing one.
//   - Set membership is decided by full-value equality, defined as equality of
//     the entities' canonical string forms (Entity.String). Saving an entity
//     whose full value already exists is an idempotent no-op.
//
// # Lifecycle
//
// A Store is created fresh for each conversion run and passed explicitly to
// every constructive call. Entities are created once, during the single
// top-to-bottom load of the YAML document, and are never updated or deleted.
package store
