package model

import (
	"sort"

	"github.com/theandrelima/terraframe/internal/store"
)

// Store kinds for every record type.
const (
	KindRemoteState         store.Kind = "remote_state"
	KindChildModuleVariable store.Kind = "child_module_variable"
	KindChildModuleOutput   store.Kind = "child_module_output"
	KindRemoteStateInput    store.Kind = "remote_state_input"
	KindChildModule         store.Kind = "child_module"
	KindDeployment          store.Kind = "deployment"
)

// canonicalSet sorts a reference collection by identity key and drops
// full-value duplicates. Reference collections inside an entity are always
// stored in this canonical order, never in insertion order.
func canonicalSet[T store.Entity](items []T) []T {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Key().Compare(items[j].Key()) < 0
	})
	out := items[:0:0]
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if s := it.String(); !seen[s] {
			seen[s] = true
			out = append(out, it)
		}
	}
	return out
}
