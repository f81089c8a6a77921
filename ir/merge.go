package ir

import (
	"cmp"
	"slices"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// StructuralOptions are the go-cmp options under which two IR values are
// considered structurally identical.
var StructuralOptions = gocmp.Options{
	cmpopts.EquateNaNs(),
	cmpopts.EquateEmpty(),
}

// Merge takes the union of documents by entity name. A material or group
// present in more than one document must be structurally identical in all of
// them, otherwise Merge fails with ErrMergeConflict. The result lists
// materials and groups sorted by name, so Merge is commutative and
// idempotent over non-conflicting inputs.
//
// Merge never normalizes entities before comparing them, and the result
// shares no nodes with its inputs.
func Merge(docs ...*Document) (*Document, error) {
	materials := make(map[string]Material)
	groups := make(map[string]Group)

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, m := range doc.Materials {
			if prev, ok := materials[m.Name]; ok {
				if diff := gocmp.Diff(prev, m, StructuralOptions); diff != "" {
					return nil, NewError(ErrMergeConflict, "material "+m.Name, "definitions differ (-first +second):\n%s", diff)
				}
				continue
			}
			materials[m.Name] = m
		}
		for _, g := range doc.Groups {
			if prev, ok := groups[g.Name]; ok {
				if diff := gocmp.Diff(prev, g, StructuralOptions); diff != "" {
					return nil, NewError(ErrMergeConflict, "group "+g.Name, "definitions differ (-first +second):\n%s", diff)
				}
				continue
			}
			groups[g.Name] = g
		}
	}

	out := &Document{
		Materials: sortedValues(materials, func(m Material) string { return m.Name }),
		Groups:    sortedValues(groups, func(g Group) string { return g.Name }),
	}
	return out.Clone(), nil
}

func sortedValues[T any](m map[string]T, name func(T) string) []T {
	if len(m) == 0 {
		return nil
	}
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b T) int { return cmp.Compare(name(a), name(b)) })
	return out
}
