// Package args holds the argument bag type shared by the registry, the
// declaration loaders and the application, together with the helpers used to
// merge and inspect bags.
package args

import (
	"maps"
	"slices"
)

// Bag maps parameter names to values. It may carry keys that the target of a
// call does not accept.
type Bag map[string]any

// Keys returns the bag's keys in sorted order.
func Keys(b Bag) []string {
	return slices.Sorted(maps.Keys(b))
}

// Clone returns a deep copy of b. Nested maps and slices are copied; other
// values are shared.
func Clone(b Bag) Bag {
	if b == nil {
		return nil
	}
	out := make(Bag, len(b))
	for k, v := range b {
		out[k] = cloneValue(v)
	}
	return out
}

// Patch returns a copy of tgt extended with every item of src whose key is
// missing from tgt. When both sides hold a map under the same key, that map is
// patched recursively. Neither input is modified.
func Patch(tgt, src Bag) Bag {
	patched := Clone(tgt)
	if patched == nil {
		patched = make(Bag, len(src))
	}
	for key, value := range src {
		existing, ok := patched[key]
		if !ok {
			patched[key] = cloneValue(value)
			continue
		}
		srcMap, srcIsMap := asMap(value)
		tgtMap, tgtIsMap := asMap(existing)
		if srcIsMap && tgtIsMap {
			patched[key] = map[string]any(Patch(tgtMap, srcMap))
		}
	}
	return patched
}

func asMap(v any) (Bag, bool) {
	switch m := v.(type) {
	case map[string]any:
		return Bag(m), true
	case Bag:
		return m, true
	}
	return nil, false
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return map[string]any(Clone(Bag(t)))
	case Bag:
		return Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = cloneValue(elem)
		}
		return out
	}
	return v
}
