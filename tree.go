// Package krona provides schema-driven validation and path-based access
// for nested configuration trees.
//
// A configuration tree is a string-keyed map whose values are scalars,
// nested trees, or deferred values created with Lazy. Validate applies a
// declarative Schema to a tree (defaults, required keys, transforms,
// predicates, nested schemas) and returns a new, normalized tree. Get
// resolves dotted paths into a tree, unwrapping a LazyValue at the
// terminal position. Build and Project cover the flat, schema-less cases.
//
// Trees are never mutated by this package; every validation call returns
// a newly built tree, so concurrent reads of the same tree are safe.
package krona

// Tree is a nested configuration structure keyed by strings.
// Values may be scalars, nested trees (Tree or plain map[string]any,
// as produced by the format parsers in loader/...), or *LazyValue.
type Tree map[string]any

// asTree reports whether v is a configuration tree, in either its
// named or raw map form.
func asTree(v any) (Tree, bool) {
	switch t := v.(type) {
	case Tree:
		return t, true
	case map[string]any:
		return t, true
	default:
		return nil, false
	}
}
