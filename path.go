package krona

import "strings"

// DefaultDelimiter separates key segments in a dotted path.
const DefaultDelimiter = "."

// Get resolves a dotted path into tree and returns the value found
// there, or nil if any segment is absent or descends through a
// non-tree value. A *LazyValue at the terminal position is resolved.
func Get(tree Tree, path string) any {
	return GetDelim(tree, path, DefaultDelimiter)
}

// GetDelim is Get with a custom path delimiter.
func GetDelim(tree Tree, path, delimiter string) any {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	return GetPath(tree, strings.Split(path, delimiter)...)
}

// GetPath resolves a pre-split key sequence into tree. Lookup never
// fails: unknown keys at any level, and paths that run longer than the
// tree is deep, resolve to nil.
func GetPath(tree Tree, keys ...string) any {
	if len(keys) == 0 {
		return nil
	}

	value, ok := tree[keys[0]]
	if !ok {
		return nil
	}

	if rest := keys[1:]; len(rest) > 0 {
		sub, isTree := asTree(value)
		if !isTree {
			return nil
		}

		return GetPath(sub, rest...)
	}

	if lazy, isLazy := value.(*LazyValue); isLazy {
		return lazy.Resolve()
	}

	return value
}
