package krona

import (
	"fmt"
	"strings"
)

// ValidateOption configures a Validate call.
type ValidateOption func(*validateOptions)

type validateOptions struct {
	delimiter string
	namespace string
}

// WithDelimiter sets the delimiter used to build dotted key paths in
// error messages and nested namespaces. Defaults to DefaultDelimiter.
func WithDelimiter(delimiter string) ValidateOption {
	return func(opts *validateOptions) {
		opts.delimiter = delimiter
	}
}

// WithNamespace prefixes all reported key paths with a namespace.
// Useful when the validated tree is itself a subtree of a larger
// configuration.
func WithNamespace(namespace string) ValidateOption {
	return func(opts *validateOptions) {
		opts.namespace = namespace
	}
}

// Validate applies schema to config and returns a new, normalized tree.
// The input tree and schema are never mutated.
//
// Rules run in schema order. For each rule the value is resolved from
// config, falling back to Rule.Default only when the key is wholly
// absent; Rule.Transform then rewrites it (even a nil value); a nil
// result under Required fails with ErrMissingRequiredValue; a tree
// value with a nested Rule.Schema is validated recursively under the
// rule's dotted path; and Rule.Validate, applied to non-nil values,
// fails with ErrSchemaMismatch when it returns false. Failures name the
// fully qualified dotted path of the offending key.
//
// The output contains exactly the keys the schema names: input keys
// without a rule are dropped, so validation is a projection, not a
// merge. Processing stops at the first violation.
//
// A nested Rule.Schema whose value turns out not to be a tree (a
// scalar, or nil) is skipped without error. This permissiveness is
// deliberate and long-standing; callers wanting structural strictness
// can express it with a Validate predicate on the parent key.
func Validate(config Tree, schema Schema, opts ...ValidateOption) (Tree, error) {
	options := validateOptions{delimiter: DefaultDelimiter}

	for _, apply := range opts {
		apply(&options)
	}

	if options.delimiter == "" {
		options.delimiter = DefaultDelimiter
	}

	return validateTree(config, schema, options.delimiter, options.namespace)
}

func validateTree(config Tree, schema Schema, delimiter, namespace string) (Tree, error) {
	normalized := make(Tree, len(schema))

	for _, rule := range schema {
		path := strings.Trim(namespace+delimiter+rule.Key, delimiter)

		value, present := config[rule.Key]
		if !present {
			value = rule.Default
		}

		if rule.Transform != nil {
			value = rule.Transform(value)
		}

		if rule.Required && value == nil {
			return nil, fmt.Errorf("path %q: %w", path, ErrMissingRequiredValue)
		}

		if sub, isTree := asTree(value); isTree && rule.Schema != nil {
			nested, err := validateTree(sub, rule.Schema, delimiter, path)
			if err != nil {
				return nil, err
			}

			value = nested
		}

		if rule.Validate != nil && value != nil && !rule.Validate(value) {
			return nil, fmt.Errorf("path %q: %w", path, ErrSchemaMismatch)
		}

		normalized[rule.Key] = value
	}

	return normalized, nil
}
