package krona

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidSchemaRule is returned when a raw schema definition carries
// an unrecognized rule name or a wrongly typed rule value.
var ErrInvalidSchemaRule = errors.New("invalid schema rule")

// ErrMissingRequiredValue is returned when a required key resolves to
// nil after defaulting and transformation, or when a flat required-key
// check fails.
var ErrMissingRequiredValue = errors.New("missing required value")

// ErrSchemaMismatch is returned when a validation predicate rejects a
// non-nil value.
var ErrSchemaMismatch = errors.New("schema mismatch")

// TransformFunc rewrites a resolved configuration value before the
// required check and the validation predicate run.
type TransformFunc func(any) any

// ValidateFunc judges a resolved configuration value. Returning false
// fails validation with ErrSchemaMismatch.
type ValidateFunc func(any) bool

// Rule is the set of constraints applied to a single configuration key.
// Every field except Key is optional; the zero value accepts anything.
type Rule struct {
	// Key is the configuration key this rule governs.
	Key string
	// Default is used when the key is wholly absent from the input.
	// An explicit nil value in the input does not trigger the default.
	Default any
	// Required fails validation when the resolved value is nil.
	Required bool
	// Schema validates a nested tree under this key. When the resolved
	// value is not a tree, the nested schema is skipped silently.
	Schema Schema
	// Transform, when set, replaces the resolved value. It runs even
	// when the value is nil or came from Default.
	Transform TransformFunc
	// Validate, when set, is applied to non-nil values only.
	Validate ValidateFunc
}

// Schema is an ordered list of rules. Rules are applied in slice order,
// which fixes both the order of transform/predicate side effects and
// which violation is reported first.
type Schema []Rule

// Recognized rule names for raw schema definitions passed to ParseSchema.
const (
	ruleDefault   = "default"
	ruleRequired  = "required"
	ruleSchema    = "schema"
	ruleTransform = "transform"
	ruleValidate  = "validate"
)

// ParseSchema checks that a raw schema definition is well-formed and
// converts it into a typed Schema. Each key must map to a rule set
// containing only the recognized rule names (default, required, schema,
// transform, validate) with correctly typed values; anything else fails
// with ErrInvalidSchemaRule naming the offending key. Nested schemas
// are checked depth-first, and a malformed nested rule set is reported
// under its own key, without the outer key as a prefix.
//
// Only the shape of the definition is checked here; the configuration
// data itself is judged later by Validate. Raw maps carry no key order,
// so rules are emitted in sorted-key order.
func ParseSchema(raw map[string]any) (Schema, error) {
	schema := make(Schema, 0, len(raw))

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		ruleSet, ok := raw[key].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q: rule set is not a mapping: %w", key, ErrInvalidSchemaRule)
		}

		rule, err := parseRule(key, ruleSet)
		if err != nil {
			return nil, err
		}

		schema = append(schema, rule)
	}

	return schema, nil
}

func parseRule(key string, ruleSet map[string]any) (Rule, error) {
	rule := Rule{Key: key}

	for name, value := range ruleSet {
		switch name {
		case ruleDefault:
			rule.Default = value
		case ruleRequired:
			required, ok := value.(bool)
			if !ok {
				return Rule{}, fmt.Errorf("key %q: required must be a bool: %w", key, ErrInvalidSchemaRule)
			}

			rule.Required = required
		case ruleSchema:
			nested, ok := value.(map[string]any)
			if !ok {
				return Rule{}, fmt.Errorf("key %q: schema must be a mapping: %w", key, ErrInvalidSchemaRule)
			}

			// Nested failures keep the inner key name only; callers
			// relying on error text see the same key a flat schema
			// definition would have produced.
			nestedSchema, err := ParseSchema(nested)
			if err != nil {
				return Rule{}, err
			}

			rule.Schema = nestedSchema
		case ruleTransform:
			transform, ok := asTransform(value)
			if !ok {
				return Rule{}, fmt.Errorf("key %q: transform must be a func(any) any: %w", key, ErrInvalidSchemaRule)
			}

			rule.Transform = transform
		case ruleValidate:
			validate, ok := asValidate(value)
			if !ok {
				return Rule{}, fmt.Errorf("key %q: validate must be a func(any) bool: %w", key, ErrInvalidSchemaRule)
			}

			rule.Validate = validate
		default:
			return Rule{}, fmt.Errorf("key %q: unrecognized rule %q: %w", key, name, ErrInvalidSchemaRule)
		}
	}

	return rule, nil
}

func asTransform(v any) (TransformFunc, bool) {
	switch fn := v.(type) {
	case TransformFunc:
		return fn, fn != nil
	case func(any) any:
		return fn, fn != nil
	default:
		return nil, false
	}
}

func asValidate(v any) (ValidateFunc, bool) {
	switch fn := v.(type) {
	case ValidateFunc:
		return fn, fn != nil
	case func(any) bool:
		return fn, fn != nil
	default:
		return nil, false
	}
}
