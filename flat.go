package krona

import (
	"fmt"
	"maps"
)

// Build merges defaults into a flat configuration map and checks a
// required-key list, without any schema machinery. Keys already present
// in config always win over defaults, including keys holding zero
// values. Every key in required must be present and non-nil in the
// merged result, else Build fails with ErrMissingRequiredValue naming
// the first missing key in required order.
func Build(config map[string]any, required []string, defaults map[string]any) (map[string]any, error) {
	merged := make(map[string]any, len(config)+len(defaults))
	maps.Copy(merged, config)

	for key, value := range defaults {
		if _, present := merged[key]; !present {
			merged[key] = value
		}
	}

	for _, key := range required {
		if value, present := merged[key]; !present || value == nil {
			return nil, fmt.Errorf("key %q: %w", key, ErrMissingRequiredValue)
		}
	}

	return merged, nil
}

// Project filters a flat configuration map down to the keys listed in
// keep, skipping keys that are absent or nil. With fill set, keys from
// keep that fail that presence test are included with an explicit nil
// value instead of being omitted.
func Project(config map[string]any, keep []string, fill bool) map[string]any {
	projected := make(map[string]any, len(keep))

	for _, key := range keep {
		if value, present := config[key]; present && value != nil {
			projected[key] = value

			continue
		}

		if fill {
			projected[key] = nil
		}
	}

	return projected
}
