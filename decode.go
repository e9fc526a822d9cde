package krona

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Unmarshal decodes a configuration tree into the struct pointed to by
// target, matching fields by `mapstructure` tags. Duration fields
// accept time.ParseDuration strings. Typically called on the output of
// Validate, after defaults and transforms have been applied.
func Unmarshal(tree Tree, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("building decoder: %w", err)
	}

	err = decoder.Decode(map[string]any(tree))
	if err != nil {
		return fmt.Errorf("decoding tree: %w", err)
	}

	return nil
}
