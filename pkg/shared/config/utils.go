package config

import "reflect"

// SetThen selects value if it is set, otherwise the default.
func SetThen[T any](value T, defaultValue T) T {
	if reflect.ValueOf(value).IsZero() {
		return defaultValue
	}
	return value
}

// GetBoolValue dereferences an optional boolean directive, falling back to
// defaultValue when the directive is absent from the YAML file.
func GetBoolValue(value *bool, defaultValue bool) bool {
	if value == nil {
		return defaultValue
	}
	return *value
}

// GetFloatValue dereferences an optional float directive, falling back to
// defaultValue when the directive is absent from the YAML file.
func GetFloatValue(value *float64, defaultValue float64) float64 {
	if value == nil {
		return defaultValue
	}
	return *value
}
