package enum

import (
	"fmt"
	"reflect"
)

var registry = map[reflect.Type]any{}

// New registers a value of a string-based enum type and returns it, so the
// registration can happen at the declaration of the value itself.
func New[T comparable](value T) T {
	t := reflect.TypeOf(value)
	m, ok := registry[t].(map[string]T)
	if !ok {
		m = map[string]T{}
		registry[t] = m
	}

	m[reflect.ValueOf(value).String()] = value
	return value
}

// ToEnum converts a raw string to a registered value of T.
func ToEnum[T comparable](s string) (T, error) {
	var zero T
	m, ok := registry[reflect.TypeOf(zero)].(map[string]T)
	if !ok {
		return zero, fmt.Errorf("not found enum type %T", zero)
	}

	value, ok := m[s]
	if !ok {
		return zero, fmt.Errorf("not found value %s in enum %T", s, zero)
	}

	return value, nil
}
