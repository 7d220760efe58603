package config

import (
	"fmt"
	"strconv"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// UnknownKeyError is returned for keys that were never registered.
type UnknownKeyError struct {
	Key string
	// Closest is the registered key with the smallest edit distance.
	Closest string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s, did you mean %s?", e.Key, e.Closest)
}

// Lookup returns the field registered under k.
func Lookup(k string) (Field, error) {
	if f, ok := Default[k]; ok {
		return f, nil
	}

	closest := lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return Field{}, &UnknownKeyError{Key: k, Closest: closest}
}

// Parse converts command-line values into the type of the field.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no value for %s", f.Key)
	}

	switch f.Value.(type) {
	case string:
		return values[0], nil
	case int:
		v, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %q", f.Key, values[0])
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %q", f.Key, values[0])
		}
		return v, nil
	case []string:
		return values, nil
	default:
		return nil, fmt.Errorf("unsupported type %s for %s", f.TypeName(), f.Key)
	}
}
