// Package parameters parses the "key=value,key=value" configuration strings
// accepted by the lvlmaze binaries.
package parameters

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Params maps configuration keys to their raw values.
type Params map[string]string

// NewFromConfigString splits config on commas and each part on the first
// '='. Keys are lower-cased and trimmed; a part without '=' maps to "".
// Empty parts are skipped.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		params[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return params
}

// PopParamOr is like GetParamOr, but it also deletes the key from params so
// that leftovers can be reported with Unknown.
func PopParamOr[T interface {
	bool | int | float64 | string
}](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr parses params[key] into T, or returns defaultValue when the
// key is absent. For bool, a key without a value means true.
func GetParamOr[T interface {
	bool | int | float64 | string
}](params Params, key string, defaultValue T) (T, error) {
	raw, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	var t T
	toT := func(v any) T { return v.(T) }
	switch any(defaultValue).(type) {
	case string:
		return toT(raw), nil
	case int:
		if raw == "" {
			return defaultValue, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return t, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, raw)
		}
		return toT(v), nil
	case float64:
		if raw == "" {
			return defaultValue, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return t, errors.Wrapf(err, "failed to parse configuration %s=%q to float", key, raw)
		}
		return toT(v), nil
	case bool:
		switch strings.ToLower(raw) {
		case "", "true", "1", "yes":
			return toT(true), nil
		case "false", "0", "no":
			return toT(false), nil
		}
		return defaultValue, errors.Errorf("failed to parse configuration %s=%q to bool", key, raw)
	}
	return defaultValue, nil
}

// Unknown returns an error naming every key left in params, or nil.
func Unknown(params Params) error {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return errors.Errorf("unknown configuration keys: %s", strings.Join(keys, ", "))
}
