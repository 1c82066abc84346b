package domain

import (
	"bytes"
	"encoding/json"
)

// decodeFields reads a JSON object of string values. JSON null is treated
// the same as an omitted key; unknown keys are kept and ignored later.
func decodeFields(data []byte) (map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{Reason: "invalid JSON body: " + err.Error()}
	}
	if raw == nil {
		return nil, &ValidationError{Reason: "request body must be a JSON object"}
	}

	out := make(map[string]string, len(raw))
	for key, val := range raw {
		if bytes.Equal(bytes.TrimSpace(val), []byte("null")) {
			continue
		}
		var s string
		if err := json.Unmarshal(val, &s); err != nil {
			return nil, &ValidationError{Field: key, Reason: reasonNotString}
		}
		out[key] = s
	}
	return out, nil
}

func requireKeys(in map[string]string, keys ...string) error {
	for _, k := range keys {
		if _, ok := in[k]; !ok {
			return &ValidationError{Field: k, Reason: reasonRequired}
		}
	}
	return nil
}

func lookup(in map[string]string, key string) *string {
	v, ok := in[key]
	if !ok {
		return nil
	}
	return &v
}

// parseEnum resolves raw against the allowed values and their aliases.
// An absent value resolves to def.
func parseEnum[T ~string](field string, raw *string, def T, allowed []T, aliases map[string]T) (T, error) {
	if raw == nil {
		return def, nil
	}
	for _, a := range allowed {
		if string(a) == *raw {
			return a, nil
		}
	}
	if v, ok := aliases[*raw]; ok {
		return v, nil
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return def, &ValidationError{Field: field, Value: *raw, Allowed: names}
}
