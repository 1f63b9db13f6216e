// internal/cli/params.go
package cli

import (
	"fmt"
	"strings"
)

// parseParams turns positional name:value tokens into API call parameters.
// The filter and search values are sub-maps serialized as
// name:v1,v2+name2:v3; boolean-looking values are coerced to true; limit,
// searchByAny and startSearch get defaults when absent.
func parseParams(tokens []string) (map[string]any, error) {
	params := make(map[string]any)
	for _, tok := range tokens {
		name, val, ok := strings.Cut(tok, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed parameter %q (want name:value)", tok)
		}
		params[name] = val
	}

	for _, sub := range []string{"filter", "search"} {
		raw, ok := params[sub].(string)
		if !ok {
			continue
		}
		m, err := parseSubMap(raw)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", sub, err)
		}
		params[sub] = m
	}

	for name, val := range params {
		if s, ok := val.(string); ok && boolish(s) {
			params[name] = true
		}
	}

	if _, ok := params["limit"]; !ok {
		params["limit"] = 10
	}
	if _, ok := params["searchByAny"]; !ok {
		params["searchByAny"] = false
	}
	if _, ok := params["startSearch"]; !ok {
		params["startSearch"] = true
	}
	return params, nil
}

func parseSubMap(raw string) (map[string]any, error) {
	m := make(map[string]any)
	for _, pair := range strings.Split(raw, "+") {
		name, val, ok := strings.Cut(pair, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed entry %q (want name:value)", pair)
		}
		m[name] = strings.Split(val, ",")
	}
	return m, nil
}

func boolish(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes":
		return true
	}
	return false
}
