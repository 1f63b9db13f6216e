// internal/output/output.go
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"
)

// Renderer serializes query results for the terminal. An optional jq
// program post-processes the result before encoding; like the original
// tooling, only the program's first output value is kept.
type Renderer struct {
	Format string // "json" or "yaml"
	Query  string // optional jq program
}

func (r *Renderer) Render(w io.Writer, v any) error {
	if r.Query != "" {
		filtered, err := applyQuery(r.Query, v)
		if err != nil {
			return err
		}
		v = filtered
	}
	switch r.Format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", r.Format)
	}
}

func applyQuery(program string, v any) (any, error) {
	query, err := gojq.Parse(program)
	if err != nil {
		return nil, fmt.Errorf("bad jq program: %w", err)
	}

	// gojq only accepts plain decoded values, so round-trip through json.
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, err
	}

	iter := query.Run(plain)
	out, ok := iter.Next()
	if !ok {
		return nil, nil
	}
	if err, isErr := out.(error); isErr {
		return nil, fmt.Errorf("jq: %w", err)
	}
	return out, nil
}
