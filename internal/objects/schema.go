// internal/objects/schema.go
package objects

import (
	"encoding/json"
	"sort"
)

// Kind names one of the entity kinds the client models. The set is closed:
// schemas are declared at compile time and resolved through the registry,
// never through reflection.
type Kind string

const (
	KindHost        Kind = "host"
	KindGroup       Kind = "group"
	KindTemplate    Kind = "template"
	KindItem        Kind = "item"
	KindTrigger     Kind = "trigger"
	KindEvent       Kind = "event"
	KindProblem     Kind = "problem"
	KindMaintenance Kind = "maintenance"
	KindApplication Kind = "application"
	KindITService   Kind = "itservice"
)

// Field is the static declaration of one schema field.
type Field struct {
	Doc      string
	Type     FieldType
	ID       bool
	ReadOnly bool
	Vals     map[int64]string
}

// Relation declares a named collection of related entities an object of this
// kind may expose.
type Relation struct {
	Target Kind
}

// Session is the remote-call surface objects need. Implemented by
// api.Session; tests substitute fakes.
type Session interface {
	Call(method string, params any) (json.RawMessage, error)
	Fetch(kind Kind, params map[string]any) ([]*Object, error)
}

// Schema is the static per-kind declaration. Instances are package-level
// values registered below and never mutated at runtime.
type Schema struct {
	Kind      Kind
	APIName   string // method prefix on the wire, e.g. "hostgroup"
	IDField   string // identifier field used in filters, e.g. "hostid"
	TextField string // distinguishing field of an embedded full record

	// DefaultSelects are select<X> params Fetch adds unless the caller
	// already specified them.
	DefaultSelects []string

	Relations map[string]Relation
	Fields    map[string]Field

	// seedRefs lets a kind parse non-relation references embedded in the
	// raw payload (an event's relatedObject, for instance).
	seedRefs func(o *Object, raw map[string]any) error
}

// IDParam returns the plural filter key for this kind's identifier,
// e.g. "hostids".
func (s *Schema) IDParam() string { return s.IDField + "s" }

var registry = map[Kind]*Schema{
	KindHost:        hostSchema,
	KindGroup:       groupSchema,
	KindTemplate:    templateSchema,
	KindItem:        itemSchema,
	KindTrigger:     triggerSchema,
	KindEvent:       eventSchema,
	KindProblem:     problemSchema,
	KindMaintenance: maintenanceSchema,
	KindApplication: applicationSchema,
	KindITService:   itServiceSchema,
}

// SchemaFor resolves a kind to its schema.
func SchemaFor(kind Kind) (*Schema, bool) {
	s, ok := registry[kind]
	return s, ok
}

// KindByName resolves a user-supplied entity name. Both the kind name and
// the wire name are accepted ("group" and "hostgroup" are the same kind).
func KindByName(name string) (Kind, bool) {
	if _, ok := registry[Kind(name)]; ok {
		return Kind(name), true
	}
	for kind, s := range registry {
		if s.APIName == name {
			return kind, true
		}
	}
	return "", false
}

// Kinds returns every registered kind, sorted.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
