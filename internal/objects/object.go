// internal/objects/object.go
package objects

import (
	"fmt"
	"sort"
	"time"
)

// Object is one typed local record of a remote entity. Properties live in an
// explicit map keyed by field name; fields the schema does not declare are
// dropped at construction so newer server versions stay readable.
//
// Two independent fetches of the same remote entity produce two independent
// local instances; there is no identity map.
type Object struct {
	kind    Kind
	schema  *Schema
	session Session
	id      string
	props   map[string]*Property
	rels    map[string]*relCache
}

// New builds an Object of the given kind from a raw field mapping as decoded
// from the server's JSON. Embedded relation payloads are parsed eagerly;
// everything else resolves lazily through Related.
func New(session Session, kind Kind, raw map[string]any) (*Object, error) {
	schema, ok := SchemaFor(kind)
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
	o := &Object{
		kind:    kind,
		schema:  schema,
		session: session,
		props:   make(map[string]*Property),
		rels:    make(map[string]*relCache),
	}
	for name, field := range schema.Fields {
		v, ok := raw[name]
		if !ok || v == nil {
			continue
		}
		p := &Property{
			Name:     name,
			Doc:      field.Doc,
			Type:     field.Type,
			ReadOnly: field.ReadOnly,
			Vals:     field.Vals,
		}
		if err := p.Set(v); err != nil {
			return nil, fmt.Errorf("constructing %s: %w", kind, err)
		}
		p.clearDirty()
		o.props[name] = p
		if field.ID {
			o.id = asString(v)
		}
	}
	if err := o.seedRelations(raw); err != nil {
		return nil, fmt.Errorf("constructing %s: %w", kind, err)
	}
	if schema.seedRefs != nil {
		if err := schema.seedRefs(o, raw); err != nil {
			return nil, fmt.Errorf("constructing %s: %w", kind, err)
		}
	}
	return o, nil
}

func (o *Object) Kind() Kind       { return o.kind }
func (o *Object) Schema() *Schema  { return o.schema }
func (o *Object) Session() Session { return o.session }

// ID is the entity's identifier, or "" when the server never delivered the
// schema's id field. Without an id, queries by id (and saving) are
// impossible but read access stays valid.
func (o *Object) ID() string { return o.id }

// Prop looks up a property by field name; nil when the field was not present
// in the construction payload.
func (o *Object) Prop(name string) *Property { return o.props[name] }

// PropNames returns the populated field names, sorted.
func (o *Object) PropNames() []string {
	names := make([]string, 0, len(o.props))
	for name := range o.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Text returns the value of the kind's distinguishing field (a host's name,
// a trigger's description), falling back to the id.
func (o *Object) Text() string {
	if p := o.props[o.schema.TextField]; p != nil && p.IsSet() {
		return p.Str()
	}
	return o.id
}

// Map renders every populated property into a plain mapping suitable for
// JSON or YAML output. Timestamps are rendered in RFC 3339.
func (o *Object) Map() map[string]any {
	out := make(map[string]any, len(o.props))
	for name, p := range o.props {
		if t, ok := p.Value().(time.Time); ok {
			out[name] = t.Format(time.RFC3339)
			continue
		}
		out[name] = p.Value()
	}
	return out
}

// Save sends every dirty property, plus the identifier, in one best-effort
// <kind>.update call. Dirty flags clear only when the call succeeds.
func (o *Object) Save() error {
	params := make(map[string]any)
	var sent []*Property
	for name, p := range o.props {
		if p.Dirty() {
			params[name] = p.wire()
			sent = append(sent, p)
		}
	}
	if len(sent) == 0 {
		return nil
	}
	if o.id == "" {
		return fmt.Errorf("cannot save %s without %s", o.kind, o.schema.IDField)
	}
	params[o.schema.IDField] = o.id
	if _, err := o.session.Call(o.schema.APIName+".update", params); err != nil {
		return fmt.Errorf("saving %s %s: %w", o.kind, o.id, err)
	}
	for _, p := range sent {
		p.clearDirty()
	}
	return nil
}

func (o *Object) String() string {
	return fmt.Sprintf("%s=%s", o.kind, o.Text())
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
