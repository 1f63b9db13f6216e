// internal/objects/relations.go
package objects

import "fmt"

// A relation cache is an explicit three-state value: absent from the map
// (unresolved), loaded with an empty slice, or loaded with entities.
type relCache struct {
	objs []*Object
}

// seedRelations parses embedded relation payloads out of the raw construction
// mapping. A relation counts as embedded only when the server inlined full
// records, i.e. every element carries the target kind's distinguishing field.
// Bare id/count payloads leave the relation unresolved.
func (o *Object) seedRelations(raw map[string]any) error {
	for name, rel := range o.schema.Relations {
		list, ok := raw[name].([]any)
		if !ok {
			continue
		}
		target, ok := SchemaFor(rel.Target)
		if !ok {
			return fmt.Errorf("relation %s targets unknown kind %q", name, rel.Target)
		}
		objs := make([]*Object, 0, len(list))
		full := true
		for _, el := range list {
			m, ok := el.(map[string]any)
			if !ok || m[target.TextField] == nil {
				full = false
				break
			}
			child, err := New(o.session, rel.Target, m)
			if err != nil {
				return fmt.Errorf("relation %s: %w", name, err)
			}
			objs = append(objs, child)
		}
		if full {
			o.rels[name] = &relCache{objs: objs}
		}
	}
	return nil
}

// Related returns the named relation. An undeclared name yields (nil, nil);
// callers must check before assuming a relation exists. The first access of
// an unresolved relation issues one fetch filtered by this object's id; the
// result is cached for the object's lifetime, so a resolved-empty relation
// comes back as a non-nil empty slice with no further remote call.
func (o *Object) Related(name string) ([]*Object, error) {
	rel, declared := o.schema.Relations[name]
	if !declared {
		return nil, nil
	}
	if c, ok := o.rels[name]; ok {
		return c.objs, nil
	}
	if o.id == "" {
		return nil, fmt.Errorf("cannot resolve %s of %s without %s", name, o.kind, o.schema.IDField)
	}
	objs, err := o.session.Fetch(rel.Target, map[string]any{o.schema.IDParam(): o.id})
	if err != nil {
		return nil, fmt.Errorf("resolving %s of %s %s: %w", name, o.kind, o.id, err)
	}
	if objs == nil {
		objs = []*Object{}
	}
	o.rels[name] = &relCache{objs: objs}
	return objs, nil
}

// setRelation stores a resolved collection under name. Used by per-kind
// reference accessors that cache outside the declared relation set.
func (o *Object) setRelation(name string, objs []*Object) {
	if objs == nil {
		objs = []*Object{}
	}
	o.rels[name] = &relCache{objs: objs}
}

func (o *Object) relation(name string) ([]*Object, bool) {
	c, ok := o.rels[name]
	if !ok {
		return nil, false
	}
	return c.objs, true
}
