// internal/objects/property.go
package objects

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FieldType is the semantic kind of a schema field. Every raw value coming
// off the wire is textual; the type decides how it is coerced before storage.
type FieldType int

const (
	TypeText FieldType = iota
	TypeInt
	TypeFloat
	TypeTime
)

func (t FieldType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeTime:
		return "time"
	default:
		return "text"
	}
}

// InvalidValueError reports a local validation failure: a coercion error, an
// enumeration miss, or a write to an already-populated read-only property.
type InvalidValueError struct {
	Prop   string
	Reason string
	Value  any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s: %v", e.Prop, e.Reason, e.Value)
}

// Property wraps a single typed, validated, change-tracked field of an
// Object. The stored value is always coerced; Vals, when present, restricts
// an integer property to an enumerated set of raw values.
type Property struct {
	Name     string
	Doc      string
	Type     FieldType
	ReadOnly bool
	Vals     map[int64]string

	val   any // string, int64, float64 or time.Time once set
	set   bool
	dirty bool
}

// Set coerces v through the property's declared type and stores it. The
// dirty flag is raised only when the coerced value differs from the current
// one. A read-only property accepts exactly one value; anything after that
// fails. On any failure the stored value is left untouched.
func (p *Property) Set(v any) error {
	coerced, err := p.coerce(v)
	if err != nil {
		return &InvalidValueError{Prop: p.Name, Reason: err.Error(), Value: v}
	}
	if p.ReadOnly && p.set {
		return &InvalidValueError{
			Prop:   p.Name,
			Reason: fmt.Sprintf("read-only property already defined as %v", p.val),
			Value:  v,
		}
	}
	if p.set && p.equal(coerced) {
		return nil
	}
	if p.Vals != nil {
		n, ok := coerced.(int64)
		if !ok {
			return &InvalidValueError{Prop: p.Name, Reason: "enumerated property is not integer-typed", Value: v}
		}
		if _, ok := p.Vals[n]; !ok {
			return &InvalidValueError{Prop: p.Name, Reason: "not an acceptable value", Value: v}
		}
	}
	p.val = coerced
	p.set = true
	p.dirty = true
	return nil
}

func (p *Property) coerce(v any) (any, error) {
	switch p.Type {
	case TypeText:
		switch x := v.(type) {
		case string:
			return x, nil
		case bool:
			return strconv.FormatBool(x), nil
		case int, int64, float64:
			return fmt.Sprint(x), nil
		}
		return nil, fmt.Errorf("cannot coerce %T to text", v)

	case TypeInt:
		n, err := toInt64(v)
		if err != nil {
			return nil, err
		}
		return n, nil

	case TypeFloat:
		switch x := v.(type) {
		case float64:
			return x, nil
		case int:
			return float64(x), nil
		case int64:
			return float64(x), nil
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
			if err != nil {
				return nil, fmt.Errorf("cannot coerce %q to float", x)
			}
			return f, nil
		}
		return nil, fmt.Errorf("cannot coerce %T to float", v)

	case TypeTime:
		// Raw value is an integer count of seconds since the epoch, UTC.
		if t, ok := v.(time.Time); ok {
			return t.UTC(), nil
		}
		n, err := toInt64(v)
		if err != nil {
			return nil, err
		}
		return time.Unix(n, 0).UTC(), nil
	}
	return nil, fmt.Errorf("unknown field type %d", p.Type)
}

func toInt64(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("%v is not a whole number", x)
		}
		return int64(x), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot coerce %q to int", x)
		}
		return n, nil
	}
	return 0, fmt.Errorf("cannot coerce %T to int", v)
}

func (p *Property) equal(coerced any) bool {
	if t, ok := p.val.(time.Time); ok {
		u, ok := coerced.(time.Time)
		return ok && t.Equal(u)
	}
	return p.val == coerced
}

// IsSet reports whether the property has ever held a value.
func (p *Property) IsSet() bool { return p.set }

// Dirty reports whether the value changed since construction or last save.
func (p *Property) Dirty() bool { return p.dirty }

// Value returns the coerced value, or nil when unset.
func (p *Property) Value() any {
	if !p.set {
		return nil
	}
	return p.val
}

// Str returns the value rendered as text, or "" when unset.
func (p *Property) Str() string {
	if !p.set {
		return ""
	}
	if s, ok := p.val.(string); ok {
		return s
	}
	return fmt.Sprint(p.val)
}

func (p *Property) Int() int64 {
	n, _ := p.val.(int64)
	return n
}

func (p *Property) Float() float64 {
	f, _ := p.val.(float64)
	return f
}

func (p *Property) Time() time.Time {
	t, _ := p.val.(time.Time)
	return t
}

// Label returns the enumeration label for the current value, or "" when the
// property is unset or not enumerated.
func (p *Property) Label() string {
	if !p.set || p.Vals == nil {
		return ""
	}
	n, ok := p.val.(int64)
	if !ok {
		return ""
	}
	return p.Vals[n]
}

// wire returns the value in the form the server expects in request params.
func (p *Property) wire() any {
	if t, ok := p.val.(time.Time); ok {
		return t.Unix()
	}
	return p.val
}

func (p *Property) clearDirty() { p.dirty = false }
