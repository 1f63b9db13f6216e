// internal/objects/event.go
package objects

// Related-object type shared by events and problems: only object == 0 means
// the related object is a trigger.
const objectTrigger int64 = 0

// Event is one event generated by the server.
type Event struct {
	*Object
}

// Trigger resolves the trigger this event relates to. It is only meaningful
// when the event's object field says the related object is a trigger;
// anything else yields nil without a remote call. The first resolution is
// cached for the object's lifetime.
func (e *Event) Trigger() (*Object, error) {
	return relatedTrigger(e.Object)
}

// relatedTrigger implements the lazy trigger accessor shared by Event and
// Problem. The cache lives outside the declared relation set, so Related
// never exposes it.
func relatedTrigger(o *Object) (*Object, error) {
	obj := o.Prop("object")
	if obj == nil || !obj.IsSet() || obj.Int() != objectTrigger {
		return nil, nil
	}
	if cached, ok := o.relation("trigger"); ok {
		if len(cached) == 0 {
			return nil, nil
		}
		return cached[0], nil
	}
	oid := o.Prop("objectid")
	if oid == nil || !oid.IsSet() {
		return nil, nil
	}
	matches, err := o.Session().Fetch(KindTrigger, map[string]any{"triggerids": oid.Str()})
	if err != nil {
		return nil, err
	}
	o.setRelation("trigger", matches)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// seedRefs is attached after initialization: a literal field assignment
// would cycle through the registry (seedRelatedObject calls New).
func init() {
	eventSchema.seedRefs = seedRelatedObject
}

// seedRelatedObject parses an inlined relatedObject payload into the trigger
// cache when the related object is a trigger and the server sent a full
// record.
func seedRelatedObject(o *Object, raw map[string]any) error {
	obj := o.Prop("object")
	if obj == nil || !obj.IsSet() || obj.Int() != objectTrigger {
		return nil
	}
	rec, ok := raw["relatedObject"].(map[string]any)
	if !ok || rec[triggerSchema.TextField] == nil {
		return nil
	}
	trig, err := New(o.Session(), KindTrigger, rec)
	if err != nil {
		return err
	}
	o.setRelation("trigger", []*Object{trig})
	return nil
}

var eventSchema = &Schema{
	Kind:      KindEvent,
	APIName:   "event",
	IDField:   "eventid",
	TextField: "eventid",
	DefaultSelects: []string{
		"selectHosts", "selectRelatedObject", "selectTags",
	},
	Relations: map[string]Relation{
		"hosts": {Target: KindHost},
	},
	Fields: map[string]Field{
		"eventid": {Doc: "ID of the event.", ID: true, ReadOnly: true},
		"source": {
			Doc: "Type of the event.", Type: TypeInt, ReadOnly: true,
			Vals: map[int64]string{
				0: "event created by a trigger",
				1: "event created by a discovery rule",
				2: "event created by an active agent auto-registration",
				3: "internal event",
			},
		},
		"object": {
			Doc: "Type of object that is related to the event.", Type: TypeInt, ReadOnly: true,
			Vals: map[int64]string{
				0: "trigger", 1: "discovered host", 2: "discovered service",
				3: "auto-registered host", 4: "item", 5: "LLD rule",
			},
		},
		"objectid": {Doc: "ID of the related object.", ReadOnly: true},
		"clock":    {Doc: "Time when the event was created.", Type: TypeTime, ReadOnly: true},
		"ns":       {Doc: "Nanoseconds when the event was created.", Type: TypeInt, ReadOnly: true},
		"value": {
			Doc: "State of the related object.", Type: TypeInt, ReadOnly: true,
			Vals: map[int64]string{
				0: "{trigger:ok discovery:up internal:normal}",
				1: "{trigger:problem discovery:down internal:unknown}",
				2: "{discovery:discovered}",
				3: "{discovery:lost}",
			},
		},
		"userid": {Doc: "User ID if the event was manually closed.", ReadOnly: true},
	},
}
