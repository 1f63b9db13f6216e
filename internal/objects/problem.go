// internal/objects/problem.go
package objects

// Problem is a problem event that has not been resolved yet. Problems are
// keyed by the id of the event that opened them.
type Problem struct {
	*Object
}

// Event lazily resolves the event that opened this problem.
func (p *Problem) Event() (*Object, error) {
	if cached, ok := p.relation("event"); ok {
		if len(cached) == 0 {
			return nil, nil
		}
		return cached[0], nil
	}
	if p.ID() == "" {
		return nil, nil
	}
	matches, err := p.Session().Fetch(KindEvent, map[string]any{"eventids": p.ID()})
	if err != nil {
		return nil, err
	}
	p.setRelation("event", matches)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// Trigger resolves the trigger this problem relates to; nil unless the
// related object is a trigger.
func (p *Problem) Trigger() (*Object, error) {
	return relatedTrigger(p.Object)
}

var problemSchema = &Schema{
	Kind:      KindProblem,
	APIName:   "problem",
	IDField:   "eventid",
	TextField: "eventid",
	Relations: map[string]Relation{},
	Fields: map[string]Field{
		"eventid": {Doc: "ID of the problem event.", ID: true, ReadOnly: true},
		"source": {
			Doc: "Type of the problem event.", Type: TypeInt,
			Vals: map[int64]string{0: "event created by a trigger", 3: "internal event"},
		},
		"object": {
			Doc: "Type of object that is related to the problem event.", Type: TypeInt,
			Vals: map[int64]string{0: "trigger", 4: "item", 5: "LLD rule"},
		},
		"objectid": {Doc: "ID of the related object.", ReadOnly: true},
		"clock":    {Doc: "Time when the problem event was created.", Type: TypeTime, ReadOnly: true},
	},
}
