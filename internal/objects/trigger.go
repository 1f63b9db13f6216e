// internal/objects/trigger.go
package objects

// Trigger severities, see the priority property.
const (
	PriorityNotClassified int64 = 0
	PriorityInformation   int64 = 1
	PriorityWarning       int64 = 2
	PriorityAverage       int64 = 3
	PriorityHigh          int64 = 4
	PriorityDisaster      int64 = 5
)

var triggerSchema = &Schema{
	Kind:      KindTrigger,
	APIName:   "trigger",
	IDField:   "triggerid",
	TextField: "description",
	DefaultSelects: []string{
		"selectItems", "selectFunctions", "selectDependencies",
		"selectDiscoveryRule", "selectLastEvent", "selectTags",
	},
	Relations: map[string]Relation{
		"hosts":  {Target: KindHost},
		"groups": {Target: KindGroup},
	},
	Fields: map[string]Field{
		"triggerid":   {Doc: "ID of the trigger.", ID: true, ReadOnly: true},
		"description": {Doc: "Name of the trigger."},
		"expression":  {Doc: "Reduced trigger expression."},
		"comments":    {Doc: "Additional comments to the trigger."},
		"error":       {Doc: "Error text if there have been any problems updating the state of the trigger.", ReadOnly: true},
		"flags": {
			Doc: "Origin of the trigger.", Type: TypeInt, ReadOnly: true,
			Vals: map[int64]string{0: "a plain trigger (default)", 4: "a discovered trigger"},
		},
		"lastchange": {Doc: "Time when the trigger last changed its state.", Type: TypeTime, ReadOnly: true},
		"priority": {
			Doc: "Severity of the trigger.", Type: TypeInt,
			Vals: map[int64]string{
				0: "not classified (default)", 1: "information", 2: "warning",
				3: "average", 4: "high", 5: "disaster",
			},
		},
		"state": {
			Doc: "State of the trigger.", Type: TypeInt, ReadOnly: true,
			Vals: map[int64]string{
				0: "trigger state is up to date (default)",
				1: "current trigger state is unknown",
			},
		},
		"status": {
			Doc: "Whether the trigger is enabled or disabled.", Type: TypeInt,
			Vals: map[int64]string{0: "enabled (default)", 1: "disabled"},
		},
		"templateid": {Doc: "ID of the parent template trigger.", ReadOnly: true},
		"type": {
			Doc: "Whether the trigger can generate multiple problem events.", Type: TypeInt,
			Vals: map[int64]string{
				0: "do not generate multiple events (default)",
				1: "generate multiple events",
			},
		},
		"url": {Doc: "URL associated with the trigger."},
		"value": {
			Doc: "Whether the trigger is in OK or problem state.", Type: TypeInt, ReadOnly: true,
			Vals: map[int64]string{0: "ok", 1: "problem"},
		},
		"recovery_mode": {
			Doc: "OK event generation mode.", Type: TypeInt,
			Vals: map[int64]string{0: "expression (default)", 1: "recovery expression", 2: "none"},
		},
		"recovery_expression": {Doc: "Reduced trigger recovery expression."},
		"correlation_mode": {
			Doc: "OK event closes.", Type: TypeInt,
			Vals: map[int64]string{0: "all problems (default)", 1: "all problems if tag values match"},
		},
		"correlation_tag": {Doc: "Tag for matching."},
		"manual_close": {
			Doc: "Allow manual close.", Type: TypeInt,
			Vals: map[int64]string{0: "no (default)", 1: "yes"},
		},
	},
}
