// internal/objects/itservice.go
package objects

var itServiceSchema = &Schema{
	Kind:      KindITService,
	APIName:   "service",
	IDField:   "serviceid",
	TextField: "name",
	Relations: map[string]Relation{},
	Fields: map[string]Field{
		"serviceid": {Doc: "ID of the IT service.", ID: true, ReadOnly: true},
		"algorithm": {
			Doc: "Algorithm used to calculate the state of the IT service.", Type: TypeInt,
			Vals: map[int64]string{
				0: "do not calculate",
				1: "problem, if at least one child has a problem",
				2: "problem, if all children have problems",
			},
		},
		"name": {Doc: "Name of the IT service."},
		"showsla": {
			Doc: "Whether SLA should be calculated.", Type: TypeInt,
			Vals: map[int64]string{0: "do not calculate", 1: "calculate"},
		},
		"sortorder": {Doc: "Position of the IT service used for sorting.", Type: TypeInt},
		"goodsla":   {Doc: "Minimum acceptable SLA value.", Type: TypeFloat},
		"status":    {Doc: "Whether the IT service is in OK or problem state.", Type: TypeInt, ReadOnly: true},
	},
}
