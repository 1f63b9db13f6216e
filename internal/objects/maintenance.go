// internal/objects/maintenance.go
package objects

// Maintenance windows carry no identifier field in their schema; they are
// queried by filter only, and instances built from them have an absent id.
var maintenanceSchema = &Schema{
	Kind:      KindMaintenance,
	APIName:   "maintenance",
	IDField:   "maintenanceid",
	TextField: "name",
	DefaultSelects: []string{
		"selectHosts", "selectGroups", "selectTimeperiods",
	},
	Relations: map[string]Relation{
		"hosts":  {Target: KindHost},
		"groups": {Target: KindGroup},
	},
	Fields: map[string]Field{
		"name":        {Doc: "Maintenance period name."},
		"description": {Doc: "Description of the maintenance."},
		"maintenance_type": {
			Doc: "Type of maintenance.", Type: TypeInt,
			Vals: map[int64]string{
				0: "with data collection (default)",
				1: "without data collection",
			},
		},
		"active_since": {Doc: "Time when the maintenance becomes active."},
		"active_till":  {Doc: "Time when the maintenance stops being active."},
	},
}
