// internal/objects/application.go
package objects

import "encoding/json"

// Application is a named grouping of items on a host.
type Application struct {
	*Object
}

// Delete removes this application on the server.
func (a *Application) Delete() (json.RawMessage, error) {
	return a.Session().Call("application.delete", []string{a.ID()})
}

var applicationSchema = &Schema{
	Kind:      KindApplication,
	APIName:   "application",
	IDField:   "applicationid",
	TextField: "name",
	Relations: map[string]Relation{
		"hosts":     {Target: KindHost},
		"items":     {Target: KindItem},
		"templates": {Target: KindTemplate},
	},
	Fields: map[string]Field{
		"applicationid": {Doc: "ID of the application.", ID: true, ReadOnly: true},
		"hostid":        {Doc: "ID of the host that the application belongs to."},
		"name":          {Doc: "Name of the application."},
		"flags": {
			Doc: "Origin of the application.", Type: TypeInt,
			Vals: map[int64]string{0: "a plain application", 4: "a discovered application"},
		},
	},
}
