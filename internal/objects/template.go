// internal/objects/template.go
package objects

import "encoding/json"

// Template is a monitoring template.
type Template struct {
	*Object
}

// AddHosts links the given hosts to this template via one mass-add call.
func (t *Template) AddHosts(hosts ...*Object) (json.RawMessage, error) {
	templates := []map[string]any{{"templateid": t.ID()}}
	hostRefs := make([]map[string]any, 0, len(hosts))
	for _, h := range hosts {
		hostRefs = append(hostRefs, map[string]any{"hostid": h.ID()})
	}
	return t.Session().Call("template.massadd", map[string]any{
		"templates": templates,
		"hosts":     hostRefs,
	})
}

// RemoveHosts unlinks the given hosts from this template.
func (t *Template) RemoveHosts(hosts ...*Object) (json.RawMessage, error) {
	hostIDs := make([]string, 0, len(hosts))
	for _, h := range hosts {
		hostIDs = append(hostIDs, h.ID())
	}
	return t.Session().Call("template.massremove", map[string]any{
		"templateids": []string{t.ID()},
		"hostids":     hostIDs,
	})
}

var templateSchema = &Schema{
	Kind:      KindTemplate,
	APIName:   "template",
	IDField:   "templateid",
	TextField: "name",
	DefaultSelects: []string{
		"selectHosts", "selectGroups", "selectItems", "selectTriggers", "selectMacros",
	},
	Relations: map[string]Relation{
		"hosts":    {Target: KindHost},
		"groups":   {Target: KindGroup},
		"items":    {Target: KindItem},
		"triggers": {Target: KindTrigger},
	},
	Fields: map[string]Field{
		"templateid":  {Doc: "ID of the template.", ID: true, ReadOnly: true},
		"template":    {Doc: "Technical name of the template."},
		"description": {Doc: "Description of the template."},
		"name":        {Doc: "Visible name of the template, defaults to the template property value."},
	},
}
