// internal/objects/group.go
package objects

import (
	"encoding/json"
	"fmt"
)

// Group is a host group. On the wire the kind is named "hostgroup".
type Group struct {
	*Object
}

// CreateGroup creates a new host group and returns its id.
func CreateGroup(s Session, name string) (string, error) {
	raw, err := s.Call("hostgroup.create", map[string]any{"name": name})
	if err != nil {
		return "", err
	}
	var result struct {
		GroupIDs []string `json:"groupids"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("decoding hostgroup.create result: %w", err)
	}
	if len(result.GroupIDs) == 0 {
		return "", fmt.Errorf("hostgroup.create returned no id")
	}
	return result.GroupIDs[0], nil
}

// AddHosts adds the given hosts to this group via one mass-add call. The
// remote result is returned verbatim; local relation caches are not touched,
// so a host the server did not actually add is never reflected as added.
func (g *Group) AddHosts(hosts ...*Object) (json.RawMessage, error) {
	groups := []map[string]any{{"groupid": g.ID()}}
	hostRefs := make([]map[string]any, 0, len(hosts))
	for _, h := range hosts {
		hostRefs = append(hostRefs, map[string]any{"hostid": h.ID()})
	}
	return g.Session().Call("hostgroup.massadd", map[string]any{
		"groups": groups,
		"hosts":  hostRefs,
	})
}

// RemoveHosts removes the given hosts from this group.
func (g *Group) RemoveHosts(hosts ...*Object) (json.RawMessage, error) {
	hostIDs := make([]string, 0, len(hosts))
	for _, h := range hosts {
		hostIDs = append(hostIDs, h.ID())
	}
	return g.Session().Call("hostgroup.massremove", map[string]any{
		"groupids": []string{g.ID()},
		"hostids":  hostIDs,
	})
}

var groupSchema = &Schema{
	Kind:      KindGroup,
	APIName:   "hostgroup",
	IDField:   "groupid",
	TextField: "name",
	DefaultSelects: []string{
		"selectHosts", "selectDiscoveryRule", "selectGroupDiscovery", "selectTemplates",
	},
	Relations: map[string]Relation{
		"hosts":     {Target: KindHost},
		"templates": {Target: KindTemplate},
	},
	Fields: map[string]Field{
		"groupid": {Doc: "ID of the host group.", ID: true, ReadOnly: true},
		"name":    {Doc: "Name of the host group."},
		"flags": {
			Doc: "Origin of the host group.", Type: TypeInt, ReadOnly: true,
			Vals: map[int64]string{0: "a plain host group", 4: "a discovered host group"},
		},
		"internal": {
			Doc: "Whether the group is used internally by the system. An internal group cannot be deleted.",
			Type: TypeInt, ReadOnly: true,
			Vals: map[int64]string{0: "not internal (default)", 1: "internal"},
		},
	},
}
