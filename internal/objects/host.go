// internal/objects/host.go
package objects

// Host is a monitored host.
type Host struct {
	*Object
}

// Problems returns the current problem events for this host.
func (h *Host) Problems() ([]*Object, error) {
	return h.Session().Fetch(KindProblem, map[string]any{"hostids": h.ID()})
}

var availabilityVals = map[int64]string{
	0: "unknown (default)",
	1: "available",
	2: "unavailable",
}

var hostSchema = &Schema{
	Kind:      KindHost,
	APIName:   "host",
	IDField:   "hostid",
	TextField: "name",
	DefaultSelects: []string{
		"selectGroups", "selectApplications", "selectMacros",
		"selectGraphs", "selectScreens",
	},
	Relations: map[string]Relation{
		"groups":    {Target: KindGroup},
		"templates": {Target: KindTemplate},
		"items":     {Target: KindItem},
		"triggers":  {Target: KindTrigger},
	},
	Fields: map[string]Field{
		"hostid": {Doc: "ID of the host.", ID: true, ReadOnly: true},
		"host":   {Doc: "Technical name of the host."},
		"name":   {Doc: "Visible name of the host, defaults to the host property value."},
		"available": {
			Doc: "Availability of the agent.", Type: TypeInt, ReadOnly: true,
			Vals: availabilityVals,
		},
		"disable_until": {Doc: "The next polling time of an unavailable agent.", Type: TypeTime, ReadOnly: true},
		"error":         {Doc: "Error text if the agent is unavailable.", ReadOnly: true},
		"errors_from":   {Doc: "Time when the agent became unavailable.", Type: TypeTime, ReadOnly: true},
		"flags": {
			Doc: "Origin of the host.", Type: TypeInt, ReadOnly: true,
			Vals: map[int64]string{0: "a plain host", 4: "a discovered host"},
		},
		"inventory_mode": {
			Doc: "Host inventory population mode.", Type: TypeInt,
			Vals: map[int64]string{-1: "disabled", 0: "manual (default)", 1: "automatic"},
		},
		"ipmi_authtype": {
			Doc: "IPMI authentication algorithm.", Type: TypeInt,
			Vals: map[int64]string{
				-1: "default (default)", 0: "none", 1: "MD2", 2: "MD5",
				4: "straight", 5: "OEM", 6: "RMCP+",
			},
		},
		"ipmi_available":     {Doc: "Availability of IPMI agent.", Type: TypeInt, ReadOnly: true, Vals: availabilityVals},
		"ipmi_disable_until": {Doc: "The next polling time of an unavailable IPMI agent.", Type: TypeTime, ReadOnly: true},
		"ipmi_error":         {Doc: "Error text if IPMI agent is unavailable.", ReadOnly: true},
		"ipmi_errors_from":   {Doc: "Time when IPMI agent became unavailable.", Type: TypeTime, ReadOnly: true},
		"ipmi_password":      {Doc: "IPMI password."},
		"ipmi_privilege": {
			Doc: "IPMI privilege level.", Type: TypeInt,
			Vals: map[int64]string{1: "callback", 2: "user (default)", 3: "operator", 4: "admin", 5: "OEM"},
		},
		"ipmi_username":     {Doc: "IPMI username."},
		"jmx_available":     {Doc: "Availability of JMX agent.", Type: TypeInt, ReadOnly: true, Vals: availabilityVals},
		"jmx_disable_until": {Doc: "The next polling time of an unavailable JMX agent.", Type: TypeTime, ReadOnly: true},
		"jmx_error":         {Doc: "Error text if JMX agent is unavailable.", ReadOnly: true},
		"jmx_errors_from":   {Doc: "Time when JMX agent became unavailable.", Type: TypeTime, ReadOnly: true},
		"maintenance_from":  {Doc: "Starting time of the effective maintenance.", Type: TypeTime, ReadOnly: true},
		"maintenance_status": {
			Doc: "Effective maintenance status.", Type: TypeInt, ReadOnly: true,
			Vals: map[int64]string{0: "no maintenance (default)", 1: "maintenance in effect"},
		},
		"maintenance_type": {
			Doc: "Effective maintenance type.", Type: TypeInt, ReadOnly: true,
			Vals: map[int64]string{
				0: "maintenance with data collection (default)",
				1: "maintenance without data collection",
			},
		},
		"maintenanceid":      {Doc: "ID of the maintenance currently in effect on the host.", ReadOnly: true},
		"proxy_hostid":       {Doc: "ID of the proxy that is used to monitor the host."},
		"snmp_available":     {Doc: "Availability of SNMP agent.", Type: TypeInt, ReadOnly: true, Vals: availabilityVals},
		"snmp_disable_until": {Doc: "The next polling time of an unavailable SNMP agent.", Type: TypeTime, ReadOnly: true},
		"snmp_error":         {Doc: "Error text if SNMP agent is unavailable.", ReadOnly: true},
		"snmp_errors_from":   {Doc: "Time when SNMP agent became unavailable.", Type: TypeTime, ReadOnly: true},
		"status": {
			Doc: "Status and function of the host.", Type: TypeInt,
			Vals: map[int64]string{0: "monitored host (default)", 1: "unmonitored host"},
		},
		"tls_connect": {
			Doc: "Connections to host.", Type: TypeInt,
			Vals: map[int64]string{1: "no encryption (default)", 2: "pre-shared key (PSK)", 4: "certificate"},
		},
		"tls_accept": {
			Doc: "Connections from host.", Type: TypeInt,
			Vals: map[int64]string{1: "no encryption (default)", 2: "pre-shared key (PSK)", 4: "certificate"},
		},
		"tls_issuer":       {Doc: "Certificate issuer."},
		"tls_subject":      {Doc: "Certificate subject."},
		"tls_psk_identity": {Doc: "PSK identity. Required if either tls_connect or tls_accept has PSK enabled."},
		"tls_psk":          {Doc: "The pre-shared key, at least 32 hex digits."},
	},
}
