// internal/objects/item.go
package objects

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Item value types, see the value_type property.
const (
	ValueTypeFloat int64 = 0
	ValueTypeChar  int64 = 1
	ValueTypeLog   int64 = 2
	ValueTypeInt   int64 = 3
	ValueTypeText  int64 = 4
)

// Item is one collected metric on a host.
type Item struct {
	*Object
}

// HistoryPoint is one collected sample. Value holds float64, int64 or string
// depending on the item's value_type.
type HistoryPoint struct {
	Clock time.Time
	Value any
}

// HistoryOptions bound a history query. The zero value asks for the latest
// ten samples.
type HistoryOptions struct {
	From  time.Time
	To    time.Time
	Limit int
}

// History returns the latest samples for this item, newest first. The remote
// history store is selected by the item's declared value_type, and each raw
// value is coerced accordingly: float to real, integer to whole, the rest
// stay text.
func (i *Item) History(opts HistoryOptions) ([]HistoryPoint, error) {
	vt := i.Prop("value_type")
	if vt == nil || !vt.IsSet() {
		return nil, fmt.Errorf("item %s has no value_type", i.ID())
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}
	params := map[string]any{
		"output":    "extend",
		"history":   vt.Int(),
		"itemids":   i.ID(),
		"limit":     limit,
		"sortfield": "clock",
		"sortorder": "DESC",
	}
	if !opts.From.IsZero() {
		params["time_from"] = opts.From.Unix()
	}
	if !opts.To.IsZero() {
		params["time_till"] = opts.To.Unix()
	}
	raw, err := i.Session().Call("history.get", params)
	if err != nil {
		return nil, err
	}
	var records []struct {
		Clock string `json:"clock"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decoding history.get result: %w", err)
	}
	points := make([]HistoryPoint, 0, len(records))
	for _, rec := range records {
		clock, err := strconv.ParseInt(rec.Clock, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad history clock %q: %w", rec.Clock, err)
		}
		val, err := typedValue(vt.Int(), rec.Value)
		if err != nil {
			return nil, err
		}
		points = append(points, HistoryPoint{Clock: time.Unix(clock, 0).UTC(), Value: val})
	}
	return points, nil
}

func typedValue(valueType int64, raw string) (any, error) {
	switch valueType {
	case ValueTypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad float history value %q: %w", raw, err)
		}
		return f, nil
	case ValueTypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad integer history value %q: %w", raw, err)
		}
		return n, nil
	default:
		return raw, nil
	}
}

var itemSchema = &Schema{
	Kind:      KindItem,
	APIName:   "item",
	IDField:   "itemid",
	TextField: "name",
	Relations: map[string]Relation{
		"hosts": {Target: KindHost},
	},
	Fields: map[string]Field{
		"itemid":      {Doc: "ID of the item.", ID: true, Type: TypeInt, ReadOnly: true},
		"delay":       {Doc: "Update interval of the item in ${val}${units} form."},
		"hostid":      {Doc: "ID of the host that the item belongs to."},
		"interfaceid": {Doc: "ID of the item's host interface."},
		"key_":        {Doc: "Item key."},
		"name":        {Doc: "Name of the item."},
		"type": {
			Doc: "Type of the item.", Type: TypeInt,
			Vals: map[int64]string{
				0: "Zabbix agent", 1: "SNMPv1 agent", 2: "Zabbix trapper",
				3: "simple check", 4: "SNMPv2 agent", 5: "Zabbix internal",
				6: "SNMPv3 agent", 7: "Zabbix agent (active)", 8: "Zabbix aggregate",
				9: "web item", 10: "external check", 11: "database monitor",
				12: "IPMI agent", 13: "SSH agent", 14: "TELNET agent",
				15: "calculated", 16: "JMX agent", 17: "SNMP trap",
			},
		},
		"value_type": {
			Doc: "Type of information of the item.", Type: TypeInt,
			Vals: map[int64]string{
				0: "numeric float", 1: "character", 2: "log",
				3: "numeric unsigned", 4: "text",
			},
		},
		"authtype": {
			Doc: "SSH authentication method. Used only by SSH agent items.", Type: TypeInt,
			Vals: map[int64]string{0: "password (default)", 1: "public key"},
		},
		"data_type": {
			Doc: "Data type of the item.", Type: TypeInt,
			Vals: map[int64]string{0: "decimal (default)", 1: "octal", 2: "hexadecimal", 3: "boolean"},
		},
		"delay_flex": {Doc: "Flexible intervals as a serialized string."},
		"delta": {
			Doc: "Value that will be stored.", Type: TypeInt,
			Vals: map[int64]string{0: "as is (default)", 1: "Delta, speed per second", 2: "Delta, simple change"},
		},
		"description": {Doc: "Description of the item."},
		"error":       {Doc: "Error text if there are problems updating the item.", ReadOnly: true},
		"flags": {
			Doc: "Origin of the item.", Type: TypeInt, ReadOnly: true,
			Vals: map[int64]string{0: "a plain item", 4: "a discovered item"},
		},
		"history":        {Doc: "Retention of raw samples in ${val}${units} form."},
		"inventory_link": {Doc: "ID of the host inventory field that is populated by the item.", Type: TypeInt},
		"ipmi_sensor":    {Doc: "IPMI sensor. Used only by IPMI items."},
		"lastclock":      {Doc: "Time when the item was last updated.", Type: TypeTime, ReadOnly: true},
		"lastns":         {Doc: "Nanoseconds when the item was last updated.", Type: TypeInt, ReadOnly: true},
		"lastvalue":      {Doc: "Last value of the item.", ReadOnly: true},
		"logtimefmt":     {Doc: "Format of the time in log entries. Used only by log items."},
		"mtime":          {Doc: "Time when the monitored log file was last updated. Used only by log items.", Type: TypeTime},
		"multiplier":     {Doc: "Whether to use a custom multiplier.", Type: TypeInt},
		"params":         {Doc: "Additional parameters depending on the type of the item."},
		"password":       {Doc: "Password for authentication."},
		"port":           {Doc: "Port monitored by the item. Used only by SNMP items."},
		"prevvalue":      {Doc: "Previous value of the item.", ReadOnly: true},
		"privatekey":     {Doc: "Name of the private key file."},
		"publickey":      {Doc: "Name of the public key file."},
		"snmp_community": {Doc: "SNMP community. Used only by SNMPv1 and SNMPv2 items."},
		"snmp_oid":       {Doc: "SNMP OID."},
		"snmpv3_authpassphrase": {Doc: "SNMPv3 auth passphrase. Used only by SNMPv3 items."},
		"snmpv3_authprotocol": {
			Doc: "SNMPv3 authentication protocol. Used only by SNMPv3 items.", Type: TypeInt,
			Vals: map[int64]string{0: "MD5 (default)", 1: "SHA"},
		},
		"snmpv3_contextname":    {Doc: "SNMPv3 context name. Used only by SNMPv3 items."},
		"snmpv3_privpassphrase": {Doc: "SNMPv3 priv passphrase. Used only by SNMPv3 items."},
		"snmpv3_privprotocol": {
			Doc: "SNMPv3 privacy protocol. Used only by SNMPv3 items.", Type: TypeInt,
			Vals: map[int64]string{0: "DES (default)", 1: "AES"},
		},
		"snmpv3_securitylevel": {
			Doc: "SNMPv3 security level. Used only by SNMPv3 items.", Type: TypeInt,
			Vals: map[int64]string{0: "noAuthNoPriv", 1: "authNoPriv", 2: "authPriv"},
		},
		"snmpv3_securityname": {Doc: "SNMPv3 security name. Used only by SNMPv3 items."},
		"state": {
			Doc: "State of the item.", Type: TypeInt, ReadOnly: true,
			Vals: map[int64]string{0: "normal (default)", 1: "not supported"},
		},
		"status": {
			Doc: "Status of the item.", Type: TypeInt,
			Vals: map[int64]string{0: "enabled item (default)", 1: "disabled item"},
		},
		"templateid":    {Doc: "ID of the parent template item.", ReadOnly: true},
		"trapper_hosts": {Doc: "Allowed hosts. Used only by trapper items."},
		"trends":        {Doc: "Retention of down-sampled data in ${val}${units} form."},
		"units":         {Doc: "Value units."},
		"username":      {Doc: "Username for authentication."},
		"valuemapid":    {Doc: "ID of the associated value map."},
	},
}
