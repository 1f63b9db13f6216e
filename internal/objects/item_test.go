// internal/objects/item_test.go
package objects

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, sess Session, valueType string) *Item {
	t.Helper()
	o, err := New(sess, KindItem, map[string]any{
		"itemid":     "23296",
		"key_":       "system.uptime",
		"name":       "Uptime",
		"value_type": valueType,
	})
	require.NoError(t, err)
	return &Item{Object: o}
}

func TestHistoryIntegerValues(t *testing.T) {
	sess := &fakeSession{
		callFn: func(method string, params any) (json.RawMessage, error) {
			return json.RawMessage(`[
				{"itemid":"23296","clock":"1391709315","value":"2","ns":"900"},
				{"itemid":"23296","clock":"1391709255","value":"1","ns":"800"}
			]`), nil
		},
	}
	item := newItem(t, sess, "3")

	points, err := item.History(HistoryOptions{})
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, int64(2), points[0].Value)
	assert.Equal(t, int64(1), points[1].Value)
	assert.Equal(t, time.Unix(1391709315, 0).UTC(), points[0].Clock)

	assert.Equal(t, "history.get", sess.lastMethod)
	params, ok := sess.lastParams.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(3), params["history"])
	assert.Equal(t, "23296", params["itemids"])
	assert.Equal(t, 10, params["limit"])
	assert.Equal(t, "clock", params["sortfield"])
	assert.Equal(t, "DESC", params["sortorder"])
	assert.NotContains(t, params, "time_from")
	assert.NotContains(t, params, "time_till")
}

func TestHistoryFloatValues(t *testing.T) {
	sess := &fakeSession{
		callFn: func(string, any) (json.RawMessage, error) {
			return json.RawMessage(`[{"clock":"1391709315","value":"0.85","ns":"0"}]`), nil
		},
	}
	item := newItem(t, sess, "0")
	points, err := item.History(HistoryOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.InDelta(t, 0.85, points[0].Value, 1e-9)
}

func TestHistoryTextValuesStayText(t *testing.T) {
	sess := &fakeSession{
		callFn: func(string, any) (json.RawMessage, error) {
			return json.RawMessage(`[{"clock":"1391709315","value":"Linux 6.1","ns":"0"}]`), nil
		},
	}
	item := newItem(t, sess, "4")
	points, err := item.History(HistoryOptions{})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "Linux 6.1", points[0].Value)
}

func TestHistoryTimeWindow(t *testing.T) {
	sess := &fakeSession{
		callFn: func(string, any) (json.RawMessage, error) {
			return json.RawMessage(`[]`), nil
		},
	}
	item := newItem(t, sess, "3")
	from := time.Unix(1391700000, 0)
	to := time.Unix(1391710000, 0)
	_, err := item.History(HistoryOptions{From: from, To: to, Limit: 50})
	require.NoError(t, err)
	params := sess.lastParams.(map[string]any)
	assert.Equal(t, int64(1391700000), params["time_from"])
	assert.Equal(t, int64(1391710000), params["time_till"])
	assert.Equal(t, 50, params["limit"])
}

func TestHistoryRequiresValueType(t *testing.T) {
	o, err := New(&fakeSession{}, KindItem, map[string]any{"itemid": "1", "name": "n"})
	require.NoError(t, err)
	_, err = (&Item{Object: o}).History(HistoryOptions{})
	require.Error(t, err)
}
