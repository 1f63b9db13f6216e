// internal/objects/group_test.go
package objects

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroup(t *testing.T) {
	sess := &fakeSession{
		callFn: func(method string, params any) (json.RawMessage, error) {
			return json.RawMessage(`{"groupids":["107819"]}`), nil
		},
	}
	id, err := CreateGroup(sess, "Linux servers")
	require.NoError(t, err)
	assert.Equal(t, "107819", id)
	assert.Equal(t, "hostgroup.create", sess.lastMethod)
	assert.Equal(t, map[string]any{"name": "Linux servers"}, sess.lastParams)
}

func TestCreateGroupNoID(t *testing.T) {
	sess := &fakeSession{
		callFn: func(string, any) (json.RawMessage, error) {
			return json.RawMessage(`{"groupids":[]}`), nil
		},
	}
	_, err := CreateGroup(sess, "empty")
	require.Error(t, err)
}

func TestGroupAddHosts(t *testing.T) {
	sess := &fakeSession{
		callFn: func(string, any) (json.RawMessage, error) {
			return json.RawMessage(`{"groupids":["5"]}`), nil
		},
	}
	o, err := New(sess, KindGroup, map[string]any{"groupid": "5", "name": "g"})
	require.NoError(t, err)
	g := &Group{Object: o}
	h1, err := New(sess, KindHost, map[string]any{"hostid": "10", "name": "web1"})
	require.NoError(t, err)
	h2, err := New(sess, KindHost, map[string]any{"hostid": "11", "name": "web2"})
	require.NoError(t, err)

	res, err := g.AddHosts(h1, h2)
	require.NoError(t, err)
	assert.JSONEq(t, `{"groupids":["5"]}`, string(res))
	assert.Equal(t, "hostgroup.massadd", sess.lastMethod)
	assert.Equal(t, map[string]any{
		"groups": []map[string]any{{"groupid": "5"}},
		"hosts":  []map[string]any{{"hostid": "10"}, {"hostid": "11"}},
	}, sess.lastParams)

	// The server result is authoritative; membership caches stay untouched.
	_, resolved := o.relation("hosts")
	assert.False(t, resolved)
}

func TestGroupRemoveHosts(t *testing.T) {
	sess := &fakeSession{
		callFn: func(string, any) (json.RawMessage, error) {
			return json.RawMessage(`{"groupids":["5"]}`), nil
		},
	}
	o, err := New(sess, KindGroup, map[string]any{"groupid": "5", "name": "g"})
	require.NoError(t, err)
	h, err := New(sess, KindHost, map[string]any{"hostid": "10", "name": "web1"})
	require.NoError(t, err)

	_, err = (&Group{Object: o}).RemoveHosts(h)
	require.NoError(t, err)
	assert.Equal(t, "hostgroup.massremove", sess.lastMethod)
	assert.Equal(t, map[string]any{
		"groupids": []string{"5"},
		"hostids":  []string{"10"},
	}, sess.lastParams)
}

func TestKindByNameAcceptsWireName(t *testing.T) {
	kind, ok := KindByName("hostgroup")
	require.True(t, ok)
	assert.Equal(t, KindGroup, kind)

	kind, ok = KindByName("group")
	require.True(t, ok)
	assert.Equal(t, KindGroup, kind)

	_, ok = KindByName("widget")
	assert.False(t, ok)
}
