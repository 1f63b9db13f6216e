// internal/objects/property_test.go
package objects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyTimestampCoercion(t *testing.T) {
	p := &Property{Name: "clock", Type: TypeTime}
	require.NoError(t, p.Set("1388867607"))
	assert.Equal(t, time.Date(2014, 1, 4, 20, 33, 27, 0, time.UTC), p.Time())

	p2 := &Property{Name: "clock", Type: TypeTime}
	require.NoError(t, p2.Set(1388867607))
	assert.True(t, p.Time().Equal(p2.Time()))
}

func TestPropertyDirtyOnChangeOnly(t *testing.T) {
	p := &Property{Name: "status", Type: TypeInt, Vals: map[int64]string{0: "on", 1: "off"}}
	require.NoError(t, p.Set("0"))
	p.clearDirty()

	// Equal after coercion, raw form notwithstanding.
	require.NoError(t, p.Set(0))
	assert.False(t, p.Dirty())
	require.NoError(t, p.Set("0"))
	assert.False(t, p.Dirty())

	require.NoError(t, p.Set("1"))
	assert.True(t, p.Dirty())
	assert.Equal(t, int64(1), p.Int())
}

func TestPropertyReadOnlySingleAssignment(t *testing.T) {
	p := &Property{Name: "error", ReadOnly: true}
	require.NoError(t, p.Set("agent unreachable"))

	var invalid *InvalidValueError
	err := p.Set("other")
	require.ErrorAs(t, err, &invalid)

	// Even an equal value is rejected once the property holds one.
	err = p.Set("agent unreachable")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "agent unreachable", p.Str())
}

func TestPropertyEnumMembership(t *testing.T) {
	p := &Property{Name: "value", Type: TypeInt, Vals: map[int64]string{0: "ok", 1: "problem"}}
	require.NoError(t, p.Set("1"))
	p.clearDirty()

	var invalid *InvalidValueError
	err := p.Set("7")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, int64(1), p.Int())
	assert.False(t, p.Dirty())
	assert.Equal(t, "problem", p.Label())
}

func TestPropertyCoercionFailureLeavesValue(t *testing.T) {
	p := &Property{Name: "lastns", Type: TypeInt}
	require.NoError(t, p.Set("41"))
	p.clearDirty()

	var invalid *InvalidValueError
	require.ErrorAs(t, p.Set("forty-two"), &invalid)
	assert.Equal(t, int64(41), p.Int())
	assert.False(t, p.Dirty())
}

func TestPropertyFloatAndTextCoercion(t *testing.T) {
	f := &Property{Name: "goodsla", Type: TypeFloat}
	require.NoError(t, f.Set("99.9"))
	assert.InDelta(t, 99.9, f.Float(), 1e-9)

	s := &Property{Name: "name", Type: TypeText}
	require.NoError(t, s.Set(42))
	assert.Equal(t, "42", s.Str())
	assert.False(t, s.IsSet() == false)
}

func TestPropertyUnsetAccessors(t *testing.T) {
	p := &Property{Name: "name"}
	assert.False(t, p.IsSet())
	assert.Nil(t, p.Value())
	assert.Equal(t, "", p.Str())
	assert.Equal(t, "", p.Label())
}
